package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SqliteFile string `toml:"sqlite_file"`
}

type Rating struct {
	// Baseline is the point total new players start with and the value
	// the season reset regresses toward.
	Baseline    int     `toml:"baseline"`
	DecayFactor float64 `toml:"decay_factor"`
	// Collation is the BCP 47 tag used for ranking tie-breaks by name.
	Collation string `toml:"collation"`
}

type Config struct {
	Server Server `toml:"server"`
	Rating Rating `toml:"rating"`
}

func Default() Config {
	return Config{
		Server: Server{
			Host:       "",
			Port:       3000,
			SqliteFile: "rating.sqlite",
		},
		Rating: Rating{
			Baseline:    1500,
			DecayFactor: 0.5,
			Collation:   "ko",
		},
	}
}

func New() (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile("configs/server.toml", &cfg)
	if err != nil {
		return Config{}, err
	}
	if file := os.Getenv("RANKSERVER_SQLITE"); file != "" {
		cfg.Server.SqliteFile = file
	}
	return cfg, nil
}
