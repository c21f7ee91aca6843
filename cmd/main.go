package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/stc-tennis/rankserver/internal/config"
	"github.com/stc-tennis/rankserver/internal/logger"
	"github.com/stc-tennis/rankserver/internal/migrate"
	"github.com/stc-tennis/rankserver/internal/reconcile"
	"github.com/stc-tennis/rankserver/internal/service"
	"github.com/stc-tennis/rankserver/internal/storage/sqlite"
	"github.com/stc-tennis/rankserver/internal/web"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := sql.Open("sqlite3", "file:"+cfg.Server.SqliteFile+"?cache=shared")
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return err
	}
	if err := migrate.Up(db); err != nil {
		return err
	}

	st := sqlite.New(db)
	ratingService := service.New(st, st, reconcile.New(), cfg.Rating, log)
	server, err := web.New(ratingService, cfg.Server)
	if err != nil {
		return err
	}
	log.WithField("port", cfg.Server.Port).Info("starting server")
	return server.Serve()
}
