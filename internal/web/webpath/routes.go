package webpath

const (
	Home = "/"

	Api            = "/api"
	ApiHome        = Api + Home
	ApiMatchesList = Api + "/matches-list"
	ApiMatches     = Api + "/matches"
	ApiMatch       = ApiMatches + "/:id"
	ApiPlayers     = Api + "/players"
	ApiGetPlayer   = ApiPlayers + "/:id"
	ApiHistory     = ApiPlayers + "/:id/history"
	ApiRanking     = Api + "/ranking/:format"
	ApiReset       = Api + "/ranking/reset"

	Health = "/health"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Api":        Api,
		"ApiHome":    ApiHome,
		"ApiMatches": ApiMatchesList,
	}
}
