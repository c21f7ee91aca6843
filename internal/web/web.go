package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "github.com/stc-tennis/rankserver"
	"github.com/stc-tennis/rankserver/internal/config"
	"github.com/stc-tennis/rankserver/internal/domain"
	"github.com/stc-tennis/rankserver/internal/service"
	"github.com/stc-tennis/rankserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
)

type Server struct {
	ratingService *service.RatingService
	app           *fiber.App
	cfg           config.Server
}

func New(rs *service.RatingService, cfg config.Server) (*Server, error) {
	server := Server{
		ratingService: rs,
		cfg:           cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: handleError,
	})
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})
	app.Get(webpath.Health, server.handleHealth)

	app.Get(webpath.ApiHome, server.handleMain)
	app.Get(webpath.ApiMatchesList, server.handleMatchesPage)

	app.Get(webpath.ApiMatches, server.handleListMatches)
	app.Post(webpath.ApiMatches, server.handleCreateMatch)
	app.Delete(webpath.ApiMatch, server.handleDeleteMatch)
	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiGetPlayer, server.handleGetPlayer)
	app.Get(webpath.ApiHistory, server.handleHistory)
	app.Post(webpath.ApiReset, server.handleReset)
	app.Get(webpath.ApiRanking, server.handleRanking)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func handleError(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrMatchNotFound):
		ctx.Status(fiber.StatusNotFound)
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, ErrUnknownFormat):
		ctx.Status(fiber.StatusBadRequest)
	case errors.As(err, &fiberErr):
		ctx.Status(fiberErr.Code)
	default:
		ctx.Status(fiber.StatusInternalServerError)
	}
	return ctx.JSON(fiber.Map{"errors": errorMessages(err)})
}

func (s *Server) handleHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	format, err := parseFormat(ctx.Query("format", "singles"))
	if err != nil {
		return err
	}
	ranking, err := s.ratingService.GetRanking(format)
	if err != nil {
		return err
	}
	return ctx.Render("index", fiber.Map{
		"Button":  "rating",
		"Title":   "순위표",
		"Format":  string(format),
		"Players": ranking,
		"Path":    webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleMatchesPage(ctx *fiber.Ctx) error {
	matches, err := s.ratingService.GetMatches()
	if err != nil {
		return err
	}
	return ctx.Render("matches", fiber.Map{
		"Button":  "matches",
		"Title":   "경기 기록",
		"Matches": matches,
		"Path":    webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleListMatches(ctx *fiber.Ctx) error {
	matches, err := s.ratingService.GetMatches()
	if err != nil {
		return err
	}
	return ctx.JSON(matches)
}

func (s *Server) handleCreateMatch(ctx *fiber.Ctx) error {
	var req createMatch
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	match, err := s.ratingService.SubmitMatch(req.convertToNewMatch())
	var partial *domain.PartialUpdateError
	if errors.As(err, &partial) {
		// The match is recorded even when some balances could not be
		// moved yet. Report who was skipped so the caller can see it.
		return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
			"match":   match,
			"skipped": partial.Failed,
		})
	}
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"match": match})
}

func (s *Server) handleDeleteMatch(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	err = s.ratingService.DeleteMatch(id)
	var partial *domain.PartialUpdateError
	if errors.As(err, &partial) {
		return ctx.JSON(fiber.Map{"deleted": id, "skipped": partial.Failed})
	}
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"deleted": id})
}

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	players, err := s.ratingService.ListPlayers()
	if err != nil {
		return err
	}
	return ctx.JSON(players)
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	player, err := s.ratingService.CreatePlayer(req.Name, req.StudentID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(player)
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	player, err := s.ratingService.Get(id)
	if err != nil {
		return err
	}
	return ctx.JSON(player)
}

func (s *Server) handleHistory(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	format, err := parseFormat(ctx.Query("format", "singles"))
	if err != nil {
		return err
	}
	history, err := s.ratingService.GetHistory(id, format)
	if err != nil {
		return err
	}
	return ctx.JSON(history)
}

func (s *Server) handleRanking(ctx *fiber.Ctx) error {
	format, err := parseFormat(ctx.Params("format"))
	if err != nil {
		return err
	}
	ranking, err := s.ratingService.GetRanking(format)
	if err != nil {
		return err
	}
	return ctx.JSON(ranking)
}

func (s *Server) handleReset(ctx *fiber.Ctx) error {
	if err := s.ratingService.ResetSeason(); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"status": "reset"})
}

func formatDate(t time.Time) string {
	return t.Format("2006.01.02")
}
