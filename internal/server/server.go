package server

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/activityboard/internal/board"
	"github.com/nfrund/activityboard/internal/config"
	"github.com/nfrund/activityboard/internal/handlers"
	"github.com/nfrund/activityboard/internal/i18n"
	"github.com/nfrund/activityboard/internal/live"
	appmiddleware "github.com/nfrund/activityboard/internal/middleware"
	"github.com/nfrund/activityboard/internal/rendering"
	"github.com/spf13/afero"
)

// Dependencies holds everything the HTTP server is built from.
type Dependencies struct {
	Config     config.Provider
	Board      *board.ActivityBoard
	Translator *i18n.Translator
	Renderer   *rendering.UniversalRenderer
	Static     afero.Fs
	// Live serves the websocket feed. Nil disables live updates.
	Live *live.Handler
}

// Server holds the echo instance and the handlers mounted on it.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	boardHandler *handlers.BoardHandler
	static       afero.Fs
	live         *live.Handler
}

// New creates the server with its middleware chain and routes.
func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(appmiddleware.Locale(deps.Translator))

	// The session only carries flash messages for the no-JS form path.
	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	s := &Server{
		E:            e,
		Cfg:          deps.Config,
		boardHandler: handlers.NewBoardHandler(deps.Board, deps.Translator, deps.Renderer, deps.Live != nil),
		static:       deps.Static,
		live:         deps.Live,
	}
	s.RegisterRoutes()
	return s
}
