package server

import (
	"github.com/nfrund/activityboard/internal/handlers"
	"github.com/nfrund/activityboard/internal/middleware"
	"github.com/nfrund/activityboard/internal/static"
	"github.com/nfrund/activityboard/internal/view"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultRateLimit)

	s.E.GET("/", s.boardHandler.Index)
	s.E.GET(view.ListPath, s.boardHandler.List)
	s.E.POST(view.SignupPath, s.boardHandler.Signup, rateLimiter)
	s.E.POST(view.RemovePath, s.boardHandler.Remove, rateLimiter)
	s.E.GET(view.DismissPath, s.boardHandler.Dismiss)

	if s.static != nil {
		s.E.GET("/static/*", static.Handler(s.static))
	}
	if s.live != nil {
		s.E.GET(view.LivePath, s.live.ServeWS)
	}

	s.E.GET("/health", handlers.Health)
}
