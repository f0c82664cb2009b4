package routes

import (
	"coach/coach/controllers"
	"coach/coach/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(chatCtrl *controllers.ChatController, healthCtrl *controllers.HealthController) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.SessionContext)
	r.Use(middlewares.RequestLog)
	r.Use(middleware.Recoverer)
	// No Timeout middleware: the provider call runs until the transport gives up.

	r.Mount("/health", HealthRoutes(healthCtrl))
	r.Mount("/api/chat", ChatRoutes(chatCtrl))
	return r
}
