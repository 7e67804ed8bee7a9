package router

import (
	_ "habitrack/docs"
	"habitrack/internal/handlers/checkin"
	"habitrack/internal/handlers/habit"
	"habitrack/internal/handlers/summary"
	"habitrack/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Habit   habit.Handler
	Checkin checkin.Handler
	Summary summary.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the API under /api. health is served by the caller,
// which owns the server state it reports.
func (r *Router) SetupRoutes(router chi.Router, health http.HandlerFunc) {
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithRouteNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithRouteNotFound(w)
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/health", health)

		r.DomainHandlers.Habit.Router(routerGroup)
		r.DomainHandlers.Checkin.Router(routerGroup)
		r.DomainHandlers.Summary.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
