package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the boundary contract: listing, detail, side-effecting
// view increments, likes, creation, and project update/delete.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(localeMiddleware)

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/project/{projectID}/view", handlers.projectHandler.viewProject())
		r.Post("/project/{projectID}/like", handlers.projectHandler.likeProject())

		// Idea endpoints
		r.Get("/ideas", handlers.ideaHandler.listIdeas())
		r.Get("/idea/{ideaID}", handlers.ideaHandler.getIdea())
		r.Post("/idea", handlers.ideaHandler.createIdea())
		r.Post("/idea/{ideaID}/view", handlers.ideaHandler.viewIdea())
		r.Post("/idea/{ideaID}/like", handlers.ideaHandler.likeIdea())

		// Event endpoints
		r.Get("/events", handlers.eventHandler.listEvents())
		r.Get("/event/{eventID}", handlers.eventHandler.getEvent())
		r.Post("/event", handlers.eventHandler.createEvent())
		r.Post("/event/{eventID}/view", handlers.eventHandler.viewEvent())
		r.Post("/event/{eventID}/like", handlers.eventHandler.likeEvent())

		// Category endpoints
		r.Get("/categories", handlers.categoryHandler.listCategories())

		// Locale endpoints
		r.Get("/i18n", handlers.localeHandler.getRequestLocale())
		r.Get("/i18n/{locale}", handlers.localeHandler.getLocale())
	})
}
