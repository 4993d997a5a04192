package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kingchappers/arc-check-in/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (app *application) configureSwagger() {
	docs.SwaggerInfo.Title = "ARC Check-In"
	docs.SwaggerInfo.Description = "Web API - Volunteer Attendance Tracker"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmtHTTPAddr("localhost", app.config.httpPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
}

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/v1/status", app.handleStatus)

	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireAuth)

		mux.Get("/api/v1/checkin", app.handleCheckinStatus)
		mux.Post("/api/v1/checkin", app.handleToggle)
		mux.Get("/api/v1/checkin/history", app.handleHistory)

		mux.Group(func(mux chi.Router) {
			mux.Use(app.requireAdmin)

			mux.Get("/api/v1/admin/roster", app.handleActiveRoster)
			mux.Get("/api/v1/admin/history", app.handleRangedHistory)
		})
	})

	mux.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(
			"http://"+fmtHTTPAddr("localhost", app.config.httpPort)+"/swagger/doc.json",
		), // The url pointing to API definition
	))

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
