package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rosterbook/gradebook-api/internal/config"
	"github.com/rosterbook/gradebook-api/internal/handler"
	"github.com/rosterbook/gradebook-api/internal/middleware"
	"github.com/rosterbook/gradebook-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler    *handler.AuthHandler
	StudentHandler *handler.StudentHandler
	TeacherHandler *handler.TeacherHandler
	GradeHandler   *handler.GradeHandler
	DataHandler    *handler.DataHandler
	JWTMiddleware  fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", jwtMiddleware))
	}

	if deps.TeacherHandler != nil {
		deps.TeacherHandler.Register(api.Group("/teachers", jwtMiddleware))
	}

	if deps.GradeHandler != nil {
		grades := api.Group("/grades", jwtMiddleware)
		deps.GradeHandler.Register(grades)
		deps.GradeHandler.RegisterMutations(grades.Group("", middleware.RequireRole("teacher")))
		deps.GradeHandler.RegisterClasses(api.Group("/classes", jwtMiddleware))
	}

	if deps.DataHandler != nil {
		deps.DataHandler.Register(api.Group("/data", jwtMiddleware, middleware.RequireRole("teacher")))
	}
}
