package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tencycle/tencycle-backend/app/controllers"
)

func RegisterCycleRoutes(app *fiber.App) {
	cycles := app.Group("/api/cycles")
	cycles.Get("/", controllers.GetCycles)
	// registered before /:id so "initialize" is never read as an id
	cycles.Post("/initialize", controllers.InitializeYear)
	cycles.Get("/:id", controllers.GetCycle)
	cycles.Put("/:id", controllers.UpdateCycle)
}
