package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tencycle/tencycle-backend/app/controllers"
)

func RegisterTaskRoutes(app *fiber.App) {
	tasks := app.Group("/api/tasks")
	tasks.Post("/", controllers.CreateTask)
	tasks.Put("/:id", controllers.UpdateTask)
	tasks.Delete("/:id", controllers.DeleteTask)
}
