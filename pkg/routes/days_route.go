package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tencycle/tencycle-backend/app/controllers"
)

func RegisterDayRoutes(app *fiber.App) {
	days := app.Group("/api/days")
	days.Get("/:id", controllers.GetDay)
	days.Put("/:id", controllers.UpdateDay)
}
