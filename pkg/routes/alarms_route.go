package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tencycle/tencycle-backend/app/controllers"
)

func RegisterAlarmRoutes(app *fiber.App) {
	alarms := app.Group("/api/alarms")
	alarms.Get("/", controllers.GetAlarms)
	alarms.Post("/", controllers.CreateAlarm)
	alarms.Put("/:id", controllers.UpdateAlarm)
	alarms.Delete("/:id", controllers.DeleteAlarm)
}
