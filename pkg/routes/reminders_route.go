package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tencycle/tencycle-backend/app/controllers"
)

func RegisterReminderRoutes(app *fiber.App) {
	reminders := app.Group("/api/reminders")
	reminders.Get("/", controllers.GetReminders)
}
