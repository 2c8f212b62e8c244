package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/tencycle/tencycle-backend/app/queries"
	"github.com/tencycle/tencycle-backend/pkg/database"
)

func GetReminders(c *fiber.Ctx) error {
	rq := queries.ReminderQueries{DB: database.DB}
	reminders, err := rq.GetReminders()
	if err != nil {
		log.Printf("[ERROR] list reminders: %s", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list reminders"})
	}
	return c.JSON(reminders)
}
