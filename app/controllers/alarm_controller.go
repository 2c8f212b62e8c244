package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tencycle/tencycle-backend/app/models"
	"github.com/tencycle/tencycle-backend/app/queries"
	"github.com/tencycle/tencycle-backend/pkg/database"
)

func GetAlarms(c *fiber.Ctx) error {
	aq := queries.AlarmQueries{DB: database.DB}
	alarms, err := aq.GetAlarms()
	if err != nil {
		log.Printf("[ERROR] list alarms: %s", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list alarms"})
	}
	return c.JSON(alarms)
}

func CreateAlarm(c *fiber.Ctx) error {
	req := &models.CreateAlarmRequest{}
	if err := parseBody(c, req); err != nil {
		return badRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	sound := req.Sound
	if sound == "" {
		sound = "default"
	}

	alarm := &models.Alarm{
		Name:       req.Name,
		Time:       req.Time,
		IsEnabled:  enabled,
		RepeatDays: req.RepeatDays,
		Message:    req.Message,
		Sound:      sound,
	}

	aq := queries.AlarmQueries{DB: database.DB}
	if err := aq.CreateAlarm(alarm); err != nil {
		log.Printf("[ERROR] create alarm: %s", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create alarm"})
	}
	return c.Status(fiber.StatusCreated).JSON(alarm)
}

func UpdateAlarm(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, "Alarm")
	}

	req := &models.UpdateAlarmRequest{}
	if err := parseBody(c, req); err != nil {
		return badRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	aq := queries.AlarmQueries{DB: database.DB}
	updated, err := aq.UpdateAlarm(id, req)
	if errors.Is(err, queries.ErrNotFound) {
		return notFound(c, "Alarm")
	}
	if err != nil {
		log.Printf("[ERROR] update alarm %d: %s", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update alarm"})
	}
	return c.JSON(updated)
}

// DeleteAlarm mirrors DeleteTask: success regardless of prior
// existence.
func DeleteAlarm(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	aq := queries.AlarmQueries{DB: database.DB}
	if err := aq.DeleteAlarm(id); err != nil {
		log.Printf("[ERROR] delete alarm %d: %s", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete alarm"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
