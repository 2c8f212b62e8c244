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

func GetDay(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, "Day")
	}

	dq := queries.DayQueries{DB: database.DB}
	day, err := dq.GetDay(id)
	if errors.Is(err, queries.ErrNotFound) {
		return notFound(c, "Day")
	}
	if err != nil {
		log.Printf("[ERROR] get day %d: %s", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to get day"})
	}
	return c.JSON(day)
}

func UpdateDay(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, "Day")
	}

	req := &models.UpdateDayRequest{}
	if err := parseBody(c, req); err != nil {
		return badRequest(c, err)
	}

	dq := queries.DayQueries{DB: database.DB}
	updated, err := dq.UpdateDay(id, req)
	if errors.Is(err, queries.ErrNotFound) {
		return notFound(c, "Day")
	}
	if err != nil {
		log.Printf("[ERROR] update day %d: %s", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update day"})
	}
	return c.JSON(updated)
}
