package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tencycle/tencycle-backend/app/models"
	"github.com/tencycle/tencycle-backend/app/planner"
	"github.com/tencycle/tencycle-backend/app/queries"
	"github.com/tencycle/tencycle-backend/pkg/database"
)

func GetCycles(c *fiber.Ctx) error {
	cq := queries.CycleQueries{DB: database.DB}
	cycles, err := cq.GetCycles()
	if err != nil {
		log.Printf("[ERROR] list cycles: %s", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list cycles"})
	}
	return c.JSON(cycles)
}

func GetCycle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, "Cycle")
	}

	cq := queries.CycleQueries{DB: database.DB}
	cycle, err := cq.GetCycle(id)
	if errors.Is(err, queries.ErrNotFound) {
		return notFound(c, "Cycle")
	}
	if err != nil {
		log.Printf("[ERROR] get cycle %d: %s", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to get cycle"})
	}
	return c.JSON(cycle)
}

func UpdateCycle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, "Cycle")
	}

	req := &models.UpdateCycleRequest{}
	if err := parseBody(c, req); err != nil {
		return badRequest(c, err)
	}

	cq := queries.CycleQueries{DB: database.DB}
	updated, err := cq.UpdateCycle(id, req)
	if errors.Is(err, queries.ErrNotFound) {
		return notFound(c, "Cycle")
	}
	if err != nil {
		log.Printf("[ERROR] update cycle %d: %s", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update cycle"})
	}
	return c.JSON(updated)
}

// InitializeYear wipes the cycle hierarchy and regenerates the full
// year from the requested start date: 36 cycles first (the store
// assigns their ids), then the 360 days keyed by those ids. The two
// batches run sequentially without a wrapping transaction, matching
// the documented lifecycle of this operation.
func InitializeYear(c *fiber.Ctx) error {
	req := &models.InitializeYearRequest{}
	if err := parseBody(c, req); err != nil {
		return badRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	start, err := planner.ParseStartDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "startDate must be an ISO-8601 date",
			"field":   "startDate",
		})
	}

	cq := queries.CycleQueries{DB: database.DB}
	if err := cq.ClearCycles(); err != nil {
		log.Printf("[ERROR] initialize year: %s", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to initialize cycles"})
	}

	created, err := cq.CreateCycles(planner.BuildYear(start))
	if err != nil {
		log.Printf("[ERROR] initialize year: %s", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to initialize cycles"})
	}

	days := make([]models.Day, 0, len(created)*planner.DaysPerCycle)
	for _, cycle := range created {
		days = append(days, planner.BuildDays(cycle.ID, cycle.StartDate)...)
	}

	dq := queries.DayQueries{DB: database.DB}
	if err := dq.CreateDays(days); err != nil {
		log.Printf("[ERROR] initialize year: %s", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to initialize cycles"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Initialized 36 cycles",
		"count":   len(created),
	})
}
