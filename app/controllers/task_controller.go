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

func CreateTask(c *fiber.Ctx) error {
	req := &models.CreateTaskRequest{}
	if err := parseBody(c, req); err != nil {
		return badRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	task := &models.Task{
		DayID:       req.DayID,
		Content:     req.Content,
		IsCompleted: req.IsCompleted,
	}

	tq := queries.TaskQueries{DB: database.DB}
	if err := tq.CreateTask(task); err != nil {
		log.Printf("[ERROR] create task: %s", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create task"})
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func UpdateTask(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, "Task")
	}

	req := &models.UpdateTaskRequest{}
	if err := parseBody(c, req); err != nil {
		return badRequest(c, err)
	}

	tq := queries.TaskQueries{DB: database.DB}
	updated, err := tq.UpdateTask(id, req)
	if errors.Is(err, queries.ErrNotFound) {
		return notFound(c, "Task")
	}
	if err != nil {
		log.Printf("[ERROR] update task %d: %s", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update task"})
	}
	return c.JSON(updated)
}

// DeleteTask always reports success, whether or not the id existed.
// Retrying a delete must stay harmless for clients.
func DeleteTask(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	tq := queries.TaskQueries{DB: database.DB}
	if err := tq.DeleteTask(id); err != nil {
		log.Printf("[ERROR] delete task %d: %s", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete task"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
