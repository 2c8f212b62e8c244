package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator reports field names by their json tag so validation
// errors name the field the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodes the request body into dst. Unknown fields are
// ignored; a known field with the wrong JSON type surfaces as a
// *json.UnmarshalTypeError that badRequest turns into a field-level
// validation error.
func parseBody(c *fiber.Ctx, dst any) error {
	return json.Unmarshal(c.Body(), dst)
}

// badRequest writes the 400 validation body {message, field?},
// identifying the first failing field when one is known.
func badRequest(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			"field":   typeErr.Field,
		})
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		first := vErrs[0]
		var msg string
		switch first.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", first.Field())
		case "datetime":
			msg = fmt.Sprintf("%s must be in HH:mm format", first.Field())
		default:
			msg = fmt.Sprintf("%s is invalid", first.Field())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msg,
			"field":   first.Field(),
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
	})
}

func notFound(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": entity + " not found",
	})
}
