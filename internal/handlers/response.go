package handlers

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kasir/internal/services"
)

func success(c *fiber.Ctx, message string, data interface{}) error {
	body := fiber.Map{
		"status":  "success",
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(body)
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// requestError is a rejected request body, rendered as a 400.
type requestError struct {
	message string
	fields  map[string]string
}

func (e *requestError) send(c *fiber.Ctx) error {
	body := fiber.Map{
		"status":  "error",
		"message": e.message,
	}
	if len(e.fields) > 0 {
		body["errors"] = e.fields
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// bindRequest decodes the request body into req and runs its validate tags.
func bindRequest(c *fiber.Ctx, validate *validator.Validate, req interface{}) *requestError {
	if err := c.BodyParser(req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return &requestError{message: "Invalid request body"}
	}
	if err := validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return &requestError{message: err.Error()}
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return &requestError{message: "Validation failed", fields: errorMessages}
	}
	return nil
}

func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error to its status code. Anything unexpected
// is logged in full and reported with a generic message.
func respondError(c *fiber.Ctx, action string, err error) error {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError
	switch {
	case errors.As(err, &validationErr):
		return errorJSON(c, fiber.StatusBadRequest, validationErr.Message)
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":     "error",
			"message":    conflictErr.Error(),
			"product_id": conflictErr.ProductID,
		})
	case errors.Is(err, services.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicate), errors.Is(err, services.ErrInUse):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	log.Printf("Error trying to %s: %v", action, err)
	return errorJSON(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not %s", action))
}
