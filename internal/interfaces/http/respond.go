package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/domain"
)

var validate = validator.New()

// respondOK wraps data in the uniform envelope.
func respondOK(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{Success: true, Message: message, Data: data})
}

// respondError is the single point where domain errors become status codes.
// Business errors carry their own Vietnamese message; anything unrecognized
// is logged and reported as a generic 500 so internals never leak.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Có lỗi xảy ra, vui lòng thử lại sau"

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEmailExists):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrTokenInvalid):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
		message = err.Error()
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}
	return c.Status(status).JSON(dto.Envelope{Success: false, Message: message})
}

// parseBody binds and validates a JSON body. Malformed JSON and failed
// validate tags both surface as a 400 with the validation message.
func parseBody[T any](c *fiber.Ctx) (*T, error) {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return nil, domain.ErrValidation
	}
	if err := validate.Struct(&in); err != nil {
		return nil, domain.ErrValidation
	}
	return &in, nil
}

// parseQuery binds the query-string filters for list endpoints.
func parseQuery[T any](c *fiber.Ctx) (*T, error) {
	var in T
	if err := c.QueryParser(&in); err != nil {
		return nil, domain.ErrValidation
	}
	return &in, nil
}
