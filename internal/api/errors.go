package api

import (
	"errors"
	"strings"

	"github.com/bsthun/gut"
	"github.com/fundsflow/fundsflow/internal/repository"
	"github.com/fundsflow/fundsflow/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ErrorHandler turns handler errors into JSON error responses.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		// * case of `*fiber.Error`
		var fiberError *fiber.Error
		if errors.As(err, &fiberError) {
			return c.Status(fiberError.Code).JSON(&Response{
				Success: gut.Ptr(false),
				Message: &fiberError.Message,
			})
		}

		// * case of `validator.ValidationErrors`
		var validatorErr validator.ValidationErrors
		if errors.As(err, &validatorErr) {
			lists := make([]string, 0, len(validatorErr))
			for _, fe := range validatorErr {
				lists = append(lists, fe.Field()+" ("+fe.Tag()+")")
			}
			return c.Status(fiber.StatusBadRequest).JSON(&Response{
				Success: gut.Ptr(false),
				Message: gut.Ptr("validation failed on " + strings.Join(lists, ", ")),
				Error:   gut.Ptr(validatorErr.Error()),
			})
		}

		// * case of service errors
		switch {
		case errors.Is(err, service.ErrUnknownDashboard), errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(&Response{
				Success: gut.Ptr(false),
				Message: gut.Ptr("not found"),
				Error:   gut.Ptr(err.Error()),
			})
		case errors.Is(err, service.ErrInvalidField), errors.Is(err, service.ErrMissingField):
			return c.Status(fiber.StatusBadRequest).JSON(&Response{
				Success: gut.Ptr(false),
				Message: gut.Ptr("bad request"),
				Error:   gut.Ptr(err.Error()),
			})
		}

		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(&Response{
			Success: gut.Ptr(false),
			Message: gut.Ptr("unknown server error"),
			Error:   gut.Ptr(err.Error()),
		})
	}
}

// statusOf is the status ErrorHandler will answer err with.
func statusOf(err error) int {
	var fiberError *fiber.Error
	var validatorErr validator.ValidationErrors
	switch {
	case errors.As(err, &fiberError):
		return fiberError.Code
	case errors.As(err, &validatorErr),
		errors.Is(err, service.ErrInvalidField),
		errors.Is(err, service.ErrMissingField):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrUnknownDashboard), errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
