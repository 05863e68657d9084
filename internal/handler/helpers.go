package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/gradebook"
	"github.com/rosterbook/gradebook-api/internal/store"
	"github.com/rosterbook/gradebook-api/internal/utils"
)

// sendDomainError maps domain and validation failures onto HTTP statuses.
// Anything unrecognised is a 500 with the cause logged, never leaked.
func sendDomainError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	case errors.Is(err, gradebook.ErrInvalidArgument):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, gradebook.ErrNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, gradebook.ErrNotEnrolled):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, store.ErrSnapshotNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	default:
		logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func parseQueryFloat(c *fiber.Ctx, key string) (*float64, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, errors.New("invalid " + key)
	}
	return &parsed, nil
}

func parseQueryIntPtr(c *fiber.Ctx, key string) (*int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.New("invalid " + key)
	}
	return &parsed, nil
}

func parseQueryBool(c *fiber.Ctx, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
