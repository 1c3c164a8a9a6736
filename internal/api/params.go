package api

import (
	"strconv"

	"studyplanner/internal/service"

	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, CodeInvalidID, "Invalid ID format")
}

// queryInt reads an optional integer query parameter, falling back to def when absent.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &service.ValidationError{Fields: []string{key + " must be an integer"}}
	}
	return v, nil
}

// queryInt64Ptr reads an optional integer filter; absent means no filter.
func queryInt64Ptr(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &service.ValidationError{Fields: []string{key + " must be an integer"}}
	}
	return &v, nil
}
