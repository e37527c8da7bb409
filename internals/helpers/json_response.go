package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

// JsonError: 4xx errors — the client's fault, message states the reason.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrBadRequest.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// JsonServerError: 5xx errors — generic headline plus the captured detail.
func JsonServerError(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "server error",
		"message": detail,
	})
}

/* ===============================
   Query parsing
=================================*/

// QueryInt reads an integer query parameter, falling back on def when the
// value is missing or unparsable.
func QueryInt(c *fiber.Ctx, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
