package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ResolveClientIP picks the originating address: first entry of the
// forwarding header when present, else the transport peer address, else
// "unknown". Pure function so it stays testable without a request.
func ResolveClientIP(forwardedFor, fallback string) string {
	if f := strings.TrimSpace(forwardedFor); f != "" {
		// X-Forwarded-For may hold a proxy chain; the first hop is the client
		return strings.TrimSpace(strings.SplitN(f, ",", 2)[0])
	}
	if fallback != "" {
		return fallback
	}
	return "unknown"
}

// ClientIP resolves the caller's address from a Fiber context.
func ClientIP(c *fiber.Ctx) string {
	return ResolveClientIP(c.Get(fiber.HeaderXForwardedFor), c.IP())
}
