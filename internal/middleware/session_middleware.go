package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the cookie carrying the session identifier.
const SessionCookie = "session_id"

// SessionRequired is a Fiber middleware that rejects requests without a
// session cookie. It only checks presence; resolving the cookie to a user
// is done by each handler. A missing cookie short-circuits the request
// with 403 and an empty data payload.
func SessionRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Cookies(SessionCookie) == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status": "error",
				"data":   []string{},
			})
		}
		return c.Next()
	}
}
