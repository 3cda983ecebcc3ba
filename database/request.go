package database

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FromContext returns the *gorm.DB bound to the request. Prefer the
// per-request transaction opened by middlewares.RequestTx, else fall back to
// the shared handle.
func FromContext(c *fiber.Ctx) (*gorm.DB, error) {
	if v := c.Locals("tx"); v != nil {
		if tx, ok := v.(*gorm.DB); ok && tx != nil {
			return tx, nil
		}
	}
	if DB == nil {
		return nil, errors.New("database not initialized")
	}
	return DB, nil
}
