package middlewares

import (
	"log"

	"invoicing-backend/database"

	"github.com/gofiber/fiber/v2"
)

// RequestTx opens a per-request DB transaction. Sequence allocation and the
// invoice snapshot write share this transaction, so an aborted request rolls
// back both and no document number is burned.
// Order: run AFTER IsAuthenticatedHeader() (so userID/companyID are present),
// and AFTER Idempotency() (so idempotency records aren't tied to the handler TX).
func RequestTx() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		if c.Locals("companyID") == nil {
			// Public endpoints (e.g., /login) carry no tenant; just proceed.
			return c.Next()
		}

		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		// Ensure we always cleanup.
		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so Fiber's handler can catch
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				log.Printf("tx commit failed: %v", e)
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		// Make the TX available to handlers via database.FromContext(c).
		c.Locals("tx", tx)

		// Run the handler chain inside this TX.
		err = c.Next()
		return err
	}
}
