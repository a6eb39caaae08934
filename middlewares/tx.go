package middlewares

import (
	"go.uber.org/zap"

	"devis-backend/database"
	"devis-backend/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestTx opens a per-request DB transaction. Order: run AFTER
// IsAuthenticatedHeader() and AFTER Idempotency() (so idempotency records
// aren't tied to the handler TX).
func RequestTx() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
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
				logger.Error("tx commit failed", zap.Error(e))
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		// Make the TX available to handlers via GetRequestDB(c).
		c.Locals("tx", tx)

		// Run the handler chain inside this TX.
		err = c.Next()
		return err
	}
}
