package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// maxSequenceAttempts bounds the internal retry of transient counter
// conflicts before giving up with ErrSequenceUnavailable.
const maxSequenceAttempts = 3

// AllocateSequence issues the next invoice ordinal for (companyID,
// financialYear). The read-increment-write is a single atomic upsert against
// the unique (company_id, financial_year) row, so two concurrent allocations
// for the same pair serialize on that row lock and can neither collide nor
// skip, while allocations for other pairs proceed in parallel.
//
// It runs inside the caller's transaction: if the caller later rolls back,
// the increment rolls back with it and the ordinal is never observed.
func AllocateSequence(tx *gorm.DB, companyID uint, financialYear string) (int64, error) {
	const upsert = `
		INSERT INTO document_sequences (company_id, financial_year, current_number)
		VALUES (?, ?, 1)
		ON CONFLICT (company_id, financial_year) DO UPDATE
		SET current_number = document_sequences.current_number + 1
		RETURNING current_number`

	var lastErr error
	for attempt := 1; attempt <= maxSequenceAttempts; attempt++ {
		// Savepoint per attempt: a failed statement poisons the enclosing
		// Postgres transaction, so retries must roll back to a clean mark.
		sp := fmt.Sprintf("alloc_seq_%d", attempt)
		if err := tx.SavePoint(sp).Error; err != nil {
			return 0, fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
		}

		var next int64
		if err := tx.Raw(upsert, companyID, financialYear).Scan(&next).Error; err != nil {
			lastErr = err
			if !retryableSequenceError(err) {
				break
			}
			if err := tx.RollbackTo(sp).Error; err != nil {
				return 0, fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
			}
			continue
		}
		return next, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrSequenceUnavailable, lastErr)
}

// retryableSequenceError reports whether the allocator should re-run the
// upsert: serialization failures, deadlocks, and the unique-violation race
// two first-of-year inserts can produce under serializable isolation.
func retryableSequenceError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "23505":
		return true
	}
	return false
}

// FormatInvoiceNumber renders "{prefix}/{financialYear}/{ordinal}" with the
// ordinal zero-padded to three digits, e.g. "PRM/2025-2026/001". Ordinals
// past 999 widen rather than truncate.
func FormatInvoiceNumber(prefix, financialYear string, ordinal int64) string {
	return fmt.Sprintf("%s/%s/%03d", prefix, financialYear, ordinal)
}
