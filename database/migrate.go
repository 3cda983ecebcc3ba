package database

import (
	"fmt"

	"invoicing-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - Money column types (NUMERIC(12,2))
// - The unique (company_id, financial_year) index the sequence allocator
//   relies on for its atomic upsert
// - Basic CHECK constraints
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Company{},
			&models.Client{},
			&models.Product{},
			&models.BankDetail{},
			&models.Invoice{},
			&models.InvoiceItem{},
			&models.InvoiceRevision{},
			&models.DocumentSequence{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE invoices       ALTER COLUMN total_before_tax TYPE numeric(12,2)`,
			`ALTER TABLE invoices       ALTER COLUMN cgst_amount      TYPE numeric(12,2)`,
			`ALTER TABLE invoices       ALTER COLUMN sgst_amount      TYPE numeric(12,2)`,
			`ALTER TABLE invoices       ALTER COLUMN igst_amount      TYPE numeric(12,2)`,
			`ALTER TABLE invoices       ALTER COLUMN total_tax        TYPE numeric(12,2)`,
			`ALTER TABLE invoices       ALTER COLUMN total_after_tax  TYPE numeric(12,2)`,
			`ALTER TABLE invoice_items  ALTER COLUMN quantity         TYPE numeric(12,3)`,
			`ALTER TABLE invoice_items  ALTER COLUMN rate             TYPE numeric(12,3)`,
			`ALTER TABLE invoice_items  ALTER COLUMN amount           TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_document_sequences_company_year ON document_sequences (company_id, financial_year)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_invoice_revisions_invoice_id_revision_no ON invoice_revisions (invoice_id, revision_no)`,
			`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items (invoice_id)`,
			`CREATE INDEX IF NOT EXISTS idx_invoices_company ON invoices (company_id)`,
			`DROP INDEX IF EXISTS idx_idempotency_keys_key`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_company_key ON idempotency_keys (company_id, key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoice_items'::regclass
					  AND conname  = 'chk_invoice_items_quantity_nonneg'
				) THEN
					ALTER TABLE invoice_items
					ADD CONSTRAINT chk_invoice_items_quantity_nonneg
					CHECK (quantity >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoice_items'::regclass
					  AND conname  = 'chk_invoice_items_rate_nonneg'
				) THEN
					ALTER TABLE invoice_items
					ADD CONSTRAINT chk_invoice_items_rate_nonneg
					CHECK (rate >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'document_sequences'::regclass
					  AND conname  = 'chk_document_sequences_nonneg'
				) THEN
					ALTER TABLE document_sequences
					ADD CONSTRAINT chk_document_sequences_nonneg
					CHECK (current_number >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
