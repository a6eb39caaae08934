package database

import (
	"fmt"

	"devis-backend/models"

	"gorm.io/gorm"
)

// AutoMigrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Money column types (BIGINT minor units)
// - Indexes (quotes, quote_items)
// - Basic CHECK constraints
// - Idempotency keys table + unique index
func AutoMigrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Company{},
			&models.Client{},
			&models.CatalogItem{},
			&models.Quote{},
			&models.QuoteItem{},
			&models.ThemeSetting{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as BIGINT minor units (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE catalog_items ALTER COLUMN unit_price_minor TYPE bigint`,
			`ALTER TABLE quote_items   ALTER COLUMN unit_price_minor TYPE bigint`,
			`ALTER TABLE quotes        ALTER COLUMN discount_minor   TYPE bigint`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_quotes_user_number ON quotes (user_id, quote_number)`,
			`CREATE INDEX IF NOT EXISTS idx_quote_items_quote_position ON quote_items (quote_id, position)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Non-negative catalog price
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'catalog_items'::regclass
					  AND conname  = 'chk_catalog_items_unit_price_nonneg'
				) THEN
					ALTER TABLE catalog_items
					ADD CONSTRAINT chk_catalog_items_unit_price_nonneg
					CHECK (unit_price_minor >= 0);
				END IF;
			END $$;`,
			// Quote items: quantity >= 0
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'quote_items'::regclass
					  AND conname  = 'chk_quote_items_quantity_nonneg'
				) THEN
					ALTER TABLE quote_items
					ADD CONSTRAINT chk_quote_items_quantity_nonneg
					CHECK (quantity >= 0);
				END IF;
			END $$;`,
			// Quotes: discount >= 0
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'quotes'::regclass
					  AND conname  = 'chk_quotes_discount_nonneg'
				) THEN
					ALTER TABLE quotes
					ADD CONSTRAINT chk_quotes_discount_nonneg
					CHECK (discount_minor >= 0);
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
