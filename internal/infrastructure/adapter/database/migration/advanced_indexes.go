package migration

import (
	"fmt"

	"gorm.io/gorm"
)

var advancedIndexes = []struct {
	name string
	stmt string
}{
	// inventory reads only ever look at stacks that still hold something
	{"idx_inventory_items_held", `CREATE INDEX IF NOT EXISTS idx_inventory_items_held
		ON inventory_items (user_id, item) WHERE qty > 0`},
	{"idx_ledger_entries_created_at_brin", `CREATE INDEX IF NOT EXISTS idx_ledger_entries_created_at_brin
		ON ledger_entries USING BRIN (created_at) WITH (pages_per_range = 32)`},
	{"idx_chat_messages_created_at_brin", `CREATE INDEX IF NOT EXISTS idx_chat_messages_created_at_brin
		ON chat_messages USING BRIN (created_at)`},
}

// hot rows are updated in place on every catch and sale
var fillfactorTables = []string{"wallets", "inventory_items", "daily_awards", "cooldowns"}

func (m *MigrationManager) createAdvancedIndexes(db *gorm.DB) error {
	for _, idx := range advancedIndexes {
		if err := db.Exec(idx.stmt).Error; err != nil {
			return fmt.Errorf("create %s: %w", idx.name, err)
		}
	}
	return nil
}

// applyPerformanceTweaks never fails the migration. Managed postgres may reject storage parameters.
func (m *MigrationManager) applyPerformanceTweaks(db *gorm.DB) error {
	tweaks := make([]string, 0, len(fillfactorTables)+1)
	for _, table := range fillfactorTables {
		tweaks = append(tweaks, fmt.Sprintf("ALTER TABLE %s SET (fillfactor = 80)", table))
	}
	tweaks = append(tweaks, "ALTER TABLE ledger_entries ALTER COLUMN user_id SET STATISTICS 1000")

	for _, stmt := range tweaks {
		// a failed statement aborts the surrounding transaction, so each runs in its own savepoint
		err := db.Transaction(func(sp *gorm.DB) error {
			return sp.Exec(stmt).Error
		})
		if err != nil {
			m.logger.Warn("Skipping performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
	return nil
}
