package database

import (
	"context"
	"database/sql"
)

// migrations are executed in order at startup. Statements must be
// idempotent (IF NOT EXISTS) because they run on every boot.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS bmi_records (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id    VARCHAR(191)    NOT NULL,
		height     DOUBLE          NOT NULL,
		weight     DOUBLE          NOT NULL,
		age        INT             NOT NULL,
		bmi        DOUBLE          NOT NULL,
		category   VARCHAR(32)     NOT NULL,
		created_at DATETIME(3)     NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at DATETIME(3)     NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		PRIMARY KEY (id),
		KEY idx_bmi_records_user_created (user_id, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate applies the schema statements above. It is called once from
// main after Open succeeds; any failure aborts startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
