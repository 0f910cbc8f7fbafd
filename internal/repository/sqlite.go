package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"

	"github.com/brunoqueiroz/curricula-admin/gen/ent"
)

func init() {
	// Ent's sqlite dialect expects the driver under "sqlite3"; modernc
	// registers itself as "sqlite" only.
	sql.Register("sqlite3", &sqlite.Driver{})
}

// InMemoryDSN is the shared-cache DSN used by batch runs and tests.
const InMemoryDSN = "file:curricula?mode=memory&cache=shared&_pragma=foreign_keys(1)"

// OpenSQLite opens a local or in-memory SQLite database and migrates the
// schema. Used by the unattended batch command; the daemon runs on Postgres.
func OpenSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*ent.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dsn == "" {
		dsn = InMemoryDSN
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	// In-memory sqlite vanishes when the last connection closes.
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate sqlite schema", "error", err)
		_ = client.Close()
		return nil, err
	}

	logger.Info("sqlite database ready", "dsn", dsn)
	return client, nil
}
