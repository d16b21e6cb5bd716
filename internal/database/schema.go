// Package database holds schema bootstrap for embedded SQLite
// databases. Postgres schemas are managed by the SQL migrations under
// migrations/ instead.
package database

import (
	"context"

	"github.com/uptrace/bun"

	"gigbook/internal/models"
)

// CreateSchema creates the three tables if they do not exist yet.
// Order matters: shows references both other tables.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Venue)(nil),
		(*models.Artist)(nil),
		(*models.Show)(nil),
	}
	for _, m := range tables {
		_, err := db.NewCreateTable().
			Model(m).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
