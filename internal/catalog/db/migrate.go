package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"ms-booking/internal/models"
)

// Migrate creates the catalog and booking tables. The store is an
// in-memory database, so tables always start empty.
func Migrate(ctx context.Context, bunDB *bun.DB) error {
	tables := []interface{}{
		(*models.Experience)(nil),
		(*models.Slot)(nil),
		(*models.Booking)(nil),
	}

	for _, model := range tables {
		_, err := bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}
