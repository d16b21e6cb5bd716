package db

import (
	"context"

	"github.com/uptrace/bun"

	"gigbook/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListShows returns every show with both counterpart entities joined
// in.
func (d *DB) ListShows() ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Artist").
		Relation("Venue").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (d *DB) CreateShow(show *models.Show) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(show).Exec(ctx)
		return err
	})
}
