package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"gigbook/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) GetArtistByID(id int64) (*models.Artist, error) {
	var artist models.Artist
	err := d.Bun.NewSelect().
		Model(&artist).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("artist %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (d *DB) ListArtists() ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// SearchArtistsByName matches the term as a case-insensitive
// substring of the artist name. An empty term matches every artist.
func (d *DB) SearchArtistsByName(term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// CountUpcomingShows counts the artist's shows starting strictly
// after the given reference time.
func (d *DB) CountUpcomingShows(artistID int64, now time.Time) (int, error) {
	return d.Bun.NewSelect().
		Model((*models.Show)(nil)).
		Where("artist_id = ?", artistID).
		Where("start_time > ?", now).
		Count(context.Background())
}

// ShowsForArtist returns the artist's shows with the booked venue
// joined in.
func (d *DB) ShowsForArtist(artistID int64) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Venue").
		Where("show.artist_id = ?", artistID).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (d *DB) CreateArtist(artist *models.Artist) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(artist).Exec(ctx)
		return err
	})
}

func (d *DB) UpdateArtist(artist *models.Artist) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model(artist).
			WherePK().
			Exec(ctx)
		return err
	})
}
