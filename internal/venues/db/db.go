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

func (d *DB) GetVenueByID(id int64) (*models.Venue, error) {
	var venue models.Venue
	err := d.Bun.NewSelect().
		Model(&venue).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("venue %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// CityStates returns the distinct (city, state) pairs observed among
// venues, in whatever order the grouping yields.
func (d *DB) CityStates() ([]models.CityGroup, error) {
	var groups []models.CityGroup
	err := d.Bun.NewSelect().
		Model((*models.Venue)(nil)).
		Column("city", "state").
		Group("state", "city").
		Scan(context.Background(), &groups)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (d *DB) VenuesByCityState(city, state string) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Where("city = ?", city).
		Where("state = ?", state).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchVenuesByName matches the term as a case-insensitive substring
// of the venue name. An empty term matches every venue.
func (d *DB) SearchVenuesByName(term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// CountUpcomingShows counts the venue's shows starting strictly after
// the given reference time.
func (d *DB) CountUpcomingShows(venueID int64, now time.Time) (int, error) {
	return d.Bun.NewSelect().
		Model((*models.Show)(nil)).
		Where("venue_id = ?", venueID).
		Where("start_time > ?", now).
		Count(context.Background())
}

// ShowsForVenue returns the venue's shows with the performing artist
// joined in.
func (d *DB) ShowsForVenue(venueID int64) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Artist").
		Where("show.venue_id = ?", venueID).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (d *DB) CreateVenue(venue *models.Venue) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(venue).Exec(ctx)
		return err
	})
}

func (d *DB) UpdateVenue(venue *models.Venue) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model(venue).
			WherePK().
			Exec(ctx)
		return err
	})
}

// DeleteVenue removes the venue and its shows in one transaction.
// Shows cannot outlive their venue, so the cascade is spelled out
// here instead of being left to the storage engine.
func (d *DB) DeleteVenue(id int64) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}
