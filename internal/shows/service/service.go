// Package service shapes the flat show listing and books new shows
// from raw form strings.
package service

import (
	"fmt"
	"strconv"

	"gigbook/internal/forms"
	"gigbook/internal/models"
	"gigbook/internal/utils"
)

// ShowDBLayer is the storage surface the service needs.
type ShowDBLayer interface {
	ListShows() ([]models.Show, error)
	CreateShow(show *models.Show) error
}

type ShowService struct {
	DB ShowDBLayer
}

func NewShowService(db ShowDBLayer) *ShowService {
	return &ShowService{DB: db}
}

// List returns every show as a flat joined row, start time rendered
// as text. No grouping, no time partitioning.
func (s *ShowService) List() ([]models.ShowRow, error) {
	shows, err := s.DB.ListShows()
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	rows := make([]models.ShowRow, 0, len(shows))
	for _, show := range shows {
		row := models.ShowRow{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.StartTime.Format("2006-01-02 15:04:05"),
		}
		if show.Venue != nil {
			row.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			row.ArtistName = show.Artist.Name
			row.ArtistImageLink = show.Artist.ImageLink
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Create books a show from the raw submitted strings. The referenced
// ids are not checked for existence and overlapping bookings are
// allowed; a dangling reference surfaces as a constraint failure at
// commit time.
func (s *ShowService) Create(form forms.ShowForm) error {
	artistID, err := strconv.ParseInt(form.ArtistID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid artist id %q: %w", form.ArtistID, err)
	}
	venueID, err := strconv.ParseInt(form.VenueID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid venue id %q: %w", form.VenueID, err)
	}
	startTime, err := utils.ParseDateTime(form.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", form.StartTime, err)
	}

	show := &models.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}
	if err := s.DB.CreateShow(show); err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}
	return nil
}
