// Package service assembles artist views: the flat listing, search
// results, and the upcoming/past partition of an artist's shows.
package service

import (
	"fmt"
	"time"

	"gigbook/internal/forms"
	"gigbook/internal/models"
)

// ArtistDBLayer is the storage surface the service needs.
type ArtistDBLayer interface {
	GetArtistByID(id int64) (*models.Artist, error)
	ListArtists() ([]models.Artist, error)
	SearchArtistsByName(term string) ([]models.Artist, error)
	CountUpcomingShows(artistID int64, now time.Time) (int, error)
	ShowsForArtist(artistID int64) ([]models.Show, error)
	CreateArtist(artist *models.Artist) error
	UpdateArtist(artist *models.Artist) error
}

type ArtistService struct {
	DB ArtistDBLayer
}

func NewArtistService(db ArtistDBLayer) *ArtistService {
	return &ArtistService{DB: db}
}

func startTimeText(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// List returns every artist as a flat id/name listing.
func (s *ArtistService) List() ([]models.ArtistRow, error) {
	artists, err := s.DB.ListArtists()
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	rows := make([]models.ArtistRow, 0, len(artists))
	for _, artist := range artists {
		rows = append(rows, models.ArtistRow{ID: artist.ID, Name: artist.Name})
	}
	return rows, nil
}

// Search returns every artist whose name contains the term as a
// case-insensitive substring, annotated with its upcoming-show count.
func (s *ArtistService) Search(term string, now time.Time) (*models.SearchResults, error) {
	artists, err := s.DB.SearchArtistsByName(term)
	if err != nil {
		return nil, fmt.Errorf("artist search %q failed: %w", term, err)
	}

	results := &models.SearchResults{
		Count: len(artists),
		Data:  make([]models.SearchResult, 0, len(artists)),
	}
	for _, artist := range artists {
		count, err := s.DB.CountUpcomingShows(artist.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to count upcoming shows for artist %d: %w", artist.ID, err)
		}
		results.Data = append(results.Data, models.SearchResult{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: count,
		})
	}
	return results, nil
}

// Detail builds the artist page: genres split into a list and the
// artist's shows partitioned into upcoming and past at now.
func (s *ArtistService) Detail(id int64, now time.Time) (*models.ArtistPage, error) {
	artist, err := s.DB.GetArtistByID(id)
	if err != nil {
		return nil, err
	}

	shows, err := s.DB.ShowsForArtist(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for artist %d: %w", id, err)
	}

	page := &models.ArtistPage{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             models.SplitGenres(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
	}

	for _, show := range shows {
		row := models.ArtistShow{
			VenueID:   show.VenueID,
			StartTime: startTimeText(show.StartTime),
		}
		if show.Venue != nil {
			row.VenueName = show.Venue.Name
			row.VenueImageLink = show.Venue.ImageLink
		}
		if show.Upcoming(now) {
			page.UpcomingShows = append(page.UpcomingShows, row)
		} else {
			page.PastShows = append(page.PastShows, row)
		}
	}
	page.UpcomingShowsCount = len(page.UpcomingShows)
	page.PastShowsCount = len(page.PastShows)

	return page, nil
}

// Create persists a new artist from a validated form.
func (s *ArtistService) Create(form forms.ArtistForm) (*models.Artist, error) {
	artist := &models.Artist{}
	form.Apply(artist)
	if err := s.DB.CreateArtist(artist); err != nil {
		return nil, fmt.Errorf("failed to create artist %q: %w", artist.Name, err)
	}
	return artist, nil
}

// Update overwrites the stored artist with the submitted fields.
func (s *ArtistService) Update(id int64, form forms.ArtistForm) (*models.Artist, error) {
	artist, err := s.DB.GetArtistByID(id)
	if err != nil {
		return nil, err
	}
	form.Apply(artist)
	if err := s.DB.UpdateArtist(artist); err != nil {
		return nil, fmt.Errorf("failed to update artist %d: %w", id, err)
	}
	return artist, nil
}
