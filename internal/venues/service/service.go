// Package service assembles the denormalized venue views the
// templates consume: per-city directory groups, search results, and
// the upcoming/past partition of a venue's shows.
package service

import (
	"fmt"
	"time"

	"gigbook/internal/forms"
	"gigbook/internal/models"
)

// VenueDBLayer is the storage surface the service needs.
type VenueDBLayer interface {
	GetVenueByID(id int64) (*models.Venue, error)
	CityStates() ([]models.CityGroup, error)
	VenuesByCityState(city, state string) ([]models.Venue, error)
	SearchVenuesByName(term string) ([]models.Venue, error)
	CountUpcomingShows(venueID int64, now time.Time) (int, error)
	ShowsForVenue(venueID int64) ([]models.Show, error)
	CreateVenue(venue *models.Venue) error
	UpdateVenue(venue *models.Venue) error
	DeleteVenue(id int64) error
}

type VenueService struct {
	DB VenueDBLayer
}

func NewVenueService(db VenueDBLayer) *VenueService {
	return &VenueService{DB: db}
}

// startTimeText is how a show's start timestamp is carried into view
// models; the datetime template func re-renders it for display.
func startTimeText(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// Directory groups every venue under its (city, state) pair, each
// venue annotated with its upcoming-show count at now. Group order is
// whatever the grouping query yields.
func (s *VenueService) Directory(now time.Time) ([]models.CityGroup, error) {
	groups, err := s.DB.CityStates()
	if err != nil {
		return nil, fmt.Errorf("failed to list venue cities: %w", err)
	}

	for i := range groups {
		venues, err := s.DB.VenuesByCityState(groups[i].City, groups[i].State)
		if err != nil {
			return nil, fmt.Errorf("failed to list venues for %s, %s: %w", groups[i].City, groups[i].State, err)
		}
		for _, venue := range venues {
			count, err := s.DB.CountUpcomingShows(venue.ID, now)
			if err != nil {
				return nil, fmt.Errorf("failed to count upcoming shows for venue %d: %w", venue.ID, err)
			}
			groups[i].Venues = append(groups[i].Venues, models.VenueSummary{
				ID:               venue.ID,
				Name:             venue.Name,
				NumUpcomingShows: count,
			})
		}
	}
	return groups, nil
}

// Search returns every venue whose name contains the term as a
// case-insensitive substring, annotated with its upcoming-show count.
func (s *VenueService) Search(term string, now time.Time) (*models.SearchResults, error) {
	venues, err := s.DB.SearchVenuesByName(term)
	if err != nil {
		return nil, fmt.Errorf("venue search %q failed: %w", term, err)
	}

	results := &models.SearchResults{
		Count: len(venues),
		Data:  make([]models.SearchResult, 0, len(venues)),
	}
	for _, venue := range venues {
		count, err := s.DB.CountUpcomingShows(venue.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to count upcoming shows for venue %d: %w", venue.ID, err)
		}
		results.Data = append(results.Data, models.SearchResult{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: count,
		})
	}
	return results, nil
}

// Detail builds the venue page: genres split into a list and the
// venue's shows partitioned into upcoming and past at now.
func (s *VenueService) Detail(id int64, now time.Time) (*models.VenuePage, error) {
	venue, err := s.DB.GetVenueByID(id)
	if err != nil {
		return nil, err
	}

	shows, err := s.DB.ShowsForVenue(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for venue %d: %w", id, err)
	}

	page := &models.VenuePage{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             models.SplitGenres(venue.Genres),
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Website:            venue.Website,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
	}

	for _, show := range shows {
		row := models.VenueShow{
			ArtistID:  show.ArtistID,
			StartTime: startTimeText(show.StartTime),
		}
		if show.Artist != nil {
			row.ArtistName = show.Artist.Name
			row.ArtistImageLink = show.Artist.ImageLink
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

// Create persists a new venue from a validated form.
func (s *VenueService) Create(form forms.VenueForm) (*models.Venue, error) {
	venue := &models.Venue{}
	form.Apply(venue)
	if err := s.DB.CreateVenue(venue); err != nil {
		return nil, fmt.Errorf("failed to create venue %q: %w", venue.Name, err)
	}
	return venue, nil
}

// Update overwrites the stored venue with the submitted fields.
func (s *VenueService) Update(id int64, form forms.VenueForm) (*models.Venue, error) {
	venue, err := s.DB.GetVenueByID(id)
	if err != nil {
		return nil, err
	}
	form.Apply(venue)
	if err := s.DB.UpdateVenue(venue); err != nil {
		return nil, fmt.Errorf("failed to update venue %d: %w", id, err)
	}
	return venue, nil
}

// Delete removes the venue and returns its name for the flash
// message.
func (s *VenueService) Delete(id int64) (string, error) {
	venue, err := s.DB.GetVenueByID(id)
	if err != nil {
		return "", err
	}
	if err := s.DB.DeleteVenue(id); err != nil {
		return "", fmt.Errorf("failed to delete venue %d: %w", id, err)
	}
	return venue.Name, nil
}
