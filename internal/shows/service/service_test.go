package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/forms"
	"gigbook/internal/models"
	"gigbook/internal/shows/service"
)

// MockShowDB is an in-memory implementation of the ShowDBLayer
// interface.
type MockShowDB struct {
	shows         []models.Show
	nextID        int64
	shouldFailOn  string
	errorToReturn error
}

func NewMockShowDB() *MockShowDB {
	return &MockShowDB{nextID: 1}
}

func (m *MockShowDB) SetupFailure(operation string, err error) {
	m.shouldFailOn = operation
	m.errorToReturn = err
}

func (m *MockShowDB) ListShows() ([]models.Show, error) {
	if m.shouldFailOn == "ListShows" {
		return nil, m.errorToReturn
	}
	return m.shows, nil
}

func (m *MockShowDB) CreateShow(show *models.Show) error {
	if m.shouldFailOn == "CreateShow" {
		return m.errorToReturn
	}
	show.ID = m.nextID
	m.nextID++
	m.shows = append(m.shows, *show)
	return nil
}

func TestListShapesRows(t *testing.T) {
	mockDB := NewMockShowDB()
	mockDB.shows = []models.Show{
		{
			ID:        1,
			ArtistID:  4,
			VenueID:   1,
			StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
			Artist:    &models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://example.com/a.jpg"},
			Venue:     &models.Venue{ID: 1, Name: "The Musical Hop"},
		},
	}

	svc := service.NewShowService(mockDB)
	rows, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(1), rows[0].VenueID)
	assert.Equal(t, "The Musical Hop", rows[0].VenueName)
	assert.Equal(t, int64(4), rows[0].ArtistID)
	assert.Equal(t, "Guns N Petals", rows[0].ArtistName)
	assert.Equal(t, "https://example.com/a.jpg", rows[0].ArtistImageLink)
	assert.Equal(t, "2035-04-01 20:00:00", rows[0].StartTime)
}

func TestCreateParsesSubmission(t *testing.T) {
	mockDB := NewMockShowDB()
	svc := service.NewShowService(mockDB)

	err := svc.Create(forms.ShowForm{
		ArtistID:  "4",
		VenueID:   "1",
		StartTime: "2035-04-01T20:00",
	})
	require.NoError(t, err)
	require.Len(t, mockDB.shows, 1)
	assert.Equal(t, int64(4), mockDB.shows[0].ArtistID)
	assert.Equal(t, int64(1), mockDB.shows[0].VenueID)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), mockDB.shows[0].StartTime)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := service.NewShowService(NewMockShowDB())

	assert.Error(t, svc.Create(forms.ShowForm{ArtistID: "abc", VenueID: "1", StartTime: "2035-04-01T20:00"}))
	assert.Error(t, svc.Create(forms.ShowForm{ArtistID: "4", VenueID: "", StartTime: "2035-04-01T20:00"}))
	assert.Error(t, svc.Create(forms.ShowForm{ArtistID: "4", VenueID: "1", StartTime: "next tuesday"}))
}

func TestCreateSurfacesPersistenceFailure(t *testing.T) {
	mockDB := NewMockShowDB()
	mockDB.SetupFailure("CreateShow", errors.New("FOREIGN KEY constraint failed"))
	svc := service.NewShowService(mockDB)

	err := svc.Create(forms.ShowForm{ArtistID: "99", VenueID: "1", StartTime: "2035-04-01T20:00"})
	assert.Error(t, err)
}
