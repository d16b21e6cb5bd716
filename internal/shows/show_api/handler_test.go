package show_api_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"gigbook/internal/database"
	"gigbook/internal/logger"
	"gigbook/internal/models"
	"gigbook/internal/shows/db"
	"gigbook/internal/shows/service"
	"gigbook/internal/shows/show_api"
	"gigbook/internal/web"
)

func setupRouter(t *testing.T) (*chi.Mux, *bun.DB) {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	require.NoError(t, database.CreateSchema(context.Background(), bunDB))
	t.Cleanup(func() { bunDB.Close() })

	log := &logger.Logger{}
	renderer := web.NewRenderer(log)
	handler := show_api.NewHandler(service.NewShowService(&db.DB{Bun: bunDB}), log, renderer)

	r := chi.NewRouter()
	r.Route("/shows", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/create", handler.NewForm)
		r.Post("/create", handler.Create)
	})
	return r, bunDB
}

func seedBooking(t *testing.T, bunDB *bun.DB) (models.Venue, models.Artist) {
	t.Helper()
	ctx := context.Background()

	venue := models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"}
	_, err := bunDB.NewInsert().Model(&venue).Exec(ctx)
	require.NoError(t, err)

	artist := models.Artist{Name: "Guns N Petals"}
	_, err = bunDB.NewInsert().Model(&artist).Exec(ctx)
	require.NoError(t, err)

	return venue, artist
}

func TestListRendersJoinedRows(t *testing.T) {
	r, bunDB := setupRouter(t)
	venue, artist := seedBooking(t, bunDB)

	show := models.Show{
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	}
	_, err := bunDB.NewInsert().Model(&show).Exec(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/shows/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The Musical Hop")
	assert.Contains(t, body, "Guns N Petals")
}

func TestCreateBooksShow(t *testing.T) {
	r, bunDB := setupRouter(t)
	venue, artist := seedBooking(t, bunDB)

	form := url.Values{
		"artist_id":  {strconv.FormatInt(artist.ID, 10)},
		"venue_id":   {strconv.FormatInt(venue.ID, 10)},
		"start_time": {"2035-04-01T20:00"},
	}
	req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show was successfully listed!")

	count, err := bunDB.NewSelect().Model((*models.Show)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateRendersFailureFlash(t *testing.T) {
	r, bunDB := setupRouter(t)

	form := url.Values{
		"artist_id":  {"not-a-number"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01T20:00"},
	}
	req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "An error occurred. Show could not be listed.")

	count, err := bunDB.NewSelect().Model((*models.Show)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
