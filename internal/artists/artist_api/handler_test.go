package artist_api_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"gigbook/internal/artists/artist_api"
	"gigbook/internal/artists/db"
	"gigbook/internal/artists/service"
	"gigbook/internal/database"
	"gigbook/internal/logger"
	"gigbook/internal/models"
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
	handler := artist_api.NewHandler(service.NewArtistService(&db.DB{Bun: bunDB}), log, renderer)

	r := chi.NewRouter()
	r.Route("/artists", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/search", handler.Search)
		r.Get("/create", handler.NewForm)
		r.Post("/create", handler.Create)
		r.Get("/{artistID}", handler.Show)
		r.Get("/{artistID}/edit", handler.EditForm)
		r.Post("/{artistID}/edit", handler.EditSubmit)
	})
	return r, bunDB
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateRendersSuccessFlash(t *testing.T) {
	r, bunDB := setupRouter(t)

	rec := postForm(r, "/artists/create", url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals is now listed!")

	count, err := bunDB.NewSelect().Model((*models.Artist)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateRendersFailureFlashOnBadPhone(t *testing.T) {
	r, bunDB := setupRouter(t)

	rec := postForm(r, "/artists/create", url.Values{
		"name":  {"Guns N Petals"},
		"phone": {"not-a-phone"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "An error occurred. Guns N Petals could not be listed.")

	count, err := bunDB.NewSelect().Model((*models.Artist)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestShowUnknownArtistRenders404(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/artists/9999", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditSubmitOverwritesArtist(t *testing.T) {
	r, bunDB := setupRouter(t)

	artist := models.Artist{Name: "Matt Quevedo", City: "New York", State: "NY", Phone: "212-555-0100"}
	_, err := bunDB.NewInsert().Model(&artist).Exec(context.Background())
	require.NoError(t, err)

	detailPath := "/artists/" + strconv.FormatInt(artist.ID, 10)
	rec := postForm(r, detailPath+"/edit", url.Values{
		"name":  {"Matt Quevedo"},
		"city":  {"Brooklyn"},
		"state": {"NY"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, detailPath, rec.Header().Get("Location"))

	stored := new(models.Artist)
	err = bunDB.NewSelect().Model(stored).Where("id = ?", artist.ID).Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Brooklyn", stored.City)
	// phone was absent from the submission, so the overwrite clears it
	assert.Equal(t, "", stored.Phone)
}
