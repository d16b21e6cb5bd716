package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/logger"
)

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetFlash(rec, "Venue The Musical Hop was successfully listed!")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "gigbook_flash", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()

	message := PopFlash(rec, req)
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", message)

	// popping clears the cookie
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestPopFlashWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	assert.Equal(t, "", PopFlash(rec, req))
	assert.Empty(t, rec.Result().Cookies())
}

func TestRenderHome(t *testing.T) {
	rd := NewRenderer(&logger.Logger{})
	rec := httptest.NewRecorder()

	rd.Render(rec, "home.html", Page{Flash: "Show was successfully listed!"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Show was successfully listed!")
}

func TestRenderErrorPages(t *testing.T) {
	rd := NewRenderer(&logger.Logger{})

	rec := httptest.NewRecorder()
	rd.RenderNotFound(rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	rd.RenderServerError(rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecovererRenders500(t *testing.T) {
	log := &logger.Logger{}
	rd := NewRenderer(log)

	handler := Recoverer(log, rd)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	log := &logger.Logger{}

	handler := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "not found"))
}
