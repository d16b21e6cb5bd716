package artist_api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"gigbook/internal/artists/service"
	"gigbook/internal/forms"
	"gigbook/internal/logger"
	"gigbook/internal/models"
	"gigbook/internal/web"
)

type Handler struct {
	ArtistService *service.ArtistService
	Logger        *logger.Logger
	Renderer      *web.Renderer
}

func NewHandler(artistService *service.ArtistService, log *logger.Logger, renderer *web.Renderer) *Handler {
	return &Handler{
		ArtistService: artistService,
		Logger:        log,
		Renderer:      renderer,
	}
}

func (h *Handler) artistID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ArtistService.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("List artists: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "artists.html", web.Page{
		Flash: web.PopFlash(w, r),
		Data:  rows,
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderServerError(w)
		return
	}
	term := r.PostForm.Get("search_term")

	now := time.Now()
	results, err := h.ArtistService.Search(term, now)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Search artists: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "search_artists.html", web.Page{
		SearchTerm: term,
		Data:       results,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := h.artistID(r)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	now := time.Now()
	page, err := h.ArtistService.Detail(id, now)
	if errors.Is(err, models.ErrNotFound) {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Show: artist %d: %v", id, err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "show_artist.html", web.Page{
		Flash: web.PopFlash(w, r),
		Data:  page,
	})
}

func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, "new_artist.html", web.Page{Data: &models.Artist{}})
}

// Create lists a new artist, landing back on the home page with a
// flash message either way.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderServerError(w)
		return
	}
	form := forms.ParseArtistForm(r.PostForm)

	if err := form.Validate(); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("Create artist: invalid form: %v", err))
		h.Renderer.Render(w, "home.html", web.Page{
			Flash: fmt.Sprintf("An error occurred. %s could not be listed.", form.Name),
		})
		return
	}

	artist, err := h.ArtistService.Create(form)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Create artist: %v", err))
		h.Renderer.Render(w, "home.html", web.Page{
			Flash: fmt.Sprintf("An error occurred. %s could not be listed.", form.Name),
		})
		return
	}
	h.Renderer.Render(w, "home.html", web.Page{
		Flash: fmt.Sprintf("%s is now listed!", artist.Name),
	})
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := h.artistID(r)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	artist, err := h.ArtistService.DB.GetArtistByID(id)
	if errors.Is(err, models.ErrNotFound) {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditForm: artist %d: %v", id, err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "edit_artist.html", web.Page{Data: artist})
}

// EditSubmit overwrites the artist with the submitted fields and
// redirects to its detail view on success and failure alike.
func (h *Handler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := h.artistID(r)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderServerError(w)
		return
	}
	form := forms.ParseArtistForm(r.PostForm)

	detailPath := fmt.Sprintf("/artists/%d", id)

	if err := form.Validate(); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("Edit artist %d: invalid form: %v", id, err))
		web.SetFlash(w, fmt.Sprintf("%s was not updated.", form.Name))
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	artist, err := h.ArtistService.Update(id, form)
	if errors.Is(err, models.ErrNotFound) {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Edit artist %d: %v", id, err))
		web.SetFlash(w, fmt.Sprintf("%s was not updated.", form.Name))
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}
	web.SetFlash(w, fmt.Sprintf("%s successfully updated!", artist.Name))
	http.Redirect(w, r, detailPath, http.StatusSeeOther)
}
