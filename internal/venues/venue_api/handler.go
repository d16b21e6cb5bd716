package venue_api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"gigbook/internal/forms"
	"gigbook/internal/logger"
	"gigbook/internal/models"
	"gigbook/internal/venues/service"
	"gigbook/internal/web"
)

type Handler struct {
	VenueService *service.VenueService
	Logger       *logger.Logger
	Renderer     *web.Renderer
}

func NewHandler(venueService *service.VenueService, log *logger.Logger, renderer *web.Renderer) *Handler {
	return &Handler{
		VenueService: venueService,
		Logger:       log,
		Renderer:     renderer,
	}
}

func (h *Handler) venueID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
}

// Directory renders the grouped venue listing. The reference time is
// read once here and passed down so the whole page sees one cutoff.
func (h *Handler) Directory(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	groups, err := h.VenueService.Directory(now)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Directory: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "venues.html", web.Page{
		Flash: web.PopFlash(w, r),
		Data:  groups,
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderServerError(w)
		return
	}
	term := r.PostForm.Get("search_term")

	now := time.Now()
	results, err := h.VenueService.Search(term, now)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Search: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "search_venues.html", web.Page{
		SearchTerm: term,
		Data:       results,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := h.venueID(r)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	now := time.Now()
	page, err := h.VenueService.Detail(id, now)
	if errors.Is(err, models.ErrNotFound) {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Show: venue %d: %v", id, err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "show_venue.html", web.Page{
		Flash: web.PopFlash(w, r),
		Data:  page,
	})
}

func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, "new_venue.html", web.Page{Data: &models.Venue{}})
}

// Create lists a new venue. Success and failure both land back on the
// home page with a flash message naming the venue.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderServerError(w)
		return
	}
	form := forms.ParseVenueForm(r.PostForm)

	if err := form.Validate(); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("Create venue: invalid form: %v", err))
		h.Renderer.Render(w, "home.html", web.Page{
			Flash: fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name),
		})
		return
	}

	venue, err := h.VenueService.Create(form)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Create venue: %v", err))
		h.Renderer.Render(w, "home.html", web.Page{
			Flash: fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name),
		})
		return
	}
	h.Renderer.Render(w, "home.html", web.Page{
		Flash: fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
	})
}

// Delete removes the venue and its shows, then lands on the home
// page.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.venueID(r)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	name, err := h.VenueService.Delete(id)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Delete venue %d: %v", id, err))
		h.Renderer.Render(w, "home.html", web.Page{})
		return
	}
	h.Renderer.Render(w, "home.html", web.Page{
		Flash: fmt.Sprintf("Venue %s was successfully removed.", name),
	})
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := h.venueID(r)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	venue, err := h.VenueService.DB.GetVenueByID(id)
	if errors.Is(err, models.ErrNotFound) {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditForm: venue %d: %v", id, err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "edit_venue.html", web.Page{Data: venue})
}

// EditSubmit overwrites the venue with the submitted fields and
// redirects to its detail view on success and failure alike.
func (h *Handler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := h.venueID(r)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderServerError(w)
		return
	}
	form := forms.ParseVenueForm(r.PostForm)

	detailPath := fmt.Sprintf("/venues/%d", id)

	if err := form.Validate(); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("Edit venue %d: invalid form: %v", id, err))
		web.SetFlash(w, fmt.Sprintf("%s was not updated.", form.Name))
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	venue, err := h.VenueService.Update(id, form)
	if errors.Is(err, models.ErrNotFound) {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Edit venue %d: %v", id, err))
		web.SetFlash(w, fmt.Sprintf("%s was not updated.", form.Name))
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}
	web.SetFlash(w, fmt.Sprintf("%s successfully updated!", venue.Name))
	http.Redirect(w, r, detailPath, http.StatusSeeOther)
}
