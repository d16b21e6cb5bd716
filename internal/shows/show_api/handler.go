package show_api

import (
	"fmt"
	"net/http"

	"gigbook/internal/forms"
	"gigbook/internal/logger"
	"gigbook/internal/shows/service"
	"gigbook/internal/web"
)

type Handler struct {
	ShowService *service.ShowService
	Logger      *logger.Logger
	Renderer    *web.Renderer
}

func NewHandler(showService *service.ShowService, log *logger.Logger, renderer *web.Renderer) *Handler {
	return &Handler{
		ShowService: showService,
		Logger:      log,
		Renderer:    renderer,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ShowService.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("List shows: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	h.Renderer.Render(w, "shows.html", web.Page{
		Flash: web.PopFlash(w, r),
		Data:  rows,
	})
}

func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, "new_show.html", web.Page{})
}

// Create books a show from raw id and time strings, landing back on
// the home page with a flash message either way.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderServerError(w)
		return
	}
	form := forms.ParseShowForm(r.PostForm)

	if err := form.Validate(); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("Create show: invalid form: %v", err))
		h.Renderer.Render(w, "home.html", web.Page{
			Flash: "An error occurred. Show could not be listed.",
		})
		return
	}

	if err := h.ShowService.Create(form); err != nil {
		h.Logger.Error("API", fmt.Sprintf("Create show: %v", err))
		h.Renderer.Render(w, "home.html", web.Page{
			Flash: "An error occurred. Show could not be listed.",
		})
		return
	}
	h.Renderer.Render(w, "home.html", web.Page{
		Flash: "Show was successfully listed!",
	})
}
