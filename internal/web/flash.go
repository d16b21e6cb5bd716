package web

import (
	"net/http"
	"net/url"
)

// Flash messages ride a short-lived cookie: set on one response,
// consumed by the next render.
const flashCookie = "gigbook_flash"

// SetFlash queues a one-shot message for the next rendered page.
func SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlash reads and clears the queued message, if any.
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
