package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gigbook/internal/logger"
)

// statusWriter captures the status code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// RequestLogger logs every served request with a generated request id.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()
			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}
			log.LogAPI(r.Method, r.URL.Path,
				fmt.Sprintf("%d [%s]", status, requestID),
				time.Since(start).String())
		})
	}
}

// Recoverer turns an escaped panic into the 500 page. The fault is
// logged with its source location; the client only sees the generic
// page.
func Recoverer(log *logger.Logger, rd *Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("HTTP", fmt.Sprintf("panic serving %s %s: %v", r.Method, r.URL.Path, rec))
					rd.RenderServerError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
