package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	RequestPath = "/api/request"
	PingPath    = "/api/ping"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get(PingPath, h.ping)

	// signed routes
	router.Group(func(r chi.Router) {
		r.Use(h.verifySignature)
		r.Post(RequestPath, h.request)
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return router
}
