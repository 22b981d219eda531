package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/krypteia/krypteia-go/pkg/httputil"
)

// NewRouter builds the HTTP router around a Handler.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1/ciphers", func(r chi.Router) {
		r.Get("/", h.ListCiphers)
		r.Post("/{cipher}/encrypt", h.Encrypt)
		r.Post("/{cipher}/decrypt", h.Decrypt)
	})

	return r
}
