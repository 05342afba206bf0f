package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/vstpayment/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover)

	mux.HandleFunc("/health", h.HealthHandler)
	mux.HandleFunc("/swagger/*", httpSwagger.Handler())

	mux.Group(func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Get("/", h.Payment)
		r.Get("/status", h.Status)
		r.Get("/cleanup-expired", h.CleanupExpired)
	})

	mux.Group(func(r chi.Router) {
		r.Use(mw.GatewayIPWL)
		r.Post("/vst-success", h.VSTSuccess)
	})

	return mux
}
