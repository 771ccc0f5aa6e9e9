package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/eladgel/nof-ai/internal/catalog"
	"github.com/eladgel/nof-ai/internal/investment"
)

// NewServer creates an HTTP server with all routes configured. investments
// may be nil when no database is configured.
func NewServer(port string, brokers *catalog.Service, investments *investment.Service, defaultLimit int, adminAPIKey string) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      newMux(NewHandler(brokers, investments, defaultLimit), adminAPIKey),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func newMux(handler *Handler, adminAPIKey string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/brokers", handler.ListBrokers)
	mux.HandleFunc("GET /api/v1/brokers/{id}", handler.GetBroker)
	mux.HandleFunc("GET /api/v1/brokers/{id}/breakdown", handler.GetBreakdown)
	mux.HandleFunc("GET /api/v1/recommendations", handler.GetRecommendations)
	mux.HandleFunc("GET /api/v1/investment", handler.GetInvestment)

	protect := func(h http.HandlerFunc) http.Handler {
		if adminAPIKey == "" {
			return h
		}
		return requireAuth(adminAPIKey, h)
	}
	mux.Handle("PUT /api/v1/investment", protect(handler.PutInvestment))
	mux.Handle("DELETE /api/v1/investment", protect(handler.DeleteInvestment))

	return mux
}

func requireAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
