package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/eladgel/nof-ai/internal/catalog"
	"github.com/eladgel/nof-ai/internal/domain"
	"github.com/eladgel/nof-ai/internal/fees"
	"github.com/eladgel/nof-ai/internal/investment"
)

const maxRecommendations = 50

// Handler provides HTTP endpoints for the fee comparison API.
type Handler struct {
	brokers      *catalog.Service
	investments  *investment.Service
	defaultLimit int
}

// NewHandler creates a new API handler. A defaultLimit of zero or less falls
// back to fees.DefaultLimit.
func NewHandler(brokers *catalog.Service, investments *investment.Service, defaultLimit int) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = fees.DefaultLimit
	}
	return &Handler{brokers: brokers, investments: investments, defaultLimit: defaultLimit}
}

// BreakdownResponse is the body of GET /api/v1/brokers/{id}/breakdown.
type BreakdownResponse struct {
	BrokerID  string                `json:"brokerId"`
	Split     domain.PortfolioSplit `json:"split"`
	Breakdown domain.FeeBreakdown   `json:"breakdown"`
}

// ListBrokers handles GET /api/v1/brokers.
func (h *Handler) ListBrokers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.brokers.Schedules())
}

// GetBroker handles GET /api/v1/brokers/{id}.
func (h *Handler) GetBroker(w http.ResponseWriter, r *http.Request) {
	s, ok := h.brokers.Schedule(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "broker not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// GetBreakdown handles GET /api/v1/brokers/{id}/breakdown.
func (h *Handler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	split, err := parseSplit(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := r.PathValue("id")
	b, err := h.brokers.Breakdown(id, split)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "broker not found")
			return
		}
		slog.Error("failed to compute breakdown", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, BreakdownResponse{BrokerID: id, Split: split, Breakdown: b})
}

// GetRecommendations handles GET /api/v1/recommendations.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	split, err := parseSplit(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := h.defaultLimit
	if l := q.Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = min(n, maxRecommendations)
		}
	}

	writeJSON(w, http.StatusOK, h.brokers.Recommend(split, q.Get("current"), limit))
}

// GetInvestment handles GET /api/v1/investment.
func (h *Handler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	rec, err := h.investments.Load(r.Context())
	if err != nil {
		if errors.Is(err, investment.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no investment data stored")
			return
		}
		slog.Error("failed to load investment data", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// PutInvestment handles PUT /api/v1/investment.
func (h *Handler) PutInvestment(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	var data domain.InvestmentData
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.investments.Save(r.Context(), data); err != nil {
		if errors.Is(err, investment.ErrInvalidAmount) || errors.Is(err, investment.ErrUnknownBroker) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to save investment data", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// DeleteInvestment handles DELETE /api/v1/investment.
func (h *Handler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	if err := h.investments.Clear(r.Context()); err != nil {
		slog.Error("failed to clear investment data", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.investments == nil {
		writeError(w, http.StatusServiceUnavailable, "investment storage not configured")
		return false
	}
	return true
}

// parseSplit reads the domestic and foreign query parameters. Missing values
// count as zero.
func parseSplit(q url.Values) (domain.PortfolioSplit, error) {
	domestic, err := parseAmount(q, "domestic")
	if err != nil {
		return domain.PortfolioSplit{}, err
	}
	foreign, err := parseAmount(q, "foreign")
	if err != nil {
		return domain.PortfolioSplit{}, err
	}
	return domain.PortfolioSplit{Domestic: domestic, Foreign: foreign}, nil
}

func parseAmount(q url.Values, key string) (decimal.Decimal, error) {
	v := q.Get(key)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s amount", key)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s amount must be non-negative", key)
	}
	return d, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
