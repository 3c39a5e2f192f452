package currency

import (
	"net/http"
	"strings"

	"github.com/noah-isme/billing-engine/internal/common"
	"github.com/noah-isme/billing-engine/internal/obs"
)

// Handler exposes the currency reference endpoints.
type Handler struct {
	Service *Service
}

// List handles GET /api/v1/currencies.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "currency service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Service.Currencies(r.Context())})
}

// RateLookup handles GET /api/v1/currencies/rate?from=&to=.
func (h *Handler) RateLookup(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "currency service not configured", nil)
		return
	}
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))

	table := h.Service.Table(r.Context()).Currencies
	_, okFrom := find(table, from)
	_, okTo := find(table, to)
	result := "hit"
	switch {
	case !okFrom || !okTo:
		result = "miss"
	case from == to:
		result = "identity"
	}
	if obs.RateLookupsTotal != nil {
		obs.RateLookupsTotal.WithLabelValues(result).Inc()
	}

	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"from": from,
		"to":   to,
		"rate": rateVia(h.Service.base, from, to, table),
	}})
}
