package money

import (
	"encoding/json"
	"net/http"

	"github.com/noah-isme/billing-engine/internal/common"
	"github.com/noah-isme/billing-engine/internal/currency"
	"github.com/noah-isme/billing-engine/internal/obs"
)

// Handler exposes the money formatting endpoint.
type Handler struct {
	Currencies *currency.Service
}

type formatRequest struct {
	Value            common.Float `json:"value"`
	CurrencyID       string       `json:"currency_id"`
	CountryID        string       `json:"country_id"`
	ShowCurrencyCode bool         `json:"show_currency_code"`
}

type formatResponse struct {
	Formatted string `json:"formatted"`
	Placement string `json:"placement"`
}

// Format handles POST /api/v1/money/format. A currency or country lookup miss
// falls back to default separators rather than failing.
func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	if h.Currencies == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "currency service not configured", nil)
		return
	}
	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	cur, ok := h.Currencies.CurrencyByID(r.Context(), req.CurrencyID)
	if !ok {
		cur.Precision = 2
	}
	var country *currency.Country
	if c, ok := h.Currencies.CountryByID(r.Context(), req.CountryID); ok {
		country = &c
	}

	opts := Options{ShowCurrencyCode: req.ShowCurrencyCode}
	placement := Placement(cur, country, opts)
	if obs.MoneyFormatTotal != nil {
		obs.MoneyFormatTotal.WithLabelValues(placement).Inc()
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": formatResponse{
		Formatted: FormatMoney(float64(req.Value), cur, country, opts),
		Placement: placement,
	}})
}
