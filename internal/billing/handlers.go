package billing

import (
	"encoding/json"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/billing-engine/internal/common"
	"github.com/noah-isme/billing-engine/internal/currency"
	"github.com/noah-isme/billing-engine/internal/money"
	"github.com/noah-isme/billing-engine/internal/obs"
)

// Handler exposes the document totals endpoint.
type Handler struct {
	Currencies *currency.Service
	Validate   *validator.Validate
	Logger     zerolog.Logger
}

// lineItemRequest mirrors the remote API's line item fields one-for-one. The
// numbered tax pairs are mapped onto indexed slots immediately on decode so
// no string-keyed field access survives past the boundary.
type lineItemRequest struct {
	Quantity         common.Float `json:"quantity"`
	Cost             common.Float `json:"cost"`
	Discount         common.Float `json:"discount"`
	IsAmountDiscount bool         `json:"is_amount_discount"`
	TaxName1         string       `json:"tax_name1"`
	TaxRate1         common.Float `json:"tax_rate1"`
	TaxName2         string       `json:"tax_name2"`
	TaxRate2         common.Float `json:"tax_rate2"`
	TaxName3         string       `json:"tax_name3"`
	TaxRate3         common.Float `json:"tax_rate3"`
	TaxID            string       `json:"tax_id"`
	CustomValue1     string       `json:"custom_value1"`
	CustomValue2     string       `json:"custom_value2"`
	CustomValue3     string       `json:"custom_value3"`
	CustomValue4     string       `json:"custom_value4"`
}

type totalsRequest struct {
	DocumentID          string            `json:"document_id" validate:"omitempty,uuid"`
	Kind                string            `json:"kind" validate:"omitempty,oneof=invoice quote credit purchase_order recurring_invoice"`
	ClientID            string            `json:"client_id"`
	CurrencyID          string            `json:"currency_id"`
	CountryID           string            `json:"country_id"`
	LineItems           []lineItemRequest `json:"line_items" validate:"max=1000"`
	Discount            common.Float      `json:"discount"`
	IsAmountDiscount    bool              `json:"is_amount_discount"`
	CustomSurcharge1    common.Float      `json:"custom_surcharge1"`
	CustomSurcharge2    common.Float      `json:"custom_surcharge2"`
	CustomSurcharge3    common.Float      `json:"custom_surcharge3"`
	CustomSurcharge4    common.Float      `json:"custom_surcharge4"`
	CustomSurchargeTax1 bool              `json:"custom_surcharge_tax1"`
	CustomSurchargeTax2 bool              `json:"custom_surcharge_tax2"`
	CustomSurchargeTax3 bool              `json:"custom_surcharge_tax3"`
	CustomSurchargeTax4 bool              `json:"custom_surcharge_tax4"`
	ExchangeRate        common.Float      `json:"exchange_rate"`
	UsesInclusiveTaxes  bool              `json:"uses_inclusive_taxes"`
	ShowCurrencyCode    bool              `json:"show_currency_code"`
}

type totalsResponse struct {
	DocumentTotals
	ExchangeRate   float64 `json:"exchange_rate"`
	FormattedTotal string  `json:"formatted_total"`
}

// ComputeTotals handles POST /api/v1/documents/totals. The engine itself
// never fails; only an undecodable body or a structurally invalid request is
// rejected.
func (h *Handler) ComputeTotals(w http.ResponseWriter, r *http.Request) {
	var req totalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.NewAppError("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest, err))
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			appErr := common.NewAppError("VALIDATION", "invalid document snapshot", http.StatusUnprocessableEntity, err)
			appErr.Details = err.Error()
			common.WriteError(w, appErr)
			return
		}
	}

	doc := req.toDocument()
	start := time.Now()
	totals := Build(doc)
	elapsed := time.Since(start)

	mode := "exclusive"
	if doc.UsesInclusiveTaxes {
		mode = "inclusive"
	}
	if obs.DocumentsComputedTotal != nil {
		obs.DocumentsComputedTotal.WithLabelValues(string(doc.Kind), mode).Inc()
	}
	if obs.ComputeDuration != nil {
		obs.ComputeDuration.WithLabelValues(mode).Observe(obs.DurationMillis(elapsed))
	}
	h.Logger.Debug().
		Str("document_id", doc.ID.String()).
		Str("kind", string(doc.Kind)).
		Str("mode", mode).
		Int("lines", len(doc.LineItems)).
		Float64("total", totals.Total).
		Msg("document_totals_computed")

	common.JSON(w, http.StatusOK, map[string]any{"data": totalsResponse{
		DocumentTotals: totals,
		ExchangeRate:   doc.ExchangeRate,
		FormattedTotal: h.formatTotal(r, req, totals.Total),
	}})
}

func (h *Handler) formatTotal(r *http.Request, req totalsRequest, total float64) string {
	if h.Currencies == nil {
		return money.Format(total, 2, ".", ",")
	}
	cur, ok := h.Currencies.CurrencyByID(r.Context(), req.CurrencyID)
	if !ok {
		cur.Precision = 2
	}
	var country *currency.Country
	if c, ok := h.Currencies.CountryByID(r.Context(), req.CountryID); ok {
		country = &c
	}
	return money.FormatMoney(total, cur, country, money.Options{ShowCurrencyCode: req.ShowCurrencyCode})
}

func (r totalsRequest) toDocument() Document {
	kind := Kind(r.Kind)
	if kind == "" {
		kind = KindInvoice
	}
	id, err := uuid.Parse(r.DocumentID)
	if err != nil {
		id = uuid.Nil
	}
	exchangeRate := float64(r.ExchangeRate)
	if exchangeRate == 0 {
		exchangeRate = 1
	}

	doc := Document{
		ID:                 id,
		Kind:               kind,
		ClientID:           r.ClientID,
		CurrencyID:         r.CurrencyID,
		Discount:           float64(r.Discount),
		IsAmountDiscount:   r.IsAmountDiscount,
		ExchangeRate:       exchangeRate,
		UsesInclusiveTaxes: r.UsesInclusiveTaxes,
		Surcharges: [MaxSurcharges]Surcharge{
			{Amount: float64(r.CustomSurcharge1), Taxable: r.CustomSurchargeTax1},
			{Amount: float64(r.CustomSurcharge2), Taxable: r.CustomSurchargeTax2},
			{Amount: float64(r.CustomSurcharge3), Taxable: r.CustomSurchargeTax3},
			{Amount: float64(r.CustomSurcharge4), Taxable: r.CustomSurchargeTax4},
		},
	}
	doc.LineItems = make([]LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		doc.LineItems = append(doc.LineItems, LineItem{
			Quantity:         float64(li.Quantity),
			Cost:             float64(li.Cost),
			Discount:         float64(li.Discount),
			IsAmountDiscount: li.IsAmountDiscount,
			Taxes: [MaxLineTaxes]TaxSlot{
				{Name: li.TaxName1, Rate: float64(li.TaxRate1)},
				{Name: li.TaxName2, Rate: float64(li.TaxRate2)},
				{Name: li.TaxName3, Rate: float64(li.TaxRate3)},
			},
			TaxID:        li.TaxID,
			CustomValues: [MaxCustomValues]string{li.CustomValue1, li.CustomValue2, li.CustomValue3, li.CustomValue4},
		})
	}
	return doc
}
