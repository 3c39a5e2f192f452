package billing

import (
	"strings"

	"github.com/google/uuid"
)

// Kind identifies which document family a snapshot belongs to. All kinds share
// the same totals semantics.
type Kind string

const (
	KindInvoice          Kind = "invoice"
	KindQuote            Kind = "quote"
	KindCredit           Kind = "credit"
	KindPurchaseOrder    Kind = "purchase_order"
	KindRecurringInvoice Kind = "recurring_invoice"
)

const (
	// MaxLineTaxes is the number of tax slots a line item carries.
	MaxLineTaxes = 3
	// MaxSurcharges is the number of document-level surcharge slots.
	MaxSurcharges = 4
	// MaxCustomValues is the number of free-form values a line item carries.
	MaxCustomValues = 4
)

// TaxSlot pairs a named tax with its percentage rate. A slot with a zero rate
// or a blank name contributes nothing and never reaches the tax summary.
type TaxSlot struct {
	Name string
	Rate float64
}

// Applies reports whether the slot participates in tax calculation.
func (s TaxSlot) Applies() bool {
	return s.Rate > 0 && strings.TrimSpace(s.Name) != ""
}

// LineItem is one billable row of a document. Quantity and cost may be zero;
// cost may be negative for credit-style lines. The discount is a fixed amount
// when IsAmountDiscount is set, otherwise a percentage of the line base.
type LineItem struct {
	Quantity         float64
	Cost             float64
	Discount         float64
	IsAmountDiscount bool
	Taxes            [MaxLineTaxes]TaxSlot
	TaxID            string
	CustomValues     [MaxCustomValues]string
}

// LineTotals are the computed outputs of a single line. They are derived on
// every computation and never act as a source of truth.
type LineTotals struct {
	LineTotal      float64 `json:"line_total"`
	TaxAmount      float64 `json:"tax_amount"`
	GrossLineTotal float64 `json:"gross_line_total"`
}

// Surcharge is a document-level additional charge. Taxable surcharges are
// taxed with every named rate the document's line items carry.
type Surcharge struct {
	Amount  float64
	Taxable bool
}

// Document is an immutable snapshot of an editable financial document:
// invoices, quotes, credits, purchase orders, and recurring invoices all
// share this shape.
type Document struct {
	ID                 uuid.UUID
	Kind               Kind
	ClientID           string
	CurrencyID         string
	LineItems          []LineItem
	Discount           float64
	IsAmountDiscount   bool
	Surcharges         [MaxSurcharges]Surcharge
	ExchangeRate       float64
	UsesInclusiveTaxes bool
}

// TaxLine is one row of the per-name tax breakdown. Rate is the first rate
// seen under the name; amounts for identically named taxes are merged.
type TaxLine struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// DocumentTotals is the full derived output of a totals computation.
// Subtotal is pre-discount; Total accounts for the document discount,
// surcharges, and all taxes.
type DocumentTotals struct {
	Subtotal       float64      `json:"subtotal"`
	TotalDiscount  float64      `json:"total_discount"`
	TaxSummary     []TaxLine    `json:"tax_summary"`
	SurchargeTotal float64      `json:"surcharge_total"`
	SurchargeTaxes float64      `json:"surcharge_taxes"`
	TotalTaxes     float64      `json:"total_taxes"`
	Total          float64      `json:"total"`
	Lines          []LineTotals `json:"line_items"`
}
