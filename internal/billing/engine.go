package billing

import "github.com/noah-isme/billing-engine/internal/common"

// ComputeLine calculates a single line's totals and its individual tax
// contributions for the document summary.
//
// In exclusive mode the line total is the discounted base and taxes are added
// on top. In inclusive mode the stored cost already contains tax: each
// contribution is back-calculated as total*rate/(100+rate), the reported line
// total is the tax-exclusive remainder, and the gross stays at the original
// inclusive figure.
func ComputeLine(line LineItem, inclusive bool) (LineTotals, []TaxLine) {
	qty := common.FloatOrZero(line.Quantity)
	cost := common.FloatOrZero(line.Cost)
	discount := common.FloatOrZero(line.Discount)

	base := qty * cost
	if line.IsAmountDiscount {
		// Negative lines are permitted for credit-style documents, so the
		// discounted base is not floored at zero.
		base -= discount
	} else {
		base -= base * (discount / 100)
	}

	var contributions []TaxLine
	var taxAmount float64
	for _, slot := range line.Taxes {
		if !slot.Applies() {
			continue
		}
		var amount float64
		if inclusive {
			amount = base * slot.Rate / (100 + slot.Rate)
		} else {
			amount = base * slot.Rate / 100
		}
		taxAmount += amount
		contributions = append(contributions, TaxLine{Name: slot.Name, Rate: slot.Rate, Amount: amount})
	}

	totals := LineTotals{TaxAmount: taxAmount}
	if inclusive {
		totals.LineTotal = base - taxAmount
		totals.GrossLineTotal = base
	} else {
		totals.LineTotal = base
		totals.GrossLineTotal = base + taxAmount
	}
	return totals, contributions
}

// ComputeSurcharges totals the document-level surcharges. Every surcharge
// amount counts toward the total; only surcharges flagged taxable contribute
// tax, using the named rates the document's line items already apply.
func ComputeSurcharges(doc Document, rates []TaxSlot) (total, tax float64, contributions []TaxLine) {
	for _, s := range doc.Surcharges {
		amount := common.FloatOrZero(s.Amount)
		total += amount
		if !s.Taxable || amount == 0 {
			continue
		}
		for _, slot := range rates {
			var contribution float64
			if doc.UsesInclusiveTaxes {
				contribution = amount * slot.Rate / (100 + slot.Rate)
			} else {
				contribution = amount * slot.Rate / 100
			}
			tax += contribution
			contributions = append(contributions, TaxLine{Name: slot.Name, Rate: slot.Rate, Amount: contribution})
		}
	}
	return total, tax, contributions
}

// Build aggregates a document snapshot into its derived totals. It is a pure
// total function: partial input coerces to zero and the builder never fails.
//
// Per-line taxes are computed on pre-discount line totals; the document-level
// discount is applied to the aggregated subtotal afterwards and deliberately
// does not reduce the taxable base.
func Build(doc Document) DocumentTotals {
	summary := newTaxSummary()
	rates := newRateSet()

	var subtotal, lineTaxes float64
	lines := make([]LineTotals, 0, len(doc.LineItems))
	for _, item := range doc.LineItems {
		totals, contributions := ComputeLine(item, doc.UsesInclusiveTaxes)
		subtotal += totals.LineTotal
		lineTaxes += totals.TaxAmount
		lines = append(lines, totals)
		for _, c := range contributions {
			summary.add(c)
		}
		for _, slot := range item.Taxes {
			if slot.Applies() {
				rates.add(slot)
			}
		}
	}

	discount := common.FloatOrZero(doc.Discount)
	if !doc.IsAmountDiscount {
		discount = subtotal * (discount / 100)
	}

	surchargeTotal, surchargeTaxes, surchargeContributions := ComputeSurcharges(doc, rates.slots)
	for _, c := range surchargeContributions {
		summary.add(c)
	}

	totalTaxes := lineTaxes + surchargeTaxes
	return DocumentTotals{
		Subtotal:       subtotal,
		TotalDiscount:  discount,
		TaxSummary:     summary.lines(),
		SurchargeTotal: surchargeTotal,
		SurchargeTaxes: surchargeTaxes,
		TotalTaxes:     totalTaxes,
		Total:          subtotal - discount + totalTaxes + surchargeTotal,
		Lines:          lines,
	}
}

// taxSummary groups tax contributions by name in first-seen order so the
// breakdown stays stable across recomputation. Identically named taxes merge;
// differently named taxes never do, even at equal rates.
type taxSummary struct {
	order   []string
	amounts map[string]*TaxLine
}

func newTaxSummary() *taxSummary {
	return &taxSummary{amounts: make(map[string]*TaxLine)}
}

func (s *taxSummary) add(c TaxLine) {
	if existing, ok := s.amounts[c.Name]; ok {
		existing.Amount += c.Amount
		return
	}
	s.order = append(s.order, c.Name)
	s.amounts[c.Name] = &TaxLine{Name: c.Name, Rate: c.Rate, Amount: c.Amount}
}

func (s *taxSummary) lines() []TaxLine {
	out := make([]TaxLine, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.amounts[name])
	}
	return out
}

// rateSet collects the distinct named rates applied across line items,
// preserving first-seen order.
type rateSet struct {
	slots []TaxSlot
	seen  map[TaxSlot]struct{}
}

func newRateSet() *rateSet {
	return &rateSet{seen: make(map[TaxSlot]struct{})}
}

func (r *rateSet) add(slot TaxSlot) {
	if _, ok := r.seen[slot]; ok {
		return
	}
	r.seen[slot] = struct{}{}
	r.slots = append(r.slots, slot)
}
