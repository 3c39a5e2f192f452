package billing

import (
	"math"
	"reflect"
	"testing"
)

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestComputeLineExclusive(t *testing.T) {
	line := LineItem{
		Quantity: 2,
		Cost:     50,
		Taxes:    [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 10}},
	}
	totals, contributions := ComputeLine(line, false)
	approx(t, totals.LineTotal, 100)
	approx(t, totals.TaxAmount, 10)
	approx(t, totals.GrossLineTotal, 110)
	if len(contributions) != 1 {
		t.Fatalf("expected 1 contribution, got %d", len(contributions))
	}
	if contributions[0].Name != "VAT" || contributions[0].Rate != 10 {
		t.Fatalf("unexpected contribution: %+v", contributions[0])
	}
}

func TestComputeLineInclusiveDuality(t *testing.T) {
	line := LineItem{
		Quantity: 1,
		Cost:     100,
		Taxes:    [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 10}},
	}
	totals, _ := ComputeLine(line, true)
	if math.Abs(totals.TaxAmount-9.09) > 0.005 {
		t.Fatalf("expected tax ~9.09, got %v", totals.TaxAmount)
	}
	if math.Abs(totals.LineTotal-90.91) > 0.005 {
		t.Fatalf("expected line total ~90.91, got %v", totals.LineTotal)
	}
	approx(t, totals.GrossLineTotal, 100)
	approx(t, totals.LineTotal+totals.TaxAmount, 100)
}

func TestComputeLineZeroRateContributesNothing(t *testing.T) {
	line := LineItem{
		Quantity: 3,
		Cost:     10,
		Taxes:    [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 0}, {Name: "", Rate: 5}},
	}
	totals, contributions := ComputeLine(line, false)
	approx(t, totals.TaxAmount, 0)
	approx(t, totals.GrossLineTotal, totals.LineTotal)
	if len(contributions) != 0 {
		t.Fatalf("expected no contributions, got %d", len(contributions))
	}
}

func TestComputeLineZeroQuantity(t *testing.T) {
	line := LineItem{
		Cost:  100,
		Taxes: [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 10}},
	}
	totals, _ := ComputeLine(line, true)
	approx(t, totals.LineTotal, 0)
	approx(t, totals.TaxAmount, 0)
	approx(t, totals.GrossLineTotal, 0)
}

func TestComputeLineDiscounts(t *testing.T) {
	amount := LineItem{Quantity: 1, Cost: 100, Discount: 30, IsAmountDiscount: true}
	totals, _ := ComputeLine(amount, false)
	approx(t, totals.LineTotal, 70)

	percent := LineItem{Quantity: 1, Cost: 100, Discount: 30}
	totals, _ = ComputeLine(percent, false)
	approx(t, totals.LineTotal, 70)

	// Amount discounts may push a line negative for credit-style documents.
	negative := LineItem{Quantity: 1, Cost: 20, Discount: 50, IsAmountDiscount: true}
	totals, _ = ComputeLine(negative, false)
	approx(t, totals.LineTotal, -30)
}

func TestBuildEndToEnd(t *testing.T) {
	doc := Document{
		LineItems: []LineItem{{
			Quantity: 2,
			Cost:     50,
			Taxes:    [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 10}},
		}},
		Discount: 5,
	}
	totals := Build(doc)
	approx(t, totals.Subtotal, 100)
	approx(t, totals.TotalDiscount, 5)
	// Tax is line-local on the pre-discount line total; the document discount
	// never reduces the taxable base.
	approx(t, totals.TotalTaxes, 10)
	approx(t, totals.Total, 105)
	if len(totals.TaxSummary) != 1 {
		t.Fatalf("expected 1 summary row, got %d", len(totals.TaxSummary))
	}
	approx(t, totals.TaxSummary[0].Amount, 10)
}

func TestBuildTaxSummaryGroupsByName(t *testing.T) {
	doc := Document{
		LineItems: []LineItem{
			{Quantity: 1, Cost: 100, Taxes: [MaxLineTaxes]TaxSlot{{Name: "GST", Rate: 5}}},
			{Quantity: 1, Cost: 200, Taxes: [MaxLineTaxes]TaxSlot{{Name: "PST", Rate: 5}}},
			{Quantity: 1, Cost: 50, Taxes: [MaxLineTaxes]TaxSlot{{Name: "GST", Rate: 5}}},
		},
	}
	totals := Build(doc)
	if len(totals.TaxSummary) != 2 {
		t.Fatalf("expected identically named taxes to merge and differently named taxes to stay apart, got %d rows", len(totals.TaxSummary))
	}
	if totals.TaxSummary[0].Name != "GST" || totals.TaxSummary[1].Name != "PST" {
		t.Fatalf("expected first-seen order GST,PST; got %s,%s", totals.TaxSummary[0].Name, totals.TaxSummary[1].Name)
	}
	approx(t, totals.TaxSummary[0].Amount, 7.5)
	approx(t, totals.TaxSummary[1].Amount, 10)
}

func TestBuildSummaryMatchesTotalTaxes(t *testing.T) {
	doc := Document{
		LineItems: []LineItem{
			{Quantity: 2, Cost: 30, Taxes: [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 19}, {Name: "Eco", Rate: 2}}},
			{Quantity: 1, Cost: 99.95, Discount: 10, Taxes: [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 19}}},
		},
		Surcharges: [MaxSurcharges]Surcharge{{Amount: 25, Taxable: true}, {Amount: 4.5}},
	}
	for _, inclusive := range []bool{false, true} {
		doc.UsesInclusiveTaxes = inclusive
		totals := Build(doc)
		var sum float64
		for _, row := range totals.TaxSummary {
			sum += row.Amount
		}
		if math.Abs(sum-totals.TotalTaxes) > 1e-9 {
			t.Fatalf("inclusive=%v: summary sum %v != total taxes %v", inclusive, sum, totals.TotalTaxes)
		}
	}
}

func TestBuildSurcharges(t *testing.T) {
	doc := Document{
		LineItems: []LineItem{{
			Quantity: 1,
			Cost:     100,
			Taxes:    [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 10}},
		}},
		Surcharges: [MaxSurcharges]Surcharge{
			{Amount: 50, Taxable: true},
			{Amount: 20},
		},
	}
	totals := Build(doc)
	approx(t, totals.SurchargeTotal, 70)
	approx(t, totals.SurchargeTaxes, 5)
	approx(t, totals.TotalTaxes, 15)
	// 100 + 10 tax + 70 surcharges + 5 surcharge tax.
	approx(t, totals.Total, 185)
	approx(t, totals.TaxSummary[0].Amount, 15)
}

func TestBuildUntaxedDocument(t *testing.T) {
	doc := Document{
		LineItems: []LineItem{
			{Quantity: 4, Cost: 12.5},
			{Quantity: 1, Cost: 0},
		},
	}
	totals := Build(doc)
	approx(t, totals.Subtotal, 50)
	approx(t, totals.TotalTaxes, 0)
	approx(t, totals.Total, 50)
	if len(totals.TaxSummary) != 0 {
		t.Fatalf("expected empty tax summary, got %d rows", len(totals.TaxSummary))
	}
}

func TestBuildIdempotent(t *testing.T) {
	doc := Document{
		LineItems: []LineItem{
			{Quantity: 3, Cost: 19.99, Discount: 7, Taxes: [MaxLineTaxes]TaxSlot{{Name: "VAT", Rate: 21}}},
		},
		Discount:           12.5,
		Surcharges:         [MaxSurcharges]Surcharge{{Amount: 9.99, Taxable: true}},
		UsesInclusiveTaxes: true,
	}
	first := Build(doc)
	second := Build(doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected bit-identical totals across recomputation:\n%+v\n%+v", first, second)
	}
}

func TestBuildDocumentPercentVsAmountDiscount(t *testing.T) {
	doc := Document{
		LineItems:        []LineItem{{Quantity: 1, Cost: 200}},
		Discount:         25,
		IsAmountDiscount: true,
	}
	totals := Build(doc)
	approx(t, totals.TotalDiscount, 25)
	approx(t, totals.Total, 175)

	doc.IsAmountDiscount = false
	totals = Build(doc)
	approx(t, totals.TotalDiscount, 50)
	approx(t, totals.Total, 150)
}
