package billing

import (
	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Totals is the financial summary of a draft or finalized bill.
type Totals struct {
	SubTotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	GrandTotal     decimal.Decimal
}

// ClampDiscount bounds a discount percentage to [0, 100]. Out-of-range
// input would otherwise produce a negative or inflated grand total.
func ClampDiscount(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(oneHundred) {
		return oneHundred
	}
	return pct
}

// ComputeTotals sums the line totals and applies the discount percentage.
// Pure: no state is read or written, amounts are rounded to cents.
func ComputeTotals(items []models.BillItem, discountPct decimal.Decimal) Totals {
	subTotal := decimal.Zero
	for _, item := range items {
		subTotal = subTotal.Add(item.Total)
	}

	pct := ClampDiscount(discountPct)
	discountAmount := subTotal.Mul(pct).Div(oneHundred).Round(2)

	return Totals{
		SubTotal:       subTotal,
		DiscountAmount: discountAmount,
		GrandTotal:     subTotal.Sub(discountAmount),
	}
}

// DerivePaymentSplit resolves how much of the grand total is settled now
// and how much is booked as due. Cash always settles in full, whatever the
// caller typed into the paid field; Credit takes the caller's amount.
func DerivePaymentSplit(grandTotal decimal.Decimal, method models.PaymentMethod, amountPaidInput decimal.Decimal) (amountPaid, amountDue decimal.Decimal) {
	if method == models.PaymentMethodCash {
		return grandTotal, decimal.Zero
	}
	return amountPaidInput, grandTotal.Sub(amountPaidInput)
}
