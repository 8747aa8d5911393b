package billing

import (
	"testing"

	"github.com/pearlpotter/Billing-Software/internal/models"
)

func TestClampDiscount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"zero passes through", "0", "0"},
		{"mid range passes through", "12.5", "12.5"},
		{"hundred passes through", "100", "100"},
		{"negative clamps to zero", "-10", "0"},
		{"above hundred clamps to hundred", "150", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampDiscount(dec(tt.in))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("ClampDiscount(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeTotals(t *testing.T) {
	// Two keyboards at 45.00 with a 10% discount.
	items := []models.BillItem{
		{ProductID: 1, Quantity: 2, Rate: dec("45.00"), Total: dec("90.00")},
	}

	got := ComputeTotals(items, dec("10"))

	if !got.SubTotal.Equal(dec("90.00")) {
		t.Errorf("SubTotal = %s, want 90.00", got.SubTotal)
	}
	if !got.DiscountAmount.Equal(dec("9.00")) {
		t.Errorf("DiscountAmount = %s, want 9.00", got.DiscountAmount)
	}
	if !got.GrandTotal.Equal(dec("81.00")) {
		t.Errorf("GrandTotal = %s, want 81.00", got.GrandTotal)
	}
}

func TestComputeTotalsRounding(t *testing.T) {
	items := []models.BillItem{
		{ProductID: 1, Quantity: 3, Rate: dec("33.33"), Total: dec("99.99")},
	}

	// 7.5% of 99.99 = 7.49925, rounds to 7.50.
	got := ComputeTotals(items, dec("7.5"))
	if !got.DiscountAmount.Equal(dec("7.50")) {
		t.Errorf("DiscountAmount = %s, want 7.50", got.DiscountAmount)
	}
	if !got.GrandTotal.Equal(dec("92.49")) {
		t.Errorf("GrandTotal = %s, want 92.49", got.GrandTotal)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	got := ComputeTotals(nil, dec("10"))
	if !got.SubTotal.IsZero() || !got.DiscountAmount.IsZero() || !got.GrandTotal.IsZero() {
		t.Errorf("empty cart totals = %+v, want all zero", got)
	}
}

func TestDerivePaymentSplit(t *testing.T) {
	tests := []struct {
		name      string
		method    models.PaymentMethod
		grand     string
		paidInput string
		wantPaid  string
		wantDue   string
	}{
		{"cash settles in full", models.PaymentMethodCash, "81.00", "0", "81.00", "0"},
		{"cash ignores typed amount", models.PaymentMethodCash, "81.00", "50.00", "81.00", "0"},
		{"credit partial payment", models.PaymentMethodCredit, "81.00", "30.00", "30.00", "51.00"},
		{"credit zero down", models.PaymentMethodCredit, "81.00", "0", "0", "81.00"},
		{"credit full payment", models.PaymentMethodCredit, "81.00", "81.00", "81.00", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, due := DerivePaymentSplit(dec(tt.grand), tt.method, dec(tt.paidInput))
			if !paid.Equal(dec(tt.wantPaid)) {
				t.Errorf("amountPaid = %s, want %s", paid, tt.wantPaid)
			}
			if !due.Equal(dec(tt.wantDue)) {
				t.Errorf("amountDue = %s, want %s", due, tt.wantDue)
			}
		})
	}
}
