package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
)

func sampleBill() *models.Bill {
	dec := decimal.RequireFromString
	return &models.Bill{
		BillNumber:   "INV-20260901-00001",
		Date:         time.Date(2026, time.September, 1, 14, 30, 0, 0, time.UTC),
		CustomerName: "Tech Solutions",
		CustomerType: models.CustomerTypeWholesale,
		Items: []models.BillItem{
			{Name: "Wireless Keyboard", Quantity: 2, Rate: dec("38.50"), Total: dec("77.00")},
		},
		SubTotal:           dec("77.00"),
		DiscountPercentage: dec("0"),
		DiscountAmount:     dec("0.00"),
		GrandTotal:         dec("77.00"),
		PaymentMethod:      models.PaymentMethodCredit,
		AmountPaid:         dec("30.00"),
		AmountDue:          dec("47.00"),
	}
}

func TestFilename(t *testing.T) {
	got := Filename(sampleBill())
	want := "invoice-INV-20260901-00001.pdf"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestRenderInvoice(t *testing.T) {
	data, err := RenderInvoice(sampleBill(), "Invoicer Pro")
	if err != nil {
		t.Fatalf("RenderInvoice() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("RenderInvoice() returned empty document")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("document does not start with %%PDF header")
	}
}
