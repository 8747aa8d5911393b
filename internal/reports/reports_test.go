package reports

import (
	"reflect"
	"testing"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeSalesStats(t *testing.T) {
	bills := []models.Bill{
		{GrandTotal: dec("100.00"), CustomerType: models.CustomerTypeRetail},
		{GrandTotal: dec("250.50"), CustomerType: models.CustomerTypeWholesale},
		{GrandTotal: dec("49.50"), CustomerType: models.CustomerTypeRetail},
	}
	customers := []models.Customer{
		{OutstandingBalance: dec("75.20")},
		{OutstandingBalance: dec("1250.50")},
		{OutstandingBalance: dec("0.00")},
	}

	got := ComputeSalesStats(bills, customers)

	if !got.TotalSales.Equal(dec("400.00")) {
		t.Errorf("TotalSales = %s, want 400.00", got.TotalSales)
	}
	if !got.RetailSales.Equal(dec("149.50")) {
		t.Errorf("RetailSales = %s, want 149.50", got.RetailSales)
	}
	if !got.WholesaleSales.Equal(dec("250.50")) {
		t.Errorf("WholesaleSales = %s, want 250.50", got.WholesaleSales)
	}
	if !got.TotalOutstanding.Equal(dec("1325.70")) {
		t.Errorf("TotalOutstanding = %s, want 1325.70", got.TotalOutstanding)
	}
}

func TestComputeSalesStatsEmpty(t *testing.T) {
	got := ComputeSalesStats(nil, nil)
	if !got.TotalSales.IsZero() || !got.TotalOutstanding.IsZero() {
		t.Errorf("empty stats = %+v, want all zero", got)
	}
}

func TestComputeMonthlySales(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}
	bills := []models.Bill{
		{Date: day(2026, time.September, 1), GrandTotal: dec("80.00")},
		{Date: day(2026, time.July, 15), GrandTotal: dec("50.00")},
		{Date: day(2026, time.September, 2), GrandTotal: dec("20.00")},
		{Date: day(2025, time.December, 31), GrandTotal: dec("10.00")},
	}

	got := ComputeMonthlySales(bills)

	wantLabels := []string{"Dec 25", "Jul 26", "Sep 26"}
	gotLabels := make([]string, len(got))
	for i, m := range got {
		gotLabels[i] = m.Label
	}
	if !reflect.DeepEqual(gotLabels, wantLabels) {
		t.Fatalf("labels = %v, want %v", gotLabels, wantLabels)
	}

	if !got[2].Sales.Equal(dec("100.00")) {
		t.Errorf("September sales = %s, want 100.00", got[2].Sales)
	}
	if !got[0].Sales.Equal(dec("10.00")) {
		t.Errorf("December sales = %s, want 10.00", got[0].Sales)
	}
}

func TestComputeAgedReceivables(t *testing.T) {
	today := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	ago := func(days int) time.Time {
		return today.AddDate(0, 0, -days)
	}

	bills := []models.Bill{
		{Date: ago(0), AmountDue: dec("10.00")},
		{Date: ago(30), AmountDue: dec("20.00")},
		{Date: ago(31), AmountDue: dec("30.00")},
		{Date: ago(60), AmountDue: dec("40.00")},
		{Date: ago(61), AmountDue: dec("50.00")},
		{Date: ago(90), AmountDue: dec("60.00")},
		{Date: ago(91), AmountDue: dec("70.00")},
		{Date: ago(365), AmountDue: dec("80.00")},
		// Paid bills never age.
		{Date: ago(200), AmountDue: dec("0.00")},
	}

	got := ComputeAgedReceivables(bills, today)

	if !got.Days0To30.Equal(dec("30.00")) {
		t.Errorf("0-30 = %s, want 30.00", got.Days0To30)
	}
	if !got.Days31To60.Equal(dec("70.00")) {
		t.Errorf("31-60 = %s, want 70.00", got.Days31To60)
	}
	if !got.Days61To90.Equal(dec("110.00")) {
		t.Errorf("61-90 = %s, want 110.00", got.Days61To90)
	}
	if !got.Days90Plus.Equal(dec("150.00")) {
		t.Errorf("90+ = %s, want 150.00", got.Days90Plus)
	}
}

func TestComputeAgedReceivablesIdempotent(t *testing.T) {
	today := time.Now()
	bills := []models.Bill{
		{Date: today.AddDate(0, 0, -45), AmountDue: dec("100.00")},
	}

	first := ComputeAgedReceivables(bills, today)
	second := ComputeAgedReceivables(bills, today)
	if !first.Days31To60.Equal(second.Days31To60) {
		t.Errorf("repeated computation diverged: %s vs %s", first.Days31To60, second.Days31To60)
	}
}

func TestSummarizeForInsights(t *testing.T) {
	date := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	bills := []models.Bill{
		{
			Date:         date,
			GrandTotal:   dec("115.00"),
			CustomerType: models.CustomerTypeRetail,
			Items: []models.BillItem{
				{Name: "Wireless Keyboard", Quantity: 2},
				{Name: "Laptop Stand", Quantity: 1},
			},
		},
	}

	got := SummarizeForInsights(bills)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	if got[0].Items != "Wireless Keyboard (x2), Laptop Stand (x1)" {
		t.Errorf("Items = %q", got[0].Items)
	}
	if got[0].Type != models.CustomerTypeRetail {
		t.Errorf("Type = %s, want Retail", got[0].Type)
	}
	if !got[0].Total.Equal(dec("115.00")) {
		t.Errorf("Total = %s, want 115.00", got[0].Total)
	}
}
