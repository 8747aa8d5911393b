// Package reports derives read-only sales projections from the bill,
// customer, and payment collections. Everything here is pure and
// recomputed on demand; calling twice over the same data gives the same
// answer.
package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
)

// SalesStats is the headline card row of the reports screen.
type SalesStats struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	RetailSales      decimal.Decimal `json:"retail_sales"`
	WholesaleSales   decimal.Decimal `json:"wholesale_sales"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

// ComputeSalesStats sums grand totals grouped by the customer-type snapshot
// on each bill. TotalOutstanding reflects the current ledger state of the
// customer book, not a derivation from bill history.
func ComputeSalesStats(bills []models.Bill, customers []models.Customer) SalesStats {
	stats := SalesStats{
		TotalSales:       decimal.Zero,
		RetailSales:      decimal.Zero,
		WholesaleSales:   decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	for _, bill := range bills {
		stats.TotalSales = stats.TotalSales.Add(bill.GrandTotal)
		switch bill.CustomerType {
		case models.CustomerTypeRetail:
			stats.RetailSales = stats.RetailSales.Add(bill.GrandTotal)
		case models.CustomerTypeWholesale:
			stats.WholesaleSales = stats.WholesaleSales.Add(bill.GrandTotal)
		}
	}
	for _, customer := range customers {
		stats.TotalOutstanding = stats.TotalOutstanding.Add(customer.OutstandingBalance)
	}
	return stats
}

// MonthlySale is one bar of the monthly sales chart.
type MonthlySale struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Label string          `json:"label"` // e.g. "Sep 26"
	Sales decimal.Decimal `json:"sales"`
}

// ComputeMonthlySales groups bills by the (year, month) of their date and
// sums grand totals, ordered chronologically.
func ComputeMonthlySales(bills []models.Bill) []MonthlySale {
	type key struct {
		year  int
		month time.Month
	}
	sums := make(map[key]decimal.Decimal)
	for _, bill := range bills {
		k := key{bill.Date.Year(), bill.Date.Month()}
		sums[k] = sums[k].Add(bill.GrandTotal)
	}

	keys := make([]key, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	series := make([]MonthlySale, 0, len(keys))
	for _, k := range keys {
		label := time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
		series = append(series, MonthlySale{Year: k.year, Month: k.month, Label: label, Sales: sums[k]})
	}
	return series
}

// AgingBuckets groups unpaid bill amounts by days since the bill date.
// Bills age from their bill date, not from any due or payment date.
type AgingBuckets struct {
	Days0To30  decimal.Decimal `json:"0-30"`
	Days31To60 decimal.Decimal `json:"31-60"`
	Days61To90 decimal.Decimal `json:"61-90"`
	Days90Plus decimal.Decimal `json:"90+"`
}

// ComputeAgedReceivables buckets every bill with a positive due amount by
// the whole days between its date and today.
func ComputeAgedReceivables(bills []models.Bill, today time.Time) AgingBuckets {
	buckets := AgingBuckets{
		Days0To30:  decimal.Zero,
		Days31To60: decimal.Zero,
		Days61To90: decimal.Zero,
		Days90Plus: decimal.Zero,
	}
	for _, bill := range bills {
		if !bill.AmountDue.IsPositive() {
			continue
		}
		age := int(today.Sub(bill.Date).Hours() / 24)
		switch {
		case age <= 30:
			buckets.Days0To30 = buckets.Days0To30.Add(bill.AmountDue)
		case age <= 60:
			buckets.Days31To60 = buckets.Days31To60.Add(bill.AmountDue)
		case age <= 90:
			buckets.Days61To90 = buckets.Days61To90.Add(bill.AmountDue)
		default:
			buckets.Days90Plus = buckets.Days90Plus.Add(bill.AmountDue)
		}
	}
	return buckets
}

// SalesSummaryLine is the per-bill digest fed to the AI insights prompt.
type SalesSummaryLine struct {
	Date  time.Time           `json:"date"`
	Total decimal.Decimal     `json:"total"`
	Type  models.CustomerType `json:"type"`
	Items string              `json:"items"`
}

// SummarizeForInsights flattens bills into the compact shape the insights
// prompt expects, e.g. "Wireless Keyboard (x2), Laptop Stand (x1)".
func SummarizeForInsights(bills []models.Bill) []SalesSummaryLine {
	lines := make([]SalesSummaryLine, 0, len(bills))
	for _, bill := range bills {
		parts := make([]string, 0, len(bill.Items))
		for _, item := range bill.Items {
			parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
		}
		lines = append(lines, SalesSummaryLine{
			Date:  bill.Date,
			Total: bill.GrandTotal,
			Type:  bill.CustomerType,
			Items: strings.Join(parts, ", "),
		})
	}
	return lines
}
