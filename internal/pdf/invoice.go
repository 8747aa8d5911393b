// Package pdf renders a finalized bill as a printable A4 invoice.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// Filename is the download name for a bill's PDF.
func Filename(bill *models.Bill) string {
	return fmt.Sprintf("invoice-%s.pdf", bill.BillNumber)
}

// RenderInvoice builds the invoice document for a finalized bill.
func RenderInvoice(bill *models.Bill, companyName string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Invoice %s", bill.BillNumber), false)
	doc.AddPage()

	// Header
	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, companyName)
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(95, 6, fmt.Sprintf("Invoice No: %s", bill.BillNumber))
	doc.Cell(95, 6, fmt.Sprintf("Date: %s", bill.Date.Format("02 Jan 2006 15:04")))
	doc.Ln(8)
	doc.Cell(95, 6, fmt.Sprintf("Billed To: %s (%s)", bill.CustomerName, bill.CustomerType))
	doc.Ln(12)

	// Item table
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(90, 8, "Product", "1", 0, "L", true, 0, "")
	doc.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(35, 8, "Rate", "1", 0, "R", true, 0, "")
	doc.CellFormat(40, 8, "Total", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, item := range bill.Items {
		doc.CellFormat(90, 8, item.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 8, item.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 8, item.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	// Totals block, right aligned
	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)
		doc.CellFormat(150, 7, label, "", 0, "R", false, 0, "")
		doc.CellFormat(40, 7, value, "", 1, "R", false, 0, "")
	}
	row("Subtotal:", bill.SubTotal.StringFixed(2), false)
	row(fmt.Sprintf("Discount (%s%%):", bill.DiscountPercentage.String()), "- "+bill.DiscountAmount.StringFixed(2), false)
	row("Grand Total:", bill.GrandTotal.StringFixed(2), true)
	row(fmt.Sprintf("Paid (%s):", bill.PaymentMethod), bill.AmountPaid.StringFixed(2), false)
	if bill.AmountDue.IsPositive() {
		row("Amount Due:", bill.AmountDue.StringFixed(2), true)
	}

	doc.Ln(10)
	doc.SetFont("Helvetica", "I", 9)
	doc.Cell(0, 6, "Thank you for your business.")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", bill.BillNumber, err)
	}
	return buf.Bytes(), nil
}
