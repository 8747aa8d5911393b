package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Engine turns a cart plus a customer into a finalized bill and applies the
// financial side effects: the bill row, the stock decrements, and the
// customer's balance increase land in one database transaction.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// FinalizeRequest carries everything the checkout screen collected.
type FinalizeRequest struct {
	CustomerID         uint
	Items              []models.BillItem
	DiscountPercentage decimal.Decimal
	PaymentMethod      models.PaymentMethod
	AmountPaid         decimal.Decimal
	// OverrideCreditLimit is the user's explicit "continue anyway" on the
	// credit-limit warning.
	OverrideCreditLimit bool
}

// Finalize validates the request, enforces the credit-limit policy, and
// commits the bill. On any error nothing is written.
func (e *Engine) Finalize(ctx context.Context, req FinalizeRequest) (*models.Bill, error) {
	if req.CustomerID == 0 {
		return nil, fmt.Errorf("%w: no customer selected", ErrInvalidBillRequest)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidBillRequest)
	}

	var bill *models.Bill
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, req.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: customer %d not found", ErrInvalidBillRequest, req.CustomerID)
			}
			return fmt.Errorf("load customer: %w", err)
		}

		// Line totals are always recomputed from rate x quantity; the
		// client's totals are never trusted.
		items := make([]models.BillItem, len(req.Items))
		for i, item := range req.Items {
			if item.Quantity < 1 {
				return fmt.Errorf("%w (%s)", ErrInvalidQuantity, item.Name)
			}
			item.Total = item.Rate.Mul(decimal.NewFromInt(int64(item.Quantity)))
			items[i] = item
		}

		discountPct := ClampDiscount(req.DiscountPercentage)
		totals := ComputeTotals(items, discountPct)
		amountPaid, amountDue := DerivePaymentSplit(totals.GrandTotal, req.PaymentMethod, req.AmountPaid)

		if req.PaymentMethod == models.PaymentMethodCredit {
			if amountPaid.IsNegative() {
				return fmt.Errorf("%w: amount paid cannot be negative", ErrInvalidBillRequest)
			}
			if amountPaid.GreaterThan(totals.GrandTotal) {
				return fmt.Errorf("%w: amount paid %s exceeds grand total %s",
					ErrInvalidBillRequest, amountPaid.StringFixed(2), totals.GrandTotal.StringFixed(2))
			}
		}

		// Soft credit-limit policy: block only without an explicit override.
		if amountDue.IsPositive() {
			projected := customer.OutstandingBalance.Add(amountDue)
			if projected.GreaterThan(customer.CreditLimit) && !req.OverrideCreditLimit {
				return fmt.Errorf("%w: balance would reach %s against limit %s",
					ErrCreditLimitExceeded, projected.StringFixed(2), customer.CreditLimit.StringFixed(2))
			}
		}

		// Decrement stock with a guarded update so the floor check and the
		// write are one statement on every driver.
		for i := range items {
			var product models.Product
			if err := tx.First(&product, items[i].ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d not found", ErrInvalidBillRequest, items[i].ProductID)
				}
				return fmt.Errorf("load product: %w", err)
			}
			if items[i].Name == "" {
				items[i].Name = product.Name
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, items[i].Quantity).
				Update("stock", gorm.Expr("stock - ?", items[i].Quantity))
			if res.Error != nil {
				return fmt.Errorf("decrement stock for %s: %w", product.Name, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s has %d left, %d requested",
					ErrInsufficientStock, product.Name, product.Stock, items[i].Quantity)
			}
		}

		now := time.Now()
		billNumber, err := nextBillNumber(tx, now)
		if err != nil {
			return err
		}

		newBill := models.Bill{
			BillNumber:         billNumber,
			Date:               now,
			CustomerID:         customer.ID,
			CustomerName:       customer.Name,
			CustomerType:       customer.Type,
			Items:              items,
			SubTotal:           totals.SubTotal,
			DiscountPercentage: discountPct,
			DiscountAmount:     totals.DiscountAmount,
			GrandTotal:         totals.GrandTotal,
			PaymentMethod:      req.PaymentMethod,
			AmountPaid:         amountPaid,
			AmountDue:          amountDue,
		}
		if err := tx.Create(&newBill).Error; err != nil {
			return fmt.Errorf("create bill: %w", err)
		}

		if amountDue.IsPositive() {
			if err := tx.Model(&models.Customer{}).
				Where("id = ?", customer.ID).
				Update("outstanding_balance", customer.OutstandingBalance.Add(amountDue)).Error; err != nil {
				return fmt.Errorf("raise outstanding balance: %w", err)
			}
		}

		bill = &newBill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// nextBillNumber allocates INV-YYYYMMDD-NNNNN from a per-day sequence row.
// Running inside the finalize transaction keeps numbers unique even when
// bills are created within the same clock tick.
func nextBillNumber(tx *gorm.DB, now time.Time) (string, error) {
	day := now.Format("20060102")

	var seq models.BillSequence
	err := tx.Where("day = ?", day).First(&seq).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		seq = models.BillSequence{Day: day, LastNumber: 0}
		if err := tx.Create(&seq).Error; err != nil {
			return "", fmt.Errorf("create bill sequence: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("load bill sequence: %w", err)
	}

	seq.LastNumber++
	if err := tx.Model(&models.BillSequence{}).Where("day = ?", day).
		Update("last_number", seq.LastNumber).Error; err != nil {
		return "", fmt.Errorf("bump bill sequence: %w", err)
	}

	return fmt.Sprintf("INV-%s-%05d", day, seq.LastNumber), nil
}
