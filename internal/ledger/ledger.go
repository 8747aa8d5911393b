// Package ledger owns payment recording against customer balances. The only
// other writer of OutstandingBalance is the billing engine's finalize step.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrInvalidPaymentAmount - payment amount must be strictly positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrCustomerNotFound - the payment references an unknown customer.
	ErrCustomerNotFound = errors.New("customer not found")
)

type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// RecordPayment appends one Payment record and reduces the customer's
// outstanding balance by the same amount, atomically. Overpayment is an
// input-validation concern for the caller (the UI clamps to the current
// balance), not a ledger invariant: the balance simply goes negative.
func (l *Ledger) RecordPayment(ctx context.Context, customerID uint, amount decimal.Decimal, billID *uint) (*models.Payment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidPaymentAmount, amount.StringFixed(2))
	}

	var payment *models.Payment
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrCustomerNotFound, customerID)
			}
			return fmt.Errorf("load customer: %w", err)
		}

		p := models.Payment{
			CustomerID: customerID,
			Date:       time.Now(),
			Amount:     amount,
			BillID:     billID,
		}
		if err := tx.Create(&p).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		if err := tx.Model(&models.Customer{}).
			Where("id = ?", customerID).
			Update("outstanding_balance", customer.OutstandingBalance.Sub(amount)).Error; err != nil {
			return fmt.Errorf("reduce outstanding balance: %w", err)
		}

		payment = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// History returns a customer's bills and payments, newest first.
func (l *Ledger) History(ctx context.Context, customerID uint) ([]models.Bill, []models.Payment, error) {
	var bills []models.Bill
	if err := l.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("date desc").
		Find(&bills).Error; err != nil {
		return nil, nil, fmt.Errorf("load bills: %w", err)
	}

	var payments []models.Payment
	if err := l.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date desc").
		Find(&payments).Error; err != nil {
		return nil, nil, fmt.Errorf("load payments: %w", err)
	}

	return bills, payments, nil
}
