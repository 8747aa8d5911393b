package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerType decides which price a customer is billed at.
type CustomerType string

const (
	CustomerTypeRetail    CustomerType = "Retail"
	CustomerTypeWholesale CustomerType = "Wholesale"
)

// PaymentMethod on a bill. Cash settles in full; Credit books the rest
// against the customer's outstanding balance.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodCredit PaymentMethod = "Credit"
)

// User - who is logged into the terminal
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"`    // Never return this in JSON
	Role         string    `json:"role"` // 'admin', 'staff'
	CreatedAt    time.Time `json:"created_at"`
}

// Product - the inventory master record
type Product struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	ItemCode       string          `gorm:"uniqueIndex;size:50" json:"item_code"`
	Name           string          `gorm:"size:150" json:"name"`
	Stock          int             `json:"stock"`
	RetailPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"retail_price"`
	WholesalePrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"wholesale_price"`
	Description    string          `gorm:"type:text" json:"description"`
}

// Customer - master record with the running credit position.
// OutstandingBalance only moves through bill finalization (+due)
// and payment recording (-amount).
type Customer struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Name               string          `gorm:"size:100" json:"name"`
	Type               CustomerType    `gorm:"size:20" json:"type"`
	Phone              string          `gorm:"size:20" json:"phone"`
	CreditLimit        decimal.Decimal `gorm:"type:decimal(12,2)" json:"credit_limit"`
	OutstandingBalance decimal.Decimal `gorm:"type:decimal(12,2)" json:"outstanding_balance"`
}

// Bill - a finalized invoice. Append-only; never mutated after creation.
// Customer name/type and item names/rates are snapshots, so editing or
// deleting master records leaves bill history intact.
type Bill struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	BillNumber         string          `gorm:"uniqueIndex;size:50" json:"bill_number"`
	Date               time.Time       `json:"date"`
	CustomerID         uint            `json:"customer_id"`
	CustomerName       string          `gorm:"size:100" json:"customer_name"`
	CustomerType       CustomerType    `gorm:"size:20" json:"customer_type"`
	Items              []BillItem      `gorm:"foreignKey:BillID" json:"items"`
	SubTotal           decimal.Decimal `gorm:"type:decimal(12,2)" json:"sub_total"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_amount"`
	GrandTotal         decimal.Decimal `gorm:"type:decimal(12,2)" json:"grand_total"`
	PaymentMethod      PaymentMethod   `gorm:"size:10" json:"payment_method"`
	AmountPaid         decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount_paid"`
	AmountDue          decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount_due"`
}

// BillItem - one line on a bill. Rate is the price at bill time.
type BillItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	BillID    uint            `json:"bill_id"`
	ProductID uint            `json:"product_id"`
	Name      string          `gorm:"size:150" json:"name"`
	Quantity  int             `json:"quantity"`
	Rate      decimal.Decimal `gorm:"type:decimal(12,2)" json:"rate"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
}

// Payment - a customer settling (part of) their outstanding balance.
// Append-only ledger entry.
type Payment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `json:"customer_id"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	BillID     *uint           `json:"bill_id,omitempty"` // Optional: link to a specific bill
}

// BillSequence backs bill number allocation. One row per calendar day,
// bumped inside the finalize transaction so two bills can never share a
// number even when created within the same clock tick.
type BillSequence struct {
	Day        string `gorm:"primaryKey;size:8"` // YYYYMMDD
	LastNumber int64
}
