package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/database"
	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, balance string) models.Customer {
	t.Helper()
	c := models.Customer{
		Name:               "Jane Smith",
		Type:               models.CustomerTypeRetail,
		CreditLimit:        dec("500.00"),
		OutstandingBalance: dec(balance),
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return c
}

func TestRecordPayment(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db, "75.20")
	book := New(db)

	payment, err := book.RecordPayment(context.Background(), customer.ID, dec("75.20"), nil)
	if err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if !payment.Amount.Equal(dec("75.20")) {
		t.Errorf("Amount = %s, want 75.20", payment.Amount)
	}
	if payment.BillID != nil {
		t.Errorf("BillID = %v, want nil", *payment.BillID)
	}

	var cust models.Customer
	if err := db.First(&cust, customer.ID).Error; err != nil {
		t.Fatalf("reload customer: %v", err)
	}
	if !cust.OutstandingBalance.IsZero() {
		t.Errorf("OutstandingBalance = %s, want 0", cust.OutstandingBalance)
	}

	var count int64
	db.Model(&models.Payment{}).Where("customer_id = ?", customer.ID).Count(&count)
	if count != 1 {
		t.Errorf("payment rows = %d, want 1", count)
	}
}

func TestRecordPaymentRejectsNonPositive(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db, "75.20")
	book := New(db)

	for _, amount := range []string{"0", "-10.00"} {
		_, err := book.RecordPayment(context.Background(), customer.ID, dec(amount), nil)
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Errorf("RecordPayment(%s) error = %v, want ErrInvalidPaymentAmount", amount, err)
		}
	}

	var cust models.Customer
	if err := db.First(&cust, customer.ID).Error; err != nil {
		t.Fatalf("reload customer: %v", err)
	}
	if !cust.OutstandingBalance.Equal(dec("75.20")) {
		t.Errorf("OutstandingBalance = %s, want untouched 75.20", cust.OutstandingBalance)
	}
}

func TestRecordPaymentUnknownCustomer(t *testing.T) {
	db := testDB(t)
	book := New(db)

	_, err := book.RecordPayment(context.Background(), 999, dec("10.00"), nil)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("RecordPayment() error = %v, want ErrCustomerNotFound", err)
	}
}

func TestRecordPaymentLinkedToBill(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db, "100.00")

	bill := models.Bill{
		BillNumber: "INV-20260901-00001",
		Date:       time.Now(),
		CustomerID: customer.ID,
		GrandTotal: dec("100.00"),
		AmountDue:  dec("100.00"),
	}
	if err := db.Create(&bill).Error; err != nil {
		t.Fatalf("create bill: %v", err)
	}

	book := New(db)
	payment, err := book.RecordPayment(context.Background(), customer.ID, dec("40.00"), &bill.ID)
	if err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if payment.BillID == nil || *payment.BillID != bill.ID {
		t.Errorf("BillID = %v, want %d", payment.BillID, bill.ID)
	}
}

func TestHistory(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db, "0.00")
	other := seedCustomer(t, db, "0.00")
	book := New(db)

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now()

	bills := []models.Bill{
		{BillNumber: "INV-20260830-00001", Date: older, CustomerID: customer.ID, GrandTotal: dec("50.00")},
		{BillNumber: "INV-20260901-00001", Date: newer, CustomerID: customer.ID, GrandTotal: dec("80.00")},
		{BillNumber: "INV-20260901-00002", Date: newer, CustomerID: other.ID, GrandTotal: dec("30.00")},
	}
	for i := range bills {
		if err := db.Create(&bills[i]).Error; err != nil {
			t.Fatalf("create bill: %v", err)
		}
	}
	if _, err := book.RecordPayment(context.Background(), customer.ID, dec("20.00"), nil); err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}

	gotBills, gotPayments, err := book.History(context.Background(), customer.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(gotBills) != 2 {
		t.Fatalf("got %d bills, want 2", len(gotBills))
	}
	if gotBills[0].BillNumber != "INV-20260901-00001" {
		t.Errorf("first bill = %s, want the newest", gotBills[0].BillNumber)
	}
	if len(gotPayments) != 1 {
		t.Errorf("got %d payments, want 1", len(gotPayments))
	}
}
