package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pearlpotter/Billing-Software/internal/database"
	"github.com/pearlpotter/Billing-Software/internal/ledger"
	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := database.DB.Order("name").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

type CustomerRequest struct {
	Name        string              `json:"name" binding:"required"`
	Type        models.CustomerType `json:"type"`
	Phone       string              `json:"phone"`
	CreditLimit decimal.Decimal     `json:"credit_limit"`
}

func (r *CustomerRequest) validate() string {
	if r.Type == "" {
		r.Type = models.CustomerTypeRetail
	}
	if r.Type != models.CustomerTypeRetail && r.Type != models.CustomerTypeWholesale {
		return "Type must be Retail or Wholesale"
	}
	if r.CreditLimit.IsNegative() {
		return "Credit limit cannot be negative"
	}
	return ""
}

func AddCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name is required"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	customer := models.Customer{
		Name:               req.Name,
		Type:               req.Type,
		Phone:              req.Phone,
		CreditLimit:        req.CreditLimit,
		OutstandingBalance: decimal.Zero,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer edits the master record. The outstanding balance is not
// editable here; it only moves through bills and payments.
func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name is required"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	customer.Name = req.Name
	customer.Type = req.Type
	customer.Phone = req.Phone
	customer.CreditLimit = req.CreditLimit

	if err := database.DB.Save(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	BillID *uint           `json:"bill_id"`
}

// RecordPayment books a payment against a customer's outstanding balance.
// The amount is clamped to the current balance, mirroring what the payment
// form allows.
func RecordPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment amount is required"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	amount := req.Amount
	if amount.GreaterThan(customer.OutstandingBalance) {
		amount = customer.OutstandingBalance
	}

	payment, err := customerBook.RecordPayment(c.Request.Context(), customer.ID, amount, req.BillID)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidPaymentAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment amount must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetCustomerHistory returns a customer's bills and payments for the
// history view.
func GetCustomerHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	bills, payments, err := customerBook.History(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bills":    bills,
		"payments": payments,
	})
}
