package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pearlpotter/Billing-Software/internal/billing"
	"github.com/pearlpotter/Billing-Software/internal/config"
	"github.com/pearlpotter/Billing-Software/internal/database"
	"github.com/pearlpotter/Billing-Software/internal/models"
	"github.com/pearlpotter/Billing-Software/internal/pdf"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BillLineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type CreateBillRequest struct {
	CustomerID          uint                 `json:"customer_id" binding:"required"`
	Items               []BillLineRequest    `json:"items" binding:"required"`
	DiscountPercentage  decimal.Decimal      `json:"discount_percentage"`
	PaymentMethod       models.PaymentMethod `json:"payment_method" binding:"required"`
	AmountPaid          decimal.Decimal      `json:"amount_paid"`
	OverrideCreditLimit bool                 `json:"override_credit_limit"`
}

// CreateBill builds a cart from the request at current catalog rates and
// finalizes it. A 409 with override_required=true means the client should
// re-submit with override_credit_limit after the user confirms.
func CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer, items and payment method are required"})
		return
	}

	if req.PaymentMethod != models.PaymentMethodCash && req.PaymentMethod != models.PaymentMethodCredit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method must be Cash or Credit"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, req.CustomerID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
		return
	}

	// Rates are frozen here, before finalize touches anything.
	var cart billing.Cart
	for _, line := range req.Items {
		var product models.Product
		if err := database.DB.First(&product, line.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
			return
		}
		if err := cart.AddLine(product, customer.Type); err != nil {
			respondBillingError(c, err)
			return
		}
		if line.Quantity > 1 {
			if err := cart.SetQuantity(product.ID, line.Quantity, product.Stock); err != nil {
				respondBillingError(c, err)
				return
			}
		}
	}

	bill, err := billEngine.Finalize(c.Request.Context(), billing.FinalizeRequest{
		CustomerID:          req.CustomerID,
		Items:               cart.Items,
		DiscountPercentage:  req.DiscountPercentage,
		PaymentMethod:       req.PaymentMethod,
		AmountPaid:          req.AmountPaid,
		OverrideCreditLimit: req.OverrideCreditLimit,
	})
	if err != nil {
		respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bill)
}

func respondBillingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, billing.ErrCreditLimitExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "override_required": true})
	case errors.Is(err, billing.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, billing.ErrInvalidBillRequest), errors.Is(err, billing.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bill"})
	}
}

// GetBills lists bills newest first, paginated.
func GetBills(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	database.DB.Model(&models.Bill{}).Count(&total)

	var bills []models.Bill
	if err := database.DB.Preload("Items").
		Order("date desc").
		Limit(limit).Offset((page - 1) * limit).
		Find(&bills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  bills,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetBillPDF streams the printable invoice for a finalized bill.
func GetBillPDF(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bill ID"})
		return
	}

	var bill models.Bill
	if err := database.DB.Preload("Items").First(&bill, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		return
	}

	data, err := pdf.RenderInvoice(&bill, config.AppConfig.Defaults.CompanyName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.Filename(&bill)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
