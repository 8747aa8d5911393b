package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/database"
	"github.com/pearlpotter/Billing-Software/internal/models"
	"github.com/pearlpotter/Billing-Software/internal/reports"

	"github.com/gin-gonic/gin"
)

// GetSalesReport assembles the full reports payload: headline stats,
// the monthly series, and aged receivables. Everything is recomputed
// from the current collections on each call.
func GetSalesReport(c *gin.Context) {
	var bills []models.Bill
	if err := database.DB.Preload("Items").Find(&bills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills"})
		return
	}

	var customers []models.Customer
	if err := database.DB.Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":            reports.ComputeSalesStats(bills, customers),
		"monthly_sales":    reports.ComputeMonthlySales(bills),
		"aged_receivables": reports.ComputeAgedReceivables(bills, time.Now()),
	})
}

// GetSalesInsights serializes a per-bill sales summary and asks the AI
// agent for commentary. Always answers 200; AI failure yields the fallback
// message, never an error.
func GetSalesInsights(c *gin.Context) {
	var bills []models.Bill
	if err := database.DB.Preload("Items").Find(&bills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills"})
		return
	}

	summary, err := json.Marshal(reports.SummarizeForInsights(bills))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize sales summary"})
		return
	}

	insights := aiAgent.GetSalesInsights(c.Request.Context(), string(summary))
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
