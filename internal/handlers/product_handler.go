package handlers

import (
	"net/http"
	"strconv"

	"github.com/pearlpotter/Billing-Software/internal/database"
	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetProducts lists the whole catalog, item-code order.
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Order("item_code").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

type ProductRequest struct {
	ItemCode       string          `json:"item_code" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Stock          int             `json:"stock"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Description    string          `json:"description"`
}

func (r ProductRequest) validate() string {
	if r.Stock < 0 {
		return "Stock cannot be negative"
	}
	if r.RetailPrice.IsNegative() || r.WholesalePrice.IsNegative() {
		return "Prices cannot be negative"
	}
	return ""
}

func AddProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item code and name are required"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product := models.Product{
		ItemCode:       req.ItemCode,
		Name:           req.Name,
		Stock:          req.Stock,
		RetailPrice:    req.RetailPrice,
		WholesalePrice: req.WholesalePrice,
		Description:    req.Description,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create product (item code may be duplicate)"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item code and name are required"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product.ItemCode = req.ItemCode
	product.Name = req.Name
	product.Stock = req.Stock
	product.RetailPrice = req.RetailPrice
	product.WholesalePrice = req.WholesalePrice
	product.Description = req.Description

	if err := database.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog record. Historical bills keep their name
// and rate snapshots, so no referential check is made.
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := database.DB.Delete(&models.Product{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

type DescriptionRequest struct {
	Name string `json:"name" binding:"required"`
}

// GenerateDescription asks the AI agent for a product blurb. Always
// answers 200: on AI failure the body carries the fallback message.
func GenerateDescription(c *gin.Context) {
	var req DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}

	description := aiAgent.GenerateProductDescription(c.Request.Context(), req.Name)
	c.JSON(http.StatusOK, gin.H{"description": description})
}
