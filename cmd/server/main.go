package main

import (
	"log"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/ai"
	"github.com/pearlpotter/Billing-Software/internal/billing"
	"github.com/pearlpotter/Billing-Software/internal/config"
	"github.com/pearlpotter/Billing-Software/internal/database"
	"github.com/pearlpotter/Billing-Software/internal/handlers"
	"github.com/pearlpotter/Billing-Software/internal/ledger"
	"github.com/pearlpotter/Billing-Software/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}
	config.Load()

	database.Connect()
	database.Seed()

	handlers.Init(
		billing.NewEngine(database.DB),
		ledger.New(database.DB),
		ai.NewAgent(config.AppConfig.AI.GeminiAPIKey),
	)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)

	if config.AppConfig.Server.AllowRegistration {
		r.POST("/register", handlers.Register)
		log.Println("WARNING: Registration route is OPEN. Disable this in production!")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// Staff and admin: the billing screen
		api.GET("/products", handlers.GetProducts)
		api.GET("/customers", handlers.GetCustomers)
		api.POST("/bills", handlers.CreateBill)
		api.GET("/bills", handlers.GetBills)
		api.GET("/bills/:id/pdf", handlers.GetBillPDF)

		// Admin only: inventory, customers, reports
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/products", handlers.AddProduct)
			admin.PUT("/products/:id", handlers.UpdateProduct)
			admin.DELETE("/products/:id", handlers.DeleteProduct)
			admin.POST("/products/describe", handlers.GenerateDescription)

			admin.POST("/customers", handlers.AddCustomer)
			admin.PUT("/customers/:id", handlers.UpdateCustomer)
			admin.POST("/customers/:id/payments", handlers.RecordPayment)
			admin.GET("/customers/:id/history", handlers.GetCustomerHistory)

			admin.GET("/reports", handlers.GetSalesReport)
			admin.GET("/reports/insights", handlers.GetSalesInsights)
		}
	}

	addr := ":" + config.AppConfig.Server.Port
	log.Println("Server starting on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
