package database

import (
	"log"

	"github.com/pearlpotter/Billing-Software/internal/config"
	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seed creates the default users and, on a brand-new database, a demo
// catalog and customer book so the shop screen isn't empty on first login.
func Seed() {
	seedUsers()
	seedCatalog()
}

func seedUsers() {
	users := []struct {
		username string
		password string
		role     string
	}{
		{"admin", config.AppConfig.Defaults.AdminPassword, "admin"},
		{"staff", config.AppConfig.Defaults.StaffPassword, "staff"},
	}

	for _, u := range users {
		var existing models.User
		if err := DB.Where("username = ?", u.username).First(&existing).Error; err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password for %s: %v", u.username, err)
			continue
		}
		user := models.User{Username: u.username, PasswordHash: string(hash), Role: u.role}
		if err := DB.Create(&user).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", u.username, err)
		} else {
			log.Printf("Seeded user %q (role %s)", u.username, u.role)
		}
	}
}

func seedCatalog() {
	var count int64
	DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	products := []models.Product{
		{ItemCode: "KB001", Name: "Wireless Keyboard", Stock: 50, RetailPrice: price("45"), WholesalePrice: price("35"), Description: "A sleek and silent wireless keyboard."},
		{ItemCode: "MS002", Name: "Ergonomic Mouse", Stock: 75, RetailPrice: price("30"), WholesalePrice: price("22"), Description: "A comfortable mouse for all-day use."},
		{ItemCode: "MN003", Name: "27-inch 4K Monitor", Stock: 20, RetailPrice: price("350"), WholesalePrice: price("300"), Description: "Crystal clear 4K resolution monitor."},
		{ItemCode: "WC004", Name: "1080p Webcam", Stock: 40, RetailPrice: price("60"), WholesalePrice: price("48"), Description: "High-definition webcam for video calls."},
		{ItemCode: "HS005", Name: "Noise-Cancelling Headphones", Stock: 30, RetailPrice: price("120"), WholesalePrice: price("95"), Description: "Immersive sound with active noise cancellation."},
		{ItemCode: "LP006", Name: "Laptop Stand", Stock: 100, RetailPrice: price("25"), WholesalePrice: price("18"), Description: "Adjustable aluminum laptop stand."},
	}
	if err := DB.Create(&products).Error; err != nil {
		log.Printf("Failed to seed products: %v", err)
	}

	customers := []models.Customer{
		{Name: "John Doe (Retail)", Type: models.CustomerTypeRetail, Phone: "123-456-7890", CreditLimit: price("0"), OutstandingBalance: price("0")},
		{Name: "Tech Solutions Inc (Wholesale)", Type: models.CustomerTypeWholesale, Phone: "987-654-3210", CreditLimit: price("5000"), OutstandingBalance: price("1250.50")},
		{Name: "Jane Smith (Retail)", Type: models.CustomerTypeRetail, Phone: "555-555-5555", CreditLimit: price("500"), OutstandingBalance: price("75.20")},
		{Name: "Gadget World (Wholesale)", Type: models.CustomerTypeWholesale, Phone: "111-222-3333", CreditLimit: price("10000"), OutstandingBalance: price("0")},
	}
	if err := DB.Create(&customers).Error; err != nil {
		log.Printf("Failed to seed customers: %v", err)
	}

	log.Println("Seeded demo catalog and customers")
}
