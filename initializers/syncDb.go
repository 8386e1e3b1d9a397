package initializers

import (
	"encoding/json"
	"log"
	"os"

	"github.com/scaleupmidul/sazobd/models"
	"github.com/scaleupmidul/sazobd/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentDetails{},
		&models.ContactMessage{},
		&models.Settings{},
	)
	log.Println("Database synced successfully.")
	seedSettings()
	seedProducts()
}

// seedSettings creates the singleton settings record on first boot so
// the admin can log in. Existing settings are never touched.
func seedSettings() {
	var count int64
	DB.Model(&models.Settings{}).Count(&count)
	if count > 0 {
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping settings seed.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	shippingOptions, err := json.Marshal([]models.ShippingOption{
		{Id: "inside-dhaka", Label: "Inside Dhaka", Charge: 80},
		{Id: "outside-dhaka", Label: "Outside Dhaka", Charge: 120},
	})
	if err != nil {
		log.Println("Failed to marshal shipping options:", err)
		return
	}

	settings := models.Settings{
		OnlinePaymentInfo:         "অর্ডার কনফার্ম করতে ডেলিভারি চার্জ অগ্রিম প্রদান করুন এবং নিচের তথ্যগুলো পূরণ করুন:",
		OnlinePaymentInfoFontSize: "0.875rem",
		CodEnabled:                true,
		OnlinePaymentEnabled:      true,
		OnlinePaymentMethods:      datatypes.JSON([]byte(`["Bkash","Nagad","UPAY"]`)),
		SliderImages:              datatypes.JSON([]byte(`[]`)),
		CategoryImages:            datatypes.JSON([]byte(`[]`)),
		Categories:                datatypes.JSON([]byte(`["Cotton","Silk","Party Wear","Cosmetics"]`)),
		ShippingOptions:           datatypes.JSON(shippingOptions),
		SocialMediaLinks:          datatypes.JSON([]byte(`[]`)),
		ShowCityField:             true,
		ShowSliderText:            true,
		HomepageNewArrivalsCount:  4,
		HomepageTrendingCount:     4,
		AdminEmail:                adminEmail,
		AdminPassword:             string(hash),
	}

	if result := DB.Create(&settings); result.Error != nil {
		log.Println("Failed to seed settings:", result.Error)
		return
	}
	log.Println("Default settings seeded.")
}

// seedProducts fills an empty catalog with a few sample products so a
// fresh install has something to show on the homepage.
func seedProducts() {
	var count int64
	DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []models.Product{
		{
			ProductId:    utils.RandomProductId(),
			Name:         "Gulmohar Lawn Suit",
			Category:     "Cotton",
			Price:        3500,
			RegularPrice: 4200,
			Description:  "Three piece lawn suit with embroidered dupatta.",
			Fabric:       "Lawn Cotton",
			Colors:       datatypes.JSON([]byte(`["Maroon","Teal"]`)),
			Sizes:        datatypes.JSON([]byte(`["S","M","L","XL","Free"]`)),
			IsNewArrival: true,
		},
		{
			ProductId:   utils.RandomProductId(),
			Name:        "Party Princess Georgette",
			Category:    "Party Wear",
			Price:       7800,
			Description: "Heavy georgette gown with stone work.",
			Fabric:      "Georgette",
			Colors:      datatypes.JSON([]byte(`["Navy Blue"]`)),
			Sizes:       datatypes.JSON([]byte(`["Free"]`)),
			IsTrending:  true,
			OnSale:      true,
		},
	}

	for i := range products {
		if result := DB.Create(&products[i]); result.Error != nil {
			log.Println("Failed to seed product:", result.Error)
			return
		}
	}
	log.Println("Sample products seeded.")
}
