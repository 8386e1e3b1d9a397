package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Settings is the singleton site configuration record. Read-mostly,
// admin-writable, last writer wins. AdminPassword holds a bcrypt hash
// and is never serialized in responses.
type Settings struct {
	gorm.Model
	OnlinePaymentInfo         string         `json:"onlinePaymentInfo"`
	OnlinePaymentInfoFontSize string         `json:"onlinePaymentInfoFontSize"`
	CodEnabled                bool           `json:"codEnabled"`
	OnlinePaymentEnabled      bool           `json:"onlinePaymentEnabled"`
	OnlinePaymentMethods      datatypes.JSON `json:"onlinePaymentMethods"`
	SliderImages              datatypes.JSON `json:"sliderImages"`
	CategoryImages            datatypes.JSON `json:"categoryImages"`
	Categories                datatypes.JSON `json:"categories"`
	ShippingOptions           datatypes.JSON `json:"shippingOptions"`
	ProductPagePromoImage     string         `json:"productPagePromoImage"`
	ContactAddress            string         `json:"contactAddress"`
	ContactPhone              string         `json:"contactPhone"`
	ContactEmail              string         `json:"contactEmail"`
	WhatsappNumber            string         `json:"whatsappNumber"`
	ShowWhatsAppButton        bool           `json:"showWhatsAppButton"`
	ShowCityField             bool           `json:"showCityField"`
	SocialMediaLinks          datatypes.JSON `json:"socialMediaLinks"`
	PrivacyPolicy             string         `json:"privacyPolicy"`
	FooterDescription         string         `json:"footerDescription"`
	HomepageNewArrivalsCount  int            `json:"homepageNewArrivalsCount" gorm:"default:4"`
	HomepageTrendingCount     int            `json:"homepageTrendingCount" gorm:"default:4"`
	ShowSliderText            bool           `json:"showSliderText" gorm:"default:true"`
	AdminEmail                string         `json:"adminEmail" gorm:"uniqueIndex;size:191"`
	AdminPassword             string         `json:"-"`
}

// ShippingOption is the typed shape stored inside
// Settings.ShippingOptions.
type ShippingOption struct {
	Id     string `json:"id"`
	Label  string `json:"label"`
	Charge int    `json:"charge"`
}
