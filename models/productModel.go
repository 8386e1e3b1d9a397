package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	// Short numeric id shown to customers, distinct from the row id.
	ProductId              string         `json:"productId" gorm:"uniqueIndex;size:16"`
	Name                   string         `json:"name" binding:"required"`
	Category               string         `json:"category" binding:"required"`
	Price                  int            `json:"price" binding:"required"`
	RegularPrice           int            `json:"regularPrice"`
	Description            string         `json:"description" binding:"required"`
	Fabric                 string         `json:"fabric"`
	Colors                 datatypes.JSON `json:"colors"`
	Sizes                  datatypes.JSON `json:"sizes"`
	IsNewArrival           bool           `json:"isNewArrival"`
	NewArrivalDisplayOrder int            `json:"newArrivalDisplayOrder" gorm:"default:1000"`
	IsTrending             bool           `json:"isTrending"`
	TrendingDisplayOrder   int            `json:"trendingDisplayOrder" gorm:"default:1000"`
	OnSale                 bool           `json:"onSale"`
	DisplayOrder           int            `json:"displayOrder" gorm:"default:1000"`
	Images                 []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
