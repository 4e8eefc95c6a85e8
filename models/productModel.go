package models

import "gorm.io/gorm"

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID uint   `json:"productId"`
}

type Product struct {
	gorm.Model
	Slug        string         `json:"slug" gorm:"uniqueIndex;size:255" binding:"required"`
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       int            `json:"price" binding:"required,min=0"`
	Stock       int            `json:"stock" binding:"min=0"`
	SKU         string         `json:"sku"`
	ImageURL    string         `json:"imageURL"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductUpdateData carries the mutable product fields for admin updates.
// Pointers distinguish "not provided" from zero values.
type ProductUpdateData struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Price       *int    `json:"price" binding:"omitempty,min=0"`
	Stock       *int    `json:"stock" binding:"omitempty,min=0"`
	SKU         *string `json:"sku"`
	ImageURL    *string `json:"imageURL"`
}
