package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	CartID    uint    `json:"cartId" gorm:"index"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Selected  bool    `json:"selected"`
	Product   Product `json:"product"`
}

type Cart struct {
	gorm.Model
	UserID      uint       `json:"userId" gorm:"uniqueIndex"`
	AllSelected bool       `json:"allSelected"`
	Items       []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type AddCartItemData struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemData struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type SelectCartItemData struct {
	Selected *bool `json:"selected" binding:"required"`
}
