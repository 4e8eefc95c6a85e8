package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusCreated   = "created"
	OrderStatusCompleted = "completed"
)

type Order struct {
	gorm.Model
	UserID      uint           `json:"userId"`
	OrderNumber string         `json:"orderNumber" gorm:"uniqueIndex;size:64"`
	TotalPrice  int            `json:"totalPrice"`
	Status      string         `json:"status"`
	Customer    datatypes.JSON `json:"customer"`
	Items       []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a frozen snapshot of a cart line at checkout time. ProductPrice
// never changes afterwards, regardless of later product repricing.
type OrderItem struct {
	gorm.Model
	OrderID      uint   `json:"orderId"`
	ProductID    uint   `json:"productId"`
	ProductName  string `json:"productName"`
	ProductPrice int    `json:"productPrice"`
	Quantity     int    `json:"quantity"`
}

// OrderCustomer is the buyer contact snapshot stored on the order as JSON.
type OrderCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
