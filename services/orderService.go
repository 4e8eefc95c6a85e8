package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/endabelyu/nakama-api/apperrors"
	"github.com/endabelyu/nakama-api/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Checkout turns the selected items of a cart into an order. Order creation,
// stock decrement, cart-item deletion and the aggregate-flag reset happen in
// one transaction, so a partially applied checkout is never observable.
// Stock is claimed with a conditional decrement (stock = stock - n where
// stock >= n), so two concurrent checkouts cannot both take the last unit.
func Checkout(db *gorm.DB, userID, cartID uint) (models.Order, error) {
	var user models.User
	err := db.First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, apperrors.NotFound("user not found")
		}
		return models.Order{}, apperrors.Internal("failed to fetch user", err)
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Where("id = ? AND user_id = ?", cartID, userID).First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("cart not found")
			}
			return apperrors.Internal("failed to fetch cart", err)
		}

		var items []models.CartItem
		err = tx.Where("cart_id = ? AND selected = ?", cart.ID, true).Preload("Product").Find(&items).Error
		if err != nil {
			return apperrors.Internal("failed to fetch cart items", err)
		}
		if len(items) == 0 {
			return apperrors.EmptySelection("no cart items selected for checkout")
		}

		customer, err := json.Marshal(models.OrderCustomer{
			Name:    user.Name,
			Email:   user.Email,
			Address: user.Address,
			Phone:   user.Phone,
		})
		if err != nil {
			return apperrors.Internal("failed to snapshot customer", err)
		}

		totalPrice := 0
		orderItems := make([]models.OrderItem, 0, len(items))
		itemIDs := make([]uint, 0, len(items))
		for _, item := range items {
			totalPrice += item.Quantity * item.Product.Price
			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.Product.Name,
				ProductPrice: item.Product.Price,
				Quantity:     item.Quantity,
			})
			itemIDs = append(itemIDs, item.ID)
		}

		order = models.Order{
			UserID:      userID,
			OrderNumber: uuid.NewString(),
			TotalPrice:  totalPrice,
			Status:      models.OrderStatusCreated,
			Customer:    datatypes.JSON(customer),
			Items:       orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return apperrors.Internal("failed to create order", err)
		}

		for _, item := range items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return apperrors.Internal("failed to update product stock", result.Error)
			}
			if result.RowsAffected == 0 {
				return apperrors.InsufficientStock(
					fmt.Sprintf("only %d of %s in stock", item.Product.Stock, item.Product.Name))
			}
		}

		if err := tx.Where("id IN ?", itemIDs).Delete(&models.CartItem{}).Error; err != nil {
			return apperrors.Internal("failed to clean up cart items", err)
		}

		if cart.AllSelected {
			if err := tx.Model(&cart).Update("all_selected", false).Error; err != nil {
				return apperrors.Internal("failed to reset cart selection", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	// Payment is simulated: the order completes immediately. A failure here
	// leaves the order in "created", which is still a valid state.
	if err := db.Model(&order).Update("status", models.OrderStatusCompleted).Error; err != nil {
		log.Printf("Order %s created but status transition failed: %v", order.OrderNumber, err)
	} else {
		order.Status = models.OrderStatusCompleted
	}

	return order, nil
}

// GetOrders lists the user's orders, newest first.
func GetOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	result := db.Where("user_id = ?", userID).Preload("Items").Order("created_at desc").Find(&orders)
	if result.Error != nil {
		return nil, apperrors.Internal("failed to fetch orders", result.Error)
	}
	return orders, nil
}

// GetOrderByID fetches one of the user's orders with its items.
func GetOrderByID(db *gorm.DB, userID, orderID uint) (models.Order, error) {
	var order models.Order
	err := db.Where("id = ? AND user_id = ?", orderID, userID).Preload("Items").First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, apperrors.NotFound("order not found")
		}
		return models.Order{}, apperrors.Internal("failed to fetch order", err)
	}
	return order, nil
}
