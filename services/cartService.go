package services

import (
	"errors"
	"fmt"

	"github.com/endabelyu/nakama-api/apperrors"
	"github.com/endabelyu/nakama-api/models"
	"gorm.io/gorm"
)

// CartTotals aggregates the selected lines of a cart. Unselected items do not
// count towards either figure.
type CartTotals struct {
	TotalItem  int `json:"totalItem"`
	TotalPrice int `json:"totalPrice"`
}

func computeCartTotals(cart models.Cart) CartTotals {
	var totals CartTotals
	for _, item := range cart.Items {
		if !item.Selected {
			continue
		}
		totals.TotalItem++
		totals.TotalPrice += item.Quantity * item.Product.Price
	}
	return totals
}

// GetOrCreateCart returns the user's cart with items and product details,
// creating an empty one on first access. Calling it repeatedly never creates
// a second cart.
func GetOrCreateCart(db *gorm.DB, userID uint) (models.Cart, CartTotals, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).Preload("Items.Product").First(&cart).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, CartTotals{}, apperrors.Internal("failed to fetch cart", err)
		}
		cart = models.Cart{UserID: userID, AllSelected: false}
		if err := db.Create(&cart).Error; err != nil {
			return models.Cart{}, CartTotals{}, apperrors.Internal("failed to create cart", err)
		}
	}
	return cart, computeCartTotals(cart), nil
}

// AddItem puts a product into the user's cart. When the product is already a
// line item, the quantities are summed; the combined quantity must not exceed
// the product's stock. A failed stock check leaves the existing line as-is.
func AddItem(db *gorm.DB, userID, productID uint, quantity int) (models.CartItem, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, apperrors.NotFound("cart not found")
		}
		return models.CartItem{}, apperrors.Internal("failed to fetch cart", err)
	}

	var product models.Product
	err = db.First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, apperrors.NotFound("product not found")
		}
		return models.CartItem{}, apperrors.Internal("failed to fetch product", err)
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if err == nil {
		newQuantity := item.Quantity + quantity
		if newQuantity > product.Stock {
			return models.CartItem{}, apperrors.InsufficientStock(
				fmt.Sprintf("only %d of %s in stock", product.Stock, product.Name))
		}
		item.Quantity = newQuantity
		if err := db.Save(&item).Error; err != nil {
			return models.CartItem{}, apperrors.Internal("failed to update cart item", err)
		}
		item.Product = product
		return item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, apperrors.Internal("failed to fetch cart item", err)
	}

	if quantity > product.Stock {
		return models.CartItem{}, apperrors.InsufficientStock(
			fmt.Sprintf("only %d of %s in stock", product.Stock, product.Name))
	}

	item = models.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
		Selected:  false,
	}
	if err := db.Create(&item).Error; err != nil {
		return models.CartItem{}, apperrors.Internal("failed to create cart item", err)
	}
	item.Product = product
	return item, nil
}

// findUserCartItem loads a cart item and verifies its cart belongs to the
// user. Both a missing item and someone else's item come back as not found.
func findUserCartItem(db *gorm.DB, userID, itemID uint) (models.CartItem, models.Cart, error) {
	var item models.CartItem
	err := db.Preload("Product").First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, models.Cart{}, apperrors.NotFound("cart item not found")
		}
		return models.CartItem{}, models.Cart{}, apperrors.Internal("failed to fetch cart item", err)
	}

	var cart models.Cart
	err = db.First(&cart, item.CartID).Error
	if err != nil {
		return models.CartItem{}, models.Cart{}, apperrors.Internal("failed to fetch cart", err)
	}
	if cart.UserID != userID {
		return models.CartItem{}, models.Cart{}, apperrors.NotFound("cart item not found")
	}
	return item, cart, nil
}

// UpdateItemQuantity replaces a line item's quantity, bounded by the
// product's stock.
func UpdateItemQuantity(db *gorm.DB, userID, itemID uint, quantity int) (models.CartItem, error) {
	item, _, err := findUserCartItem(db, userID, itemID)
	if err != nil {
		return models.CartItem{}, err
	}

	if quantity > item.Product.Stock {
		return models.CartItem{}, apperrors.InsufficientStock(
			fmt.Sprintf("only %d of %s in stock", item.Product.Stock, item.Product.Name))
	}

	item.Quantity = quantity
	if err := db.Save(&item).Error; err != nil {
		return models.CartItem{}, apperrors.Internal("failed to update cart item", err)
	}
	return item, nil
}

// recomputeAllSelected refreshes the cart's aggregate flag as the logical AND
// of its items' selected flags. An empty cart is never marked all-selected.
func recomputeAllSelected(db *gorm.DB, cartID uint) (bool, error) {
	var items []models.CartItem
	if err := db.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return false, err
	}

	allSelected := len(items) > 0
	for _, item := range items {
		if !item.Selected {
			allSelected = false
			break
		}
	}

	err := db.Model(&models.Cart{}).Where("id = ?", cartID).Update("all_selected", allSelected).Error
	return allSelected, err
}

// SetItemSelected toggles one line item's selection flag and refreshes the
// cart aggregate.
func SetItemSelected(db *gorm.DB, userID, itemID uint, selected bool) (models.CartItem, bool, error) {
	item, cart, err := findUserCartItem(db, userID, itemID)
	if err != nil {
		return models.CartItem{}, false, err
	}

	item.Selected = selected
	var allSelected bool
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		allSelected, err = recomputeAllSelected(tx, cart.ID)
		return err
	})
	if err != nil {
		return models.CartItem{}, false, apperrors.Internal("failed to update cart item", err)
	}
	return item, allSelected, nil
}

// SetAllSelected sets every line item's flag and the cart aggregate together.
func SetAllSelected(db *gorm.DB, userID, cartID uint, selected bool) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("id = ? AND user_id = ?", cartID, userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, apperrors.NotFound("cart not found")
		}
		return models.Cart{}, apperrors.Internal("failed to fetch cart", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var itemCount int64
		if err := tx.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount).Error; err != nil {
			return err
		}
		err := tx.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Update("selected", selected).Error
		if err != nil {
			return err
		}
		// An empty cart is never marked all-selected.
		allSelected := selected && itemCount > 0
		return tx.Model(&cart).Update("all_selected", allSelected).Error
	})
	if err != nil {
		return models.Cart{}, apperrors.Internal("failed to update cart selection", err)
	}

	err = db.Preload("Items.Product").First(&cart, cart.ID).Error
	if err != nil {
		return models.Cart{}, apperrors.Internal("failed to fetch cart", err)
	}
	return cart, nil
}

// RemoveItem deletes a line item from the user's cart.
func RemoveItem(db *gorm.DB, userID, itemID uint) (models.CartItem, error) {
	item, cart, err := findUserCartItem(db, userID, itemID)
	if err != nil {
		return models.CartItem{}, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
			return err
		}
		_, err := recomputeAllSelected(tx, cart.ID)
		return err
	})
	if err != nil {
		return models.CartItem{}, apperrors.Internal("failed to remove cart item", err)
	}
	return item, nil
}
