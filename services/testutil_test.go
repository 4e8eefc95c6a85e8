package services

import (
	"testing"

	"github.com/endabelyu/nakama-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the whole
	// test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Credential{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{Name: "Monkey D. Luffy", Email: email, Role: "user"}
	require.NoError(t, db.Create(&user).Error)

	cart := models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)

	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, slug string, price, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Slug:  slug,
		Name:  "Product " + slug,
		Price: price,
		Stock: stock,
		SKU:   "SKU-" + slug,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func userCart(t *testing.T, db *gorm.DB, userID uint) models.Cart {
	t.Helper()

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", userID).Preload("Items").First(&cart).Error)
	return cart
}
