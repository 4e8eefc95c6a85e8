package services

import (
	"errors"

	"github.com/endabelyu/nakama-api/apperrors"
	"github.com/endabelyu/nakama-api/models"
	"gorm.io/gorm"
)

// GetProducts lists the catalog with pagination, name search and name sort.
func GetProducts(db *gorm.DB, page, limit int, q, sort string) ([]models.Product, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.Preload("Images")
	countQuery := db.Model(&models.Product{})
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
		countQuery = countQuery.Where("name LIKE ?", "%"+q+"%")
	}

	var products []models.Product
	result := query.Order("name " + normalizeSort(sort)).Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		return nil, Pagination{}, apperrors.Internal("unable to fetch products", result.Error)
	}

	var count int64
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, Pagination{}, apperrors.Internal("unable to count products", err)
	}

	return products, paginate(count, page, limit), nil
}

func GetProductBySlug(db *gorm.DB, slug string) (models.Product, error) {
	var product models.Product
	err := db.Preload("Images").Where("slug = ?", slug).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, apperrors.NotFound("product not found")
		}
		return models.Product{}, apperrors.Internal("unable to retrieve product", err)
	}
	return product, nil
}

func GetProductByID(db *gorm.DB, id uint) (models.Product, error) {
	var product models.Product
	err := db.Preload("Images").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, apperrors.NotFound("product not found")
		}
		return models.Product{}, apperrors.Internal("unable to retrieve product", err)
	}
	return product, nil
}

func CreateProduct(db *gorm.DB, product models.Product) (models.Product, error) {
	var existing models.Product
	result := db.Where("slug = ?", product.Slug).Find(&existing)
	if result.Error != nil {
		return models.Product{}, apperrors.Internal("unable to check product slug", result.Error)
	}
	if result.RowsAffected > 0 {
		return models.Product{}, apperrors.Validation("product with this slug already exists")
	}

	if err := db.Create(&product).Error; err != nil {
		return models.Product{}, apperrors.Internal("failed to create product", err)
	}
	return product, nil
}

func UpdateProduct(db *gorm.DB, id uint, data models.ProductUpdateData) (models.Product, error) {
	product, err := GetProductByID(db, id)
	if err != nil {
		return models.Product{}, err
	}

	updates := map[string]any{}
	if data.Name != nil {
		updates["name"] = *data.Name
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.Category != nil {
		updates["category"] = *data.Category
	}
	if data.Price != nil {
		updates["price"] = *data.Price
	}
	if data.Stock != nil {
		updates["stock"] = *data.Stock
	}
	if data.SKU != nil {
		updates["sku"] = *data.SKU
	}
	if data.ImageURL != nil {
		updates["image_url"] = *data.ImageURL
	}
	if len(updates) == 0 {
		return product, nil
	}

	if err := db.Model(&product).Updates(updates).Error; err != nil {
		return models.Product{}, apperrors.Internal("failed to update product", err)
	}
	return product, nil
}

func DeleteProduct(db *gorm.DB, id uint) error {
	if _, err := GetProductByID(db, id); err != nil {
		return err
	}
	if err := db.Delete(&models.Product{}, id).Error; err != nil {
		return apperrors.Internal("failed to delete product", err)
	}
	return nil
}

// AddProductImages records uploaded image URLs against a product.
func AddProductImages(db *gorm.DB, productID uint, urls []string) ([]models.ProductImage, error) {
	if _, err := GetProductByID(db, productID); err != nil {
		return nil, err
	}

	images := make([]models.ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, models.ProductImage{Url: url, ProductID: productID})
	}
	if len(images) == 0 {
		return images, nil
	}

	if err := db.Create(&images).Error; err != nil {
		return nil, apperrors.Internal("failed to save product images", err)
	}
	return images, nil
}
