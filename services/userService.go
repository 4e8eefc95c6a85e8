package services

import (
	"errors"

	"github.com/endabelyu/nakama-api/apperrors"
	"github.com/endabelyu/nakama-api/models"
	"gorm.io/gorm"
)

// GetUsers lists public user projections with pagination and name search.
func GetUsers(db *gorm.DB, page, limit int, q, sort string) ([]models.PublicUser, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.Model(&models.User{})
	countQuery := db.Model(&models.User{})
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
		countQuery = countQuery.Where("name LIKE ?", "%"+q+"%")
	}

	var users []models.User
	result := query.Order("name " + normalizeSort(sort)).Limit(limit).Offset(offset).Find(&users)
	if result.Error != nil {
		return nil, Pagination{}, apperrors.Internal("unable to fetch users", result.Error)
	}

	var count int64
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, Pagination{}, apperrors.Internal("unable to count users", err)
	}

	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, user.Public())
	}

	return publicUsers, paginate(count, page, limit), nil
}

func GetUserByID(db *gorm.DB, id uint) (models.PublicUser, error) {
	var user models.User
	err := db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PublicUser{}, apperrors.NotFound("user not found")
		}
		return models.PublicUser{}, apperrors.Internal("unable to retrieve user", err)
	}
	return user.Public(), nil
}
