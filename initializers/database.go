package initializers

import (
	"fmt"

	"github.com/endabelyu/nakama-api/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectToDB opens the pooled MySQL connection used for the lifetime of the
// process. The handle is passed explicitly to routes and services rather than
// held as a package global.
func ConnectToDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
