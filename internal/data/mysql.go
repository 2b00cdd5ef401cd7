package data

import (
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JMirval/watchmapper-sub001/internal/config"
	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// NewMySQL opens the GORM connection and configures the pool.
func NewMySQL(cfg config.MySQLConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(
			&model.User{},
			&model.UserPreferences{},
			&model.Brand{},
			&model.Shop{},
			&model.Review{},
			&model.UserBrand{},
			&model.UserShop{},
		); err != nil {
			return nil, err
		}
		log.Info("mysql schema migrated")
	}
	return db, nil
}
