package database

import (
	"fmt"
	"time"

	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/model"
	"crypto_compass_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	level := gormlogger.Warn
	if mode == "debug" {
		level = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Log.Info("Database connection established", zap.String("host", cfg.Host), zap.String("db", cfg.DBName))

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate 创建或更新结果与铸造记录表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.CompassResult{},
		&model.MintRecord{},
	); err != nil {
		return err
	}
	logger.Log.Info("Database migration completed")
	return nil
}
