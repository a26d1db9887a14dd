package database

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultConnectAttempts = 15

// NewPostgres подключается к PostgreSQL с retry логикой
func NewPostgres(ctx context.Context, dsn string, attempts int) (*gorm.DB, error) {
	attempts = connectAttempts(attempts)

	var err error

	log.Info("Attempting to connect to database...")

	for i := 1; i <= attempts; i++ {
		var db *gorm.DB
		if db, err = connect(ctx, postgres.Open(dsn)); err == nil {
			log.Infof("Database connected (attempt %d)", i)
			return db, nil
		}

		log.Warnf("Attempt %d failed: %v", i, err)
		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to database: %w", ctx.Err())
		case <-time.After(backoff(i)):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

// connectAttempts: 0 и меньше - значение по умолчанию
func connectAttempts(n int) int {
	if n <= 0 {
		return defaultConnectAttempts
	}
	return n
}

// connect открывает пул и проверяет соединение; при ошибке пул закрывается
func connect(ctx context.Context, dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		// gorm.Open возвращает открытый пул, даже если его ping упал
		closeDB(db)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Экспоненциальная пауза: 1, 2, 4, 8 секунд, дальше 10
func backoff(attempt int) time.Duration {
	const maxWait = 10 * time.Second
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 4 {
		return maxWait
	}
	return time.Duration(1<<uint(attempt-1)) * time.Second
}

// AutoMigrateTables создает таблицы
func AutoMigrateTables(db *gorm.DB, models ...interface{}) error {
	log.Info("Running database migrations...")

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Info("Database migrations completed")
	return nil
}
