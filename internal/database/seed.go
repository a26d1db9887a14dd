package database

import (
	"context"
	"fmt"

	"github.com/kspsusmitha/fitness-app/internal/catalog"
	"github.com/kspsusmitha/fitness-app/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogModels - все таблицы каталога, в порядке миграции
func CatalogModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Workout{},
		&models.MembershipPlan{},
		&models.Supplement{},
		&models.DashboardStat{},
		&models.UpcomingClass{},
	}
}

// SeedCatalog записывает образцы данных; повторный запуск ничего не дублирует
func SeedCatalog(ctx context.Context, db *gorm.DB) error {
	user := catalog.User()
	workouts := catalog.Workouts()
	plans := catalog.MembershipPlans()
	supplements := catalog.Supplements()
	stats := catalog.DashboardStats()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Session делает цепочку переиспользуемой между Create
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true}).Session(&gorm.Session{})

		if err := upsert.Create(&user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if err := upsert.Create(&workouts).Error; err != nil {
			return fmt.Errorf("seed workouts: %w", err)
		}
		if err := upsert.Create(&plans).Error; err != nil {
			return fmt.Errorf("seed membership plans: %w", err)
		}
		if err := upsert.Create(&supplements).Error; err != nil {
			return fmt.Errorf("seed supplements: %w", err)
		}

		byPosition := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "position"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "value"}),
		})
		if err := byPosition.Create(&stats).Error; err != nil {
			return fmt.Errorf("seed dashboard stats: %w", err)
		}

		log.WithFields(log.Fields{
			"workouts":    len(workouts),
			"plans":       len(plans),
			"supplements": len(supplements),
		}).Info("Catalog seeded")
		return nil
	})
}
