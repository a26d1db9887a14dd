package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kspsusmitha/fitness-app/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) FindUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &user, nil
}

func (r *catalogRepo) ListWorkouts(ctx context.Context) ([]*models.Workout, error) {
	var workouts []*models.Workout
	err := r.db.WithContext(ctx).Order("id").Find(&workouts).Error
	if err != nil {
		log.Errorf("list workouts: %v", err)
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	log.Debugf("list workouts: found %d", len(workouts))
	return workouts, nil
}

func (r *catalogRepo) ListPlans(ctx context.Context) ([]*models.MembershipPlan, error) {
	var plans []*models.MembershipPlan
	if err := r.db.WithContext(ctx).Order("id").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("list membership plans: %w", err)
	}
	return plans, nil
}

func (r *catalogRepo) ListSupplements(ctx context.Context) ([]*models.Supplement, error) {
	var supplements []*models.Supplement
	if err := r.db.WithContext(ctx).Order("id").Find(&supplements).Error; err != nil {
		return nil, fmt.Errorf("list supplements: %w", err)
	}
	return supplements, nil
}

func (r *catalogRepo) DashboardStats(ctx context.Context) ([]*models.DashboardStat, error) {
	var stats []*models.DashboardStat
	if err := r.db.WithContext(ctx).Order("position").Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("list dashboard stats: %w", err)
	}
	return stats, nil
}

func (r *catalogRepo) UpcomingClasses(ctx context.Context) ([]*models.UpcomingClass, error) {
	var classes []*models.UpcomingClass
	if err := r.db.WithContext(ctx).Order("starts_at").Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("list upcoming classes: %w", err)
	}
	return classes, nil
}
