package repository

import (
	"context"
	"errors"

	"github.com/kspsusmitha/fitness-app/internal/models"
)

var ErrNotFound = errors.New("record not found")

// CatalogRepository - источник данных для экранов (только чтение)
type CatalogRepository interface {
	FindUser(ctx context.Context, id string) (*models.User, error)
	ListWorkouts(ctx context.Context) ([]*models.Workout, error)
	ListPlans(ctx context.Context) ([]*models.MembershipPlan, error)
	ListSupplements(ctx context.Context) ([]*models.Supplement, error)
	DashboardStats(ctx context.Context) ([]*models.DashboardStat, error)
	UpcomingClasses(ctx context.Context) ([]*models.UpcomingClass, error)
}
