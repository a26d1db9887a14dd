package repository

import (
	"context"

	"github.com/kspsusmitha/fitness-app/internal/catalog"
	"github.com/kspsusmitha/fitness-app/internal/models"
)

// MemoryCatalog отдаёт встроенные образцы данных
type MemoryCatalog struct{}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

func (MemoryCatalog) FindUser(_ context.Context, id string) (*models.User, error) {
	u := catalog.User()
	if u.ID != id {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (MemoryCatalog) ListWorkouts(context.Context) ([]*models.Workout, error) {
	return pointers(catalog.Workouts()), nil
}

func (MemoryCatalog) ListPlans(context.Context) ([]*models.MembershipPlan, error) {
	return pointers(catalog.MembershipPlans()), nil
}

func (MemoryCatalog) ListSupplements(context.Context) ([]*models.Supplement, error) {
	return pointers(catalog.Supplements()), nil
}

func (MemoryCatalog) DashboardStats(context.Context) ([]*models.DashboardStat, error) {
	return pointers(catalog.DashboardStats()), nil
}

func (MemoryCatalog) UpcomingClasses(context.Context) ([]*models.UpcomingClass, error) {
	return pointers(catalog.UpcomingClasses()), nil
}

func pointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
