package service

import (
	"context"
	"fmt"

	"github.com/kspsusmitha/fitness-app/internal/repository"
	"github.com/kspsusmitha/fitness-app/internal/screens"
)

type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) HomeScreen(ctx context.Context) (screens.Screen, error) {
	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return screens.Screen{}, fmt.Errorf("home screen: %w", err)
	}
	classes, err := s.repo.UpcomingClasses(ctx)
	if err != nil {
		return screens.Screen{}, fmt.Errorf("home screen: %w", err)
	}
	return screens.Home(stats, classes), nil
}

func (s *CatalogService) WorkoutScreen(ctx context.Context) (screens.Screen, error) {
	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return screens.Screen{}, fmt.Errorf("workout screen: %w", err)
	}
	return screens.Workouts(workouts), nil
}

func (s *CatalogService) MembershipScreen(ctx context.Context) (screens.Screen, error) {
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return screens.Screen{}, fmt.Errorf("membership screen: %w", err)
	}
	return screens.Memberships(plans), nil
}

func (s *CatalogService) ShopScreen(ctx context.Context) (screens.Screen, error) {
	supplements, err := s.repo.ListSupplements(ctx)
	if err != nil {
		return screens.Screen{}, fmt.Errorf("shop screen: %w", err)
	}
	return screens.Shop(supplements), nil
}
