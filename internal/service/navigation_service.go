package service

import (
	"context"
	"fmt"

	"github.com/kspsusmitha/fitness-app/internal/navigation"
	"github.com/kspsusmitha/fitness-app/internal/screens"
	"github.com/kspsusmitha/fitness-app/internal/session"
)

type NavigationService struct {
	sessions *Sessions
	catalog  *CatalogService
	profile  *ProfileService
}

func NewNavigationService(sessions *Sessions, catalog *CatalogService, profile *ProfileService) *NavigationService {
	return &NavigationService{sessions: sessions, catalog: catalog, profile: profile}
}

func (s *NavigationService) Tabs() []navigation.Tab {
	return navigation.Tabs()
}

func (s *NavigationService) Active(ctx context.Context, key string) (navigation.Tab, error) {
	state, err := s.sessions.Load(ctx, key)
	if err != nil {
		return "", err
	}
	return navigation.NewShell(navigation.Tab(state.Tab)).Active(), nil
}

// Select переключает вкладку и строит её экран. Поля профиля не меняются;
// уход с профиля отменяет ожидание ввода для калькулятора
func (s *NavigationService) Select(ctx context.Context, key string, tab navigation.Tab) (screens.Screen, error) {
	_, err := s.sessions.Update(ctx, key, func(st *session.State) (bool, error) {
		shell := navigation.NewShell(navigation.Tab(st.Tab))
		if err := shell.Select(tab); err != nil {
			return false, err
		}
		st.Tab = string(shell.Active())
		if shell.Active() != navigation.TabProfile {
			st.Awaiting = session.AwaitingNone
		}
		return true, nil
	})
	if err != nil {
		return screens.Screen{}, err
	}
	return s.Render(ctx, key, tab)
}

// Render строит экран вкладки без смены активной вкладки
func (s *NavigationService) Render(ctx context.Context, key string, tab navigation.Tab) (screens.Screen, error) {
	switch tab {
	case navigation.TabHome:
		return s.catalog.HomeScreen(ctx)
	case navigation.TabWorkout:
		return s.catalog.WorkoutScreen(ctx)
	case navigation.TabMembership:
		return s.catalog.MembershipScreen(ctx)
	case navigation.TabShop:
		return s.catalog.ShopScreen(ctx)
	case navigation.TabProfile:
		return s.profile.ProfileScreen(ctx, key)
	}
	return screens.Screen{}, fmt.Errorf("%w: %q", navigation.ErrUnknownTab, string(tab))
}

func (s *NavigationService) RenderActive(ctx context.Context, key string) (screens.Screen, error) {
	tab, err := s.Active(ctx, key)
	if err != nil {
		return screens.Screen{}, err
	}
	return s.Render(ctx, key, tab)
}
