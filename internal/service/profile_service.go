package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kspsusmitha/fitness-app/internal/calculator"
	"github.com/kspsusmitha/fitness-app/internal/models"
	"github.com/kspsusmitha/fitness-app/internal/repository"
	"github.com/kspsusmitha/fitness-app/internal/screens"
	"github.com/kspsusmitha/fitness-app/internal/session"
	log "github.com/sirupsen/logrus"
)

// Outcome - результат нажатия кнопки калькулятора.
// Updated=false значит, что ввод не число и ничего не изменилось.
type Outcome struct {
	Profile calculator.Profile
	Updated bool
}

type ProfileService struct {
	sessions *Sessions
	repo     repository.CatalogRepository
	userID   string
}

func NewProfileService(sessions *Sessions, repo repository.CatalogRepository, userID string) *ProfileService {
	return &ProfileService{sessions: sessions, repo: repo, userID: userID}
}

func (s *ProfileService) Profile(ctx context.Context, key string) (calculator.Profile, error) {
	state, err := s.sessions.Load(ctx, key)
	if err != nil {
		return calculator.Profile{}, err
	}
	return state.Profile, nil
}

// SetDistance - ввод в поле дистанции
func (s *ProfileService) SetDistance(ctx context.Context, key, text string) (calculator.Profile, error) {
	state, err := s.sessions.Update(ctx, key, func(st *session.State) (bool, error) {
		st.Profile.Distance = text
		return true, nil
	})
	if err != nil {
		return calculator.Profile{}, err
	}
	return state.Profile, nil
}

// SetFoodProtein - ввод в поле белка
func (s *ProfileService) SetFoodProtein(ctx context.Context, key, text string) (calculator.Profile, error) {
	state, err := s.sessions.Update(ctx, key, func(st *session.State) (bool, error) {
		st.Profile.FoodProtein = text
		return true, nil
	})
	if err != nil {
		return calculator.Profile{}, err
	}
	return state.Profile, nil
}

func (s *ProfileService) CalculateCalories(ctx context.Context, key string) (Outcome, error) {
	var updated bool
	state, err := s.sessions.Update(ctx, key, func(st *session.State) (bool, error) {
		updated = st.Profile.CalculateCalories()
		return updated, nil
	})
	if err != nil {
		return Outcome{}, err
	}
	log.WithFields(log.Fields{"session": key, "updated": updated, "calories": state.Profile.CaloriesBurned}).
		Debug("calories calculated")
	return Outcome{Profile: state.Profile, Updated: updated}, nil
}

func (s *ProfileService) AddProtein(ctx context.Context, key string) (Outcome, error) {
	var updated bool
	state, err := s.sessions.Update(ctx, key, func(st *session.State) (bool, error) {
		updated = st.Profile.AddProtein()
		return updated, nil
	})
	if err != nil {
		return Outcome{}, err
	}
	log.WithFields(log.Fields{"session": key, "updated": updated, "total": state.Profile.TotalProtein}).
		Debug("protein added")
	return Outcome{Profile: state.Profile, Updated: updated}, nil
}

// Await запоминает, какое поле бот ждёт следующим сообщением
func (s *ProfileService) Await(ctx context.Context, key string, field session.Awaiting) error {
	_, err := s.sessions.Update(ctx, key, func(st *session.State) (bool, error) {
		st.Awaiting = field
		return true, nil
	})
	return err
}

func (s *ProfileService) Awaiting(ctx context.Context, key string) (session.Awaiting, error) {
	state, err := s.sessions.Load(ctx, key)
	if err != nil {
		return session.AwaitingNone, err
	}
	return state.Awaiting, nil
}

// Submit заполняет ожидаемое поле и сразу жмёт его кнопку.
// После невалидного ввода ожидание остаётся, можно попробовать снова
func (s *ProfileService) Submit(ctx context.Context, key, text string) (session.Awaiting, Outcome, error) {
	var field session.Awaiting
	var updated bool
	state, err := s.sessions.Update(ctx, key, func(st *session.State) (bool, error) {
		field = st.Awaiting
		switch field {
		case session.AwaitingDistance:
			st.Profile.Distance = text
			updated = st.Profile.CalculateCalories()
		case session.AwaitingProtein:
			st.Profile.FoodProtein = text
			updated = st.Profile.AddProtein()
		default:
			return false, nil
		}
		if updated {
			st.Awaiting = session.AwaitingNone
		}
		return true, nil
	})
	if err != nil {
		return session.AwaitingNone, Outcome{}, err
	}
	return field, Outcome{Profile: state.Profile, Updated: updated}, nil
}

func (s *ProfileService) User(ctx context.Context) (*models.User, error) {
	user, err := s.repo.FindUser(ctx, s.userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile user: %w", err)
	}
	return user, nil
}

func (s *ProfileService) ProfileScreen(ctx context.Context, key string) (screens.Screen, error) {
	user, err := s.User(ctx)
	if err != nil {
		return screens.Screen{}, err
	}
	profile, err := s.Profile(ctx, key)
	if err != nil {
		return screens.Screen{}, err
	}
	return screens.Profile(user, profile), nil
}
