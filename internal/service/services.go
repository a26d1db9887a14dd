package service

import (
	"github.com/kspsusmitha/fitness-app/internal/repository"
	"github.com/kspsusmitha/fitness-app/internal/session"
)

// Services - всё, что нужно фронтендам (бот, API, TUI)
type Services struct {
	Sessions   *Sessions
	Catalog    *CatalogService
	Profile    *ProfileService
	Navigation *NavigationService
}

func New(repo repository.CatalogRepository, store session.Store, userID string) *Services {
	sessions := NewSessions(store)
	catalog := NewCatalogService(repo)
	profile := NewProfileService(sessions, repo, userID)
	return &Services{
		Sessions:   sessions,
		Catalog:    catalog,
		Profile:    profile,
		Navigation: NewNavigationService(sessions, catalog, profile),
	}
}
