// Package app собирает общие зависимости бинарников: каталог, хранилище
// сеансов и сервисы.
package app

import (
	"context"
	"fmt"

	"github.com/kspsusmitha/fitness-app/internal/config"
	"github.com/kspsusmitha/fitness-app/internal/database"
	"github.com/kspsusmitha/fitness-app/internal/repository"
	"github.com/kspsusmitha/fitness-app/internal/service"
	"github.com/kspsusmitha/fitness-app/internal/session"
	"github.com/kspsusmitha/fitness-app/pkg/utils"
)

// openDB подменяется в тестах
var openDB = database.NewPostgres

// App - собранные сервисы и функция освобождения ресурсов
type App struct {
	Services *service.Services
	closers  []func() error
}

// Build выбирает реализации по конфигу: без DSN каталог берётся из памяти,
// без адреса Redis сеансы живут в процессе.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	repo, err := a.catalog(ctx, cfg.Database)
	if err != nil {
		a.Close()
		return nil, err
	}

	store := a.sessions(ctx, cfg)

	a.Services = service.New(repo, store, cfg.App.UserID)
	return a, nil
}

func (a *App) catalog(ctx context.Context, cfg config.DatabaseConfig) (repository.CatalogRepository, error) {
	if cfg.DSN == "" {
		utils.Log.Info("Catalog: built-in sample data")
		return repository.NewMemoryCatalog(), nil
	}

	db, err := openDB(ctx, cfg.DSN, cfg.ConnectAttempts)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	if err := database.AutoMigrateTables(db, database.CatalogModels()...); err != nil {
		return nil, err
	}
	if err := database.SeedCatalog(ctx, db); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	utils.Log.Info("Catalog: PostgreSQL")
	return repository.NewCatalogRepo(db), nil
}

// sessions: недоступный Redis не роняет запуск, переходим на память
func (a *App) sessions(ctx context.Context, cfg *config.Config) session.Store {
	if cfg.Redis.Address == "" {
		utils.Log.Info("Sessions: in memory")
		return session.NewMemoryStore(cfg.Session.TTL)
	}

	client := session.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	if err := session.Ping(ctx, client); err != nil {
		utils.Log.Error("Redis unavailable, using in-memory sessions: " + err.Error())
		_ = client.Close()
		return session.NewMemoryStore(cfg.Session.TTL)
	}

	a.closers = append(a.closers, client.Close)
	utils.Log.Info("Sessions: Redis at " + cfg.Redis.Address)
	return session.NewRedisStore(client, cfg.Session.TTL)
}

// Close закрывает соединения в обратном порядке
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			utils.Log.Error("close: " + err.Error())
		}
	}
}
