package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/kspsusmitha/fitness-app/internal/database"
	"github.com/kspsusmitha/fitness-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrateTables(db, database.CatalogModels()...))
	require.NoError(t, database.SeedCatalog(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestCatalogRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepo(setupTestDB(t))

	workouts, err := repo.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	assert.Equal(t, "Full Body Workout", workouts[0].Name)
	assert.Equal(t, models.DifficultyAdvanced, workouts[1].Difficulty)

	plans, err := repo.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Len(t, plans[1].Features, 4)
	assert.Equal(t, 129.99, plans[1].Price)

	supplements, err := repo.ListSupplements(ctx)
	require.NoError(t, err)
	require.Len(t, supplements, 2)
	assert.Equal(t, 50, supplements[0].Stock)

	stats, err := repo.DashboardStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Daily Calories", stats[0].Title)

	classes, err := repo.UpcomingClasses(ctx)
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestCatalogRepoFindUser(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepo(setupTestDB(t))

	user, err := repo.FindUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)

	_, err = repo.FindUser(ctx, "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, database.SeedCatalog(ctx, db))

	repo := NewCatalogRepo(db)
	workouts, err := repo.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Len(t, workouts, 2)

	stats, err := repo.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, 2)
}

func TestMemoryCatalogMatchesGorm(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryCatalog()
	db := NewCatalogRepo(setupTestDB(t))

	memWorkouts, err := mem.ListWorkouts(ctx)
	require.NoError(t, err)
	dbWorkouts, err := db.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, memWorkouts, dbWorkouts)

	memPlans, err := mem.ListPlans(ctx)
	require.NoError(t, err)
	dbPlans, err := db.ListPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, memPlans, dbPlans)
}

func TestMemoryCatalogFindUser(t *testing.T) {
	mem := NewMemoryCatalog()
	u, err := mem.FindUser(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name)

	_, err = mem.FindUser(context.Background(), "2")
	assert.ErrorIs(t, err, ErrNotFound)
}
