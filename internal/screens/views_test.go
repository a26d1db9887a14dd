package screens

import (
	"testing"
	"time"

	"github.com/kspsusmitha/fitness-app/internal/calculator"
	"github.com/kspsusmitha/fitness-app/internal/catalog"
	"github.com/kspsusmitha/fitness-app/internal/models"
	"github.com/kspsusmitha/fitness-app/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func TestWorkoutsRendersOneCardPerWorkout(t *testing.T) {
	s := Workouts(ptrs(catalog.Workouts()))
	assert.Equal(t, navigation.TabWorkout, s.Tab)
	assert.Equal(t, "Workouts", s.Title)
	require.Equal(t, 2, s.CardCount())

	card := s.Sections[0].Cards[0]
	assert.Equal(t, "Full Body Workout", card.Title)
	assert.Equal(t, []string{"60 mins", "500 cal"}, card.Details)
	assert.Equal(t, &Badge{Text: "intermediate", Color: "#FF9800"}, card.Badge)
	assert.Equal(t, "#F44336", s.Sections[0].Cards[1].Badge.Color)
}

func TestWorkoutsBeginnerBadge(t *testing.T) {
	s := Workouts([]*models.Workout{{ID: "9", Name: "Stretch", Difficulty: models.DifficultyBeginner}})
	assert.Equal(t, "#4CAF50", s.Sections[0].Cards[0].Badge.Color)
}

func TestMembershipsRendersPlans(t *testing.T) {
	s := Memberships(ptrs(catalog.MembershipPlans()))
	require.Equal(t, 2, s.CardCount())

	basic := s.Sections[0].Cards[0]
	assert.Equal(t, "$49.99/month", basic.Subtitle)
	assert.Equal(t, []string{"1 month minimum"}, basic.Details)
	assert.Len(t, basic.Lines, 3)
	assert.Equal(t, "• Locker access", basic.Lines[2])
	assert.Equal(t, "Subscribe Now", basic.Action)

	assert.Equal(t, "$129.99/month", s.Sections[0].Cards[1].Subtitle)
}

func TestShopRendersSupplements(t *testing.T) {
	s := Shop(ptrs(catalog.Supplements()))
	require.Equal(t, 2, s.CardCount())

	whey := s.Sections[0].Cards[0]
	assert.Equal(t, "Whey Protein", whey.Title)
	assert.Equal(t, "Protein", whey.Subtitle)
	assert.Equal(t, []string{"$49.99"}, whey.Details)
	assert.Equal(t, "https://example.com/whey.jpg", whey.Image)
	assert.Equal(t, "Add to Cart", whey.Action)
}

func TestEmptyCollectionsRenderNoCards(t *testing.T) {
	assert.Equal(t, 0, Workouts(nil).CardCount())
	assert.Equal(t, 0, Memberships(nil).CardCount())
	assert.Equal(t, 0, Shop(nil).CardCount())
}

func TestHome(t *testing.T) {
	s := Home(ptrs(catalog.DashboardStats()), ptrs(catalog.UpcomingClasses()))
	assert.Equal(t, "Fitness Management System", s.Title)

	stats, ok := s.Section(SectionStats)
	require.True(t, ok)
	require.Len(t, stats.Cards, 2)
	assert.Equal(t, "2,400", stats.Cards[0].Subtitle)
	assert.Equal(t, "120g", stats.Cards[1].Subtitle)

	classes, ok := s.Section(SectionClasses)
	require.True(t, ok)
	assert.Empty(t, classes.Cards)
	assert.NotEmpty(t, classes.Empty)
}

func TestHomeWithClasses(t *testing.T) {
	starts := time.Date(2026, 10, 12, 18, 30, 0, 0, time.UTC)
	s := Home(nil, []*models.UpcomingClass{{Name: "Yoga", Trainer: "Anna", StartsAt: starts}})
	classes, _ := s.Section(SectionClasses)
	require.Len(t, classes.Cards, 1)
	assert.Equal(t, "Mon 18:30", classes.Cards[0].Subtitle)
	assert.Equal(t, []string{"Trainer: Anna"}, classes.Cards[0].Lines)
}

func TestProfile(t *testing.T) {
	user := catalog.User()
	p := calculator.Profile{Distance: "10", CaloriesBurned: 600, TotalProtein: 35.5}
	s := Profile(&user, p)

	assert.Equal(t, 1, s.CardCount())
	assert.Equal(t, "John Doe", s.Sections[0].Cards[0].Title)

	cal, ok := s.Section(SectionCalories)
	require.True(t, ok)
	assert.Equal(t, "Calories Burned: 600 cal", cal.Result)
	assert.Equal(t, "10", cal.Input.Value)
	assert.Equal(t, "Calculate", cal.Input.Button)

	prot, ok := s.Section(SectionProtein)
	require.True(t, ok)
	assert.Equal(t, "Total Protein Today: 35.5g", prot.Result)
	assert.Equal(t, "", prot.Input.Value)
	assert.Equal(t, "Add", prot.Input.Button)
}
