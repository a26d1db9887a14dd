package bot

import (
	"testing"

	"github.com/kspsusmitha/fitness-app/internal/calculator"
	"github.com/kspsusmitha/fitness-app/internal/catalog"
	"github.com/kspsusmitha/fitness-app/internal/models"
	"github.com/kspsusmitha/fitness-app/internal/screens"
	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, `snake\_case \*bold\* \[link`, escape("snake_case *bold* [link"))
}

func TestFormatWorkouts(t *testing.T) {
	w := catalog.Workouts()
	text := formatScreen(screens.Workouts([]*models.Workout{&w[0], &w[1]}))

	assert.Contains(t, text, "*Workouts*")
	assert.Contains(t, text, "• *Full Body Workout*")
	assert.Contains(t, text, "60 mins | 500 cal | 🟠 intermediate")
	assert.Contains(t, text, "🔴 advanced")
}

func TestFormatEmptySection(t *testing.T) {
	text := formatScreen(screens.Home(nil, nil))
	assert.Contains(t, text, "*Upcoming Classes*")
	assert.Contains(t, text, "_No upcoming classes yet_")
}

func TestFormatProfileInputs(t *testing.T) {
	u := catalog.User()
	text := formatScreen(screens.Profile(&u, calculator.Profile{Distance: "12", TotalProtein: 20}))
	assert.Contains(t, text, "Enter distance (km): `12`")
	assert.Contains(t, text, "Enter protein amount (g): —")
	assert.Contains(t, text, "*Total Protein Today: 20g*")
	assert.Contains(t, text, "john@example.com")
}
