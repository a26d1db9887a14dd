package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCalories(t *testing.T) {
	p := &Profile{Distance: "10"}
	assert.True(t, p.CalculateCalories())
	assert.Equal(t, 600, p.CaloriesBurned)
	// поле дистанции не очищается
	assert.Equal(t, "10", p.Distance)
}

func TestCalculateCaloriesInvalidKeepsResult(t *testing.T) {
	p := &Profile{Distance: "10"}
	assert.True(t, p.CalculateCalories())

	for _, in := range []string{"", "abc", "NaN", "--1", "Infinity"} {
		p.Distance = in
		assert.False(t, p.CalculateCalories(), in)
		assert.Equal(t, 600, p.CaloriesBurned, in)
	}
}

func TestCalculateCaloriesAcceptsNegative(t *testing.T) {
	p := &Profile{Distance: "-1"}
	assert.True(t, p.CalculateCalories())
	assert.Equal(t, -60, p.CaloriesBurned)
}

func TestAddProteinAccumulates(t *testing.T) {
	p := &Profile{}

	p.FoodProtein = "20"
	assert.True(t, p.AddProtein())
	assert.Equal(t, "", p.FoodProtein)

	p.FoodProtein = "15.5"
	assert.True(t, p.AddProtein())
	assert.Equal(t, "", p.FoodProtein)
	assert.InDelta(t, 35.5, p.TotalProtein, 1e-9)
}

func TestAddProteinInvalidIsNoop(t *testing.T) {
	p := &Profile{TotalProtein: 12, FoodProtein: "lots"}
	assert.False(t, p.AddProtein())
	assert.Equal(t, "lots", p.FoodProtein)
	assert.Equal(t, 12.0, p.TotalProtein)
}

func TestAddProteinOverflowIsNoop(t *testing.T) {
	p := &Profile{TotalProtein: 1.7e308, FoodProtein: "1.7e308"}
	assert.False(t, p.AddProtein())
	assert.Equal(t, "1.7e308", p.FoodProtein)
	assert.Equal(t, 1.7e308, p.TotalProtein)
}

func TestCalculatorsAreIndependent(t *testing.T) {
	p := &Profile{Distance: "2", FoodProtein: "30"}
	assert.True(t, p.CalculateCalories())
	assert.Equal(t, "30", p.FoodProtein)
	assert.Equal(t, 0.0, p.TotalProtein)

	assert.True(t, p.AddProtein())
	assert.Equal(t, 120, p.CaloriesBurned)
	assert.Equal(t, "2", p.Distance)
}
