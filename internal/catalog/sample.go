// Package catalog - встроенные образцы данных для всех экранов.
// Функции отдают копии, исходный набор не меняется
package catalog

import (
	"slices"

	"github.com/kspsusmitha/fitness-app/internal/models"
)

var sampleUser = models.User{
	ID:             "1",
	Name:           "John Doe",
	Email:          "john@example.com",
	Role:           models.RoleMember,
	ProfilePicture: "https://example.com/profile.jpg",
}

var sampleWorkouts = []models.Workout{
	{
		ID:           "1",
		Name:         "Full Body Workout",
		Description:  "Complete body workout including cardio and strength training",
		Duration:     60,
		CaloriesBurn: 500,
		Difficulty:   models.DifficultyIntermediate,
	},
	{
		ID:           "2",
		Name:         "HIIT Training",
		Description:  "High-intensity interval training for maximum calorie burn",
		Duration:     30,
		CaloriesBurn: 400,
		Difficulty:   models.DifficultyAdvanced,
	},
}

var samplePlans = []models.MembershipPlan{
	{
		ID:       "1",
		Name:     "Basic Plan",
		Duration: 1,
		Price:    49.99,
		Features: []string{"Access to gym equipment", "Basic fitness assessment", "Locker access"},
	},
	{
		ID:       "2",
		Name:     "Premium Plan",
		Duration: 3,
		Price:    129.99,
		Features: []string{
			"All Basic Plan features",
			"Personal trainer sessions",
			"Access to all classes",
			"Nutrition consultation",
		},
	},
}

var sampleSupplements = []models.Supplement{
	{
		ID:          "1",
		Name:        "Whey Protein",
		Description: "High-quality protein powder for muscle recovery",
		Price:       49.99,
		Category:    "Protein",
		Image:       "https://example.com/whey.jpg",
		Stock:       50,
	},
	{
		ID:          "2",
		Name:        "BCAA Complex",
		Description: "Branch Chain Amino Acids for muscle preservation",
		Price:       29.99,
		Category:    "Amino Acids",
		Image:       "https://example.com/bcaa.jpg",
		Stock:       30,
	},
}

var sampleStats = []models.DashboardStat{
	{Title: "Daily Calories", Value: "2,400", Position: 1},
	{Title: "Protein Intake", Value: "120g", Position: 2},
}

func User() models.User {
	return sampleUser
}

func Workouts() []models.Workout {
	return slices.Clone(sampleWorkouts)
}

func MembershipPlans() []models.MembershipPlan {
	plans := slices.Clone(samplePlans)
	for i := range plans {
		plans[i].Features = slices.Clone(plans[i].Features)
	}
	return plans
}

func Supplements() []models.Supplement {
	return slices.Clone(sampleSupplements)
}

func DashboardStats() []models.DashboardStat {
	return slices.Clone(sampleStats)
}

// UpcomingClasses пока пуст: расписание занятий ещё не подключено
func UpcomingClasses() []models.UpcomingClass {
	return []models.UpcomingClass{}
}
