package screens

import (
	"fmt"

	"github.com/kspsusmitha/fitness-app/internal/calculator"
	"github.com/kspsusmitha/fitness-app/internal/models"
	"github.com/kspsusmitha/fitness-app/internal/navigation"
)

const (
	SectionStats     = "Today"
	SectionClasses   = "Upcoming Classes"
	SectionCalories  = "Calorie Burn Calculator"
	SectionProtein   = "Protein Calculator"
	InputDistance    = "distance"
	InputFoodProtein = "foodProtein"

	PlaceholderDistance = "Enter distance (km)"
	PlaceholderProtein  = "Enter protein amount (g)"
)

var difficultyColors = map[models.Difficulty]string{
	models.DifficultyBeginner:     "#4CAF50",
	models.DifficultyIntermediate: "#FF9800",
	models.DifficultyAdvanced:     "#F44336",
}

func Home(stats []*models.DashboardStat, classes []*models.UpcomingClass) Screen {
	statCards := make([]Card, 0, len(stats))
	for _, s := range stats {
		statCards = append(statCards, Card{Title: s.Title, Subtitle: s.Value})
	}

	classCards := make([]Card, 0, len(classes))
	for _, c := range classes {
		card := Card{Title: c.Name, Subtitle: c.StartsAt.Format("Mon 15:04")}
		if c.Trainer != "" {
			card.Lines = []string{"Trainer: " + c.Trainer}
		}
		classCards = append(classCards, card)
	}

	return Screen{
		Tab:   navigation.TabHome,
		Title: "Fitness Management System",
		Sections: []Section{
			{Title: SectionStats, Cards: statCards},
			{Title: SectionClasses, Cards: classCards, Empty: "No upcoming classes yet"},
		},
	}
}

func Workouts(workouts []*models.Workout) Screen {
	cards := make([]Card, 0, len(workouts))
	for _, w := range workouts {
		color, ok := difficultyColors[w.Difficulty]
		if !ok {
			color = difficultyColors[models.DifficultyAdvanced]
		}
		cards = append(cards, Card{
			ID:      w.ID,
			Title:   w.Name,
			Lines:   []string{w.Description},
			Details: []string{fmt.Sprintf("%d mins", w.Duration), fmt.Sprintf("%d cal", w.CaloriesBurn)},
			Badge:   &Badge{Text: string(w.Difficulty), Color: color},
		})
	}

	return Screen{
		Tab:      navigation.TabWorkout,
		Title:    "Workouts",
		Sections: []Section{{Cards: cards, Empty: "No workouts available"}},
	}
}

func Memberships(plans []*models.MembershipPlan) Screen {
	cards := make([]Card, 0, len(plans))
	for _, p := range plans {
		features := make([]string, 0, len(p.Features))
		for _, f := range p.Features {
			features = append(features, "• "+f)
		}
		cards = append(cards, Card{
			ID:       p.ID,
			Title:    p.Name,
			Subtitle: formatPrice(p.Price) + "/month",
			Details:  []string{fmt.Sprintf("%d month minimum", p.Duration)},
			Lines:    features,
			Action:   "Subscribe Now",
		})
	}

	return Screen{
		Tab:      navigation.TabMembership,
		Title:    "Membership Plans",
		Sections: []Section{{Cards: cards, Empty: "No membership plans available"}},
	}
}

func Shop(supplements []*models.Supplement) Screen {
	cards := make([]Card, 0, len(supplements))
	for _, s := range supplements {
		cards = append(cards, Card{
			ID:       s.ID,
			Title:    s.Name,
			Subtitle: s.Category,
			Lines:    []string{s.Description},
			Details:  []string{formatPrice(s.Price)},
			Image:    s.Image,
			Action:   "Add to Cart",
		})
	}

	return Screen{
		Tab:      navigation.TabShop,
		Title:    "Supplements Shop",
		Sections: []Section{{Cards: cards, Empty: "The shop is empty"}},
	}
}

func Profile(user *models.User, p calculator.Profile) Screen {
	var userCards []Card
	if user != nil {
		userCards = []Card{{ID: user.ID, Title: user.Name, Subtitle: user.Email, Image: user.ProfilePicture}}
	}

	return Screen{
		Tab:   navigation.TabProfile,
		Title: "Profile",
		Sections: []Section{
			{Cards: userCards},
			{
				Title: SectionCalories,
				Cards: []Card{},
				Input: &Input{
					Name:        InputDistance,
					Placeholder: PlaceholderDistance,
					Value:       p.Distance,
					Button:      "Calculate",
				},
				Result: CaloriesResult(p),
			},
			{
				Title: SectionProtein,
				Cards: []Card{},
				Input: &Input{
					Name:        InputFoodProtein,
					Placeholder: PlaceholderProtein,
					Value:       p.FoodProtein,
					Button:      "Add",
				},
				Result: ProteinResult(p),
			},
		},
	}
}

func CaloriesResult(p calculator.Profile) string {
	return fmt.Sprintf("Calories Burned: %d cal", p.CaloriesBurned)
}

func ProteinResult(p calculator.Profile) string {
	return fmt.Sprintf("Total Protein Today: %sg", calculator.FormatProtein(p.TotalProtein))
}
