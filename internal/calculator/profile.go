package calculator

// Profile - состояние экрана профиля: два текстовых поля и два результата
type Profile struct {
	Distance       string  `json:"distance"`
	FoodProtein    string  `json:"foodProtein"`
	CaloriesBurned int     `json:"caloriesBurned"`
	TotalProtein   float64 `json:"totalProtein"`
}

// CalculateCalories пересчитывает CaloriesBurned из Distance.
// При невалидном вводе ничего не меняется, результат false
func (p *Profile) CalculateCalories() bool {
	km, ok := ParseAmount(p.Distance)
	if !ok {
		return false
	}
	calories, ok := CaloriesForDistance(km)
	if !ok {
		return false
	}
	p.CaloriesBurned = calories
	return true
}

// AddProtein прибавляет FoodProtein к сумме и очищает поле.
// При невалидном вводе поле и сумма остаются как были
func (p *Profile) AddProtein() bool {
	grams, ok := ParseAmount(p.FoodProtein)
	if !ok {
		return false
	}
	total := p.TotalProtein + grams
	if !isFinite(total) {
		return false
	}
	p.TotalProtein = total
	p.FoodProtein = ""
	return true
}

func isFinite(v float64) bool {
	return v-v == 0
}
