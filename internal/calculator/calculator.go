// Package calculator - калькуляторы профиля: калории за дистанцию и сумма белка
package calculator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Ходьба: примерно 60 ккал на километр
const CaloriesPerKm = 60

// maxExactInt - предел, до которого float64 хранит целые без потерь (2^53)
const maxExactInt = 1 << 53

var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount берёт самый длинный числовой префикс после пробелов: "10km" даёт 10.
// Текст без числа и бесконечные значения невалидны
func ParseAmount(text string) (float64, bool) {
	s := strings.TrimLeftFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
	m := numberPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// CaloriesForDistance = round(km * 60), половина округляется вверх
func CaloriesForDistance(km float64) (int, bool) {
	c := math.Floor(km*CaloriesPerKm + 0.5)
	if math.IsInf(c, 0) || math.Abs(c) > maxExactInt {
		return 0, false
	}
	return int(c), true
}

// FormatProtein печатает число без лишних нулей: 35.5, 20
func FormatProtein(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
