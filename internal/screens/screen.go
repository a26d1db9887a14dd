// Package screens строит модель экрана каждой вкладки.
// Функции чистые, только форматируют входные данные
package screens

import (
	"strconv"

	"github.com/kspsusmitha/fitness-app/internal/navigation"
)

type Screen struct {
	Tab      navigation.Tab `json:"tab"`
	Title    string         `json:"title"`
	Sections []Section      `json:"sections"`
}

type Section struct {
	Title  string `json:"title,omitempty"`
	Cards  []Card `json:"cards"`
	Empty  string `json:"empty,omitempty"` // текст для пустого списка
	Input  *Input `json:"input,omitempty"`
	Result string `json:"result,omitempty"`
}

type Card struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Lines    []string `json:"lines,omitempty"`
	Details  []string `json:"details,omitempty"`
	Badge    *Badge   `json:"badge,omitempty"`
	Image    string   `json:"image,omitempty"`
	Action   string   `json:"action,omitempty"`
}

type Badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Input - текстовое поле с кнопкой на экране профиля
type Input struct {
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
	Button      string `json:"button"`
}

// CardCount - число карточек во всех секциях
func (s Screen) CardCount() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Cards)
	}
	return n
}

func (s Screen) Section(title string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.Title == title {
			return sec, true
		}
	}
	return Section{}, false
}

func formatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}
