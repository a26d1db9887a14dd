// Package navigation - оболочка приложения: корневой маршрут с пятью вкладками
package navigation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTab = errors.New("unknown tab")

type Tab string

const (
	TabHome       Tab = "home"
	TabWorkout    Tab = "workout"
	TabMembership Tab = "membership"
	TabShop       Tab = "shop"
	TabProfile    Tab = "profile"
)

// RootRoute - единственный экран стека, без заголовка
const RootRoute = "MainTabs"

var tabs = []Tab{TabHome, TabWorkout, TabMembership, TabShop, TabProfile}

var labels = map[Tab]string{
	TabHome:       "Home",
	TabWorkout:    "Workout",
	TabMembership: "Membership",
	TabShop:       "Shop",
	TabProfile:    "Profile",
}

var icons = map[Tab]string{
	TabHome:       "🏠",
	TabWorkout:    "🏋️",
	TabMembership: "💳",
	TabShop:       "🛒",
	TabProfile:    "👤",
}

// Tabs - вкладки в порядке показа
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

func (t Tab) Label() string {
	return labels[t]
}

func (t Tab) Icon() string {
	return icons[t]
}

// Button - подпись кнопки в клавиатуре бота
func (t Tab) Button() string {
	return t.Icon() + " " + t.Label()
}

func (t Tab) Index() int {
	for i, tab := range tabs {
		if tab == t {
			return i
		}
	}
	return -1
}

func (t Tab) Valid() bool {
	return t.Index() >= 0
}

// ParseTab принимает id, название или текст кнопки без учёта регистра и пробелов
func ParseTab(s string) (Tab, error) {
	s = strings.TrimSpace(s)
	for _, tab := range tabs {
		if strings.EqualFold(s, string(tab)) ||
			strings.EqualFold(s, tab.Label()) ||
			s == tab.Button() {
			return tab, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}
