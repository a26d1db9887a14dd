// Package tui - терминальный интерфейс: панель вкладок и поля калькуляторов
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kspsusmitha/fitness-app/internal/navigation"
	"github.com/kspsusmitha/fitness-app/internal/screens"
	"github.com/kspsusmitha/fitness-app/internal/service"
	log "github.com/sirupsen/logrus"
)

// SessionKey - у терминала один пользователь
const SessionKey = "tui:local"

// Поля профиля в порядке фокуса
const (
	fieldNone = iota - 1
	fieldDistance
	fieldProtein
	fieldCount
)

type Model struct {
	ctx      context.Context
	services *service.Services
	styles   styles

	tab    navigation.Tab
	screen screens.Screen

	inputs [fieldCount]textinput.Model
	focus  int

	err error
}

func New(ctx context.Context, services *service.Services) Model {
	m := Model{
		ctx:      ctx,
		services: services,
		styles:   newStyles(),
		focus:    fieldNone,
	}

	m.inputs[fieldDistance] = newInput(screens.PlaceholderDistance)
	m.inputs[fieldProtein] = newInput(screens.PlaceholderProtein)

	tab, err := services.Navigation.Active(ctx, SessionKey)
	if err != nil {
		m.err = err
		tab = navigation.TabHome
	}
	m.show(tab)

	// Поля восстанавливаются из сеанса
	if p, err := services.Profile.Profile(ctx, SessionKey); err == nil {
		m.inputs[fieldDistance].SetValue(p.Distance)
		m.inputs[fieldProtein].SetValue(p.FoodProtein)
	}
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 24
	return ti
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus == fieldNone {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.focus != fieldNone {
		return m.updateFocused(key)
	}

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "right", "l":
		m.show(navigation.NewShell(m.tab).Next())
	case "left", "h":
		m.show(navigation.NewShell(m.tab).Prev())
	case "1", "2", "3", "4", "5":
		m.show(navigation.Tabs()[key.Runes[0]-'1'])
	case "tab":
		if m.tab == navigation.TabProfile {
			cmd := m.setFocus(fieldDistance)
			return m, cmd
		}
	}
	return m, nil
}

// updateFocused: ввод идёт в поле, tab переключает фокус, esc снимает его
func (m Model) updateFocused(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch key.Type {
	case tea.KeyEsc:
		cmd = m.setFocus(fieldNone)
		return m, cmd
	case tea.KeyTab:
		next := m.focus + 1
		if next == fieldCount {
			next = fieldNone
		}
		cmd = m.setFocus(next)
		return m, cmd
	case tea.KeyShiftTab:
		cmd = m.setFocus(m.focus - 1)
		return m, cmd
	case tea.KeyEnter:
		m.press()
		return m, nil
	}

	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	return m, cmd
}

func (m *Model) setFocus(field int) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	if field == fieldNone {
		return nil
	}
	return m.inputs[field].Focus()
}

// press нажимает кнопку сфокусированного поля
func (m *Model) press() {
	text := m.inputs[m.focus].Value()

	var out service.Outcome
	var err error
	switch m.focus {
	case fieldDistance:
		if _, err = m.services.Profile.SetDistance(m.ctx, SessionKey, text); err == nil {
			out, err = m.services.Profile.CalculateCalories(m.ctx, SessionKey)
		}
	case fieldProtein:
		if _, err = m.services.Profile.SetFoodProtein(m.ctx, SessionKey, text); err == nil {
			out, err = m.services.Profile.AddProtein(m.ctx, SessionKey)
		}
	}
	if err != nil {
		m.fail(err)
		return
	}

	if m.focus == fieldProtein {
		m.inputs[fieldProtein].SetValue(out.Profile.FoodProtein)
	}
	m.show(navigation.TabProfile)
}

func (m *Model) show(tab navigation.Tab) {
	s, err := m.services.Navigation.Select(m.ctx, SessionKey, tab)
	if err != nil {
		m.fail(err)
		return
	}
	m.tab = tab
	m.screen = s
	m.err = nil
}

func (m *Model) fail(err error) {
	log.WithError(err).Error("tui action failed")
	m.err = err
}
