package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kspsusmitha/fitness-app/internal/navigation"
	"github.com/kspsusmitha/fitness-app/internal/screens"
)

var inputFields = map[string]int{
	screens.InputDistance:    fieldDistance,
	screens.InputFoodProtein: fieldProtein,
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(m.screen.Title))
	b.WriteString("\n")

	for _, sec := range m.screen.Sections {
		b.WriteString(m.section(sec))
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, len(navigation.Tabs()))
	for _, tab := range navigation.Tabs() {
		style := m.styles.Tab
		if tab == m.tab {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(tab.Button()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) section(sec screens.Section) string {
	var b strings.Builder

	if sec.Title != "" {
		b.WriteString(m.styles.Section.Render(sec.Title))
		b.WriteString("\n")
	}

	if len(sec.Cards) == 0 && sec.Empty != "" {
		b.WriteString(m.styles.Muted.Render(sec.Empty))
		b.WriteString("\n")
	}
	for _, c := range sec.Cards {
		b.WriteString(m.card(c))
		b.WriteString("\n")
	}

	if sec.Input != nil {
		b.WriteString(m.input(*sec.Input))
		b.WriteString("\n")
	}
	if sec.Result != "" {
		b.WriteString(m.styles.Result.Render(sec.Result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) card(c screens.Card) string {
	head := m.styles.CardTitle.Render(c.Title)
	if c.Badge != nil {
		head += " " + badgeStyle(c.Badge.Color).Render(c.Badge.Text)
	}

	lines := []string{head}
	if c.Subtitle != "" {
		lines = append(lines, m.styles.Subtitle.Render(c.Subtitle))
	}
	lines = append(lines, c.Lines...)
	if len(c.Details) > 0 {
		lines = append(lines, m.styles.Muted.Render(strings.Join(c.Details, " · ")))
	}
	if c.Action != "" {
		lines = append(lines, m.styles.Button.Render(c.Action))
	}
	return m.styles.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) input(in screens.Input) string {
	field, ok := inputFields[in.Name]
	if !ok {
		return ""
	}

	button := m.styles.Button
	if m.focus == field {
		button = m.styles.Focused
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, m.inputs[field].View(), " ", button.Render(in.Button))
}

func (m Model) help() string {
	switch {
	case m.focus != fieldNone:
		return "enter: press button • tab: next field • esc: leave field • ctrl+c: quit"
	case m.tab == navigation.TabProfile:
		return "←/→ or 1-5: switch tab • tab: edit fields • q: quit"
	default:
		return "←/→ or 1-5: switch tab • q: quit"
	}
}
