package bot

import (
	"strings"

	"github.com/kspsusmitha/fitness-app/internal/screens"
)

// Экранирование спецсимволов legacy Markdown
var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

var badgeIcons = map[string]string{
	"#4CAF50": "🟢",
	"#FF9800": "🟠",
	"#F44336": "🔴",
}

// formatScreen рендерит экран в текст сообщения
func formatScreen(s screens.Screen) string {
	var sb strings.Builder
	sb.WriteString("*" + escape(s.Title) + "*\n")

	for _, sec := range s.Sections {
		sb.WriteString("\n")
		if sec.Title != "" {
			sb.WriteString("*" + escape(sec.Title) + "*\n")
		}
		if len(sec.Cards) == 0 && sec.Empty != "" {
			sb.WriteString("_" + escape(sec.Empty) + "_\n")
		}
		for i, c := range sec.Cards {
			formatCard(&sb, c)
			if i < len(sec.Cards)-1 {
				sb.WriteString("\n")
			}
		}
		if sec.Input != nil {
			sb.WriteString(escape(sec.Input.Placeholder) + ": ")
			if sec.Input.Value == "" {
				sb.WriteString("—\n")
			} else {
				sb.WriteString("`" + strings.ReplaceAll(sec.Input.Value, "`", "'") + "`\n")
			}
		}
		if sec.Result != "" {
			sb.WriteString("*" + escape(sec.Result) + "*\n")
		}
	}
	return sb.String()
}

func formatCard(sb *strings.Builder, c screens.Card) {
	sb.WriteString("• *" + escape(c.Title) + "*")
	if c.Subtitle != "" {
		sb.WriteString(" - " + escape(c.Subtitle))
	}
	sb.WriteString("\n")
	for _, line := range c.Lines {
		sb.WriteString("   " + escape(line) + "\n")
	}

	details := make([]string, 0, len(c.Details)+1)
	for _, d := range c.Details {
		details = append(details, escape(d))
	}
	if c.Badge != nil {
		details = append(details, badgeIcons[c.Badge.Color]+" "+escape(c.Badge.Text))
	}
	if len(details) > 0 {
		sb.WriteString("   " + strings.Join(details, " | ") + "\n")
	}
}
