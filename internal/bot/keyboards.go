package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kspsusmitha/fitness-app/internal/navigation"
	"github.com/kspsusmitha/fitness-app/internal/screens"
)

const (
	callbackCalories = "calc_calories"
	callbackProtein  = "calc_protein"
)

// tabKeyboard - нижняя панель вкладок
func tabKeyboard() tgbotapi.ReplyKeyboardMarkup {
	tabs := navigation.Tabs()

	var first, second []tgbotapi.KeyboardButton
	for i, tab := range tabs {
		btn := tgbotapi.NewKeyboardButton(tab.Button())
		if i < 3 {
			first = append(first, btn)
		} else {
			second = append(second, btn)
		}
	}

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(first...),
		tgbotapi.NewKeyboardButtonRow(second...),
	)
	keyboard.ResizeKeyboard = true   // Клавиатура занимает меньше места
	keyboard.OneTimeKeyboard = false // Клавиатура остается постоянно
	return keyboard
}

// profileKeyboard - кнопки калькуляторов под экраном профиля
func profileKeyboard(s screens.Screen) tgbotapi.InlineKeyboardMarkup {
	calcLabel, addLabel := "Calculate", "Add"
	if sec, ok := s.Section(screens.SectionCalories); ok && sec.Input != nil {
		calcLabel = sec.Input.Button
	}
	if sec, ok := s.Section(screens.SectionProtein); ok && sec.Input != nil {
		addLabel = sec.Input.Button
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔥 "+calcLabel, callbackCalories),
			tgbotapi.NewInlineKeyboardButtonData("🥩 "+addLabel, callbackProtein),
		),
	)
}
