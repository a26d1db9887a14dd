package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kspsusmitha/fitness-app/internal/metrics"
	"github.com/kspsusmitha/fitness-app/internal/navigation"
	"github.com/kspsusmitha/fitness-app/internal/screens"
	"github.com/kspsusmitha/fitness-app/internal/service"
	"github.com/kspsusmitha/fitness-app/internal/session"
	log "github.com/sirupsen/logrus"
)

const frontend = "bot"

// Sender - часть tgbotapi.BotAPI, через которую бот отправляет сообщения
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// BotApp - основная структура бота
type BotApp struct {
	API    *tgbotapi.BotAPI
	sender Sender

	Admins  []int64
	timeout int

	services *service.Services
	metrics  *metrics.Metrics
}

// Конструктор бота
func NewBotApp(token string, services *service.Services, m *metrics.Metrics, adminIDs []int64, timeout int) (*BotApp, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	b := newBotApp(botAPI, services, m, adminIDs)
	b.API = botAPI
	b.timeout = timeout
	return b, nil
}

func newBotApp(sender Sender, services *service.Services, m *metrics.Metrics, adminIDs []int64) *BotApp {
	return &BotApp{
		sender:   sender,
		Admins:   adminIDs,
		timeout:  60,
		services: services,
		metrics:  m,
	}
}

// Run читает обновления до отмены ctx
func (b *BotApp) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout
	updates := b.API.GetUpdatesChan(u)
	log.WithField("bot", b.API.Self.UserName).Info("Bot started")

	for {
		select {
		case <-ctx.Done():
			b.API.StopReceivingUpdates()
			log.Info("Bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate обрабатывает одно обновление
func (b *BotApp) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	start := time.Now()
	defer func() {
		b.metrics.UpdateProcessingTime.Observe(time.Since(start).Seconds())
	}()

	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}
	b.metrics.MessagesProcessed.Inc()

	if update.Message.IsCommand() {
		b.handleCommand(ctx, update.Message)
		return
	}

	b.handleRegularMessage(ctx, update.Message)
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("tg:%d", chatID)
}

// Проверка админа
func (b *BotApp) isAdmin(userID int64) bool {
	for _, id := range b.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

// Команды
func (b *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	cmd := msg.Command()
	chatID := msg.Chat.ID
	b.metrics.CommandsProcessed.WithLabelValues(cmd).Inc()

	switch cmd {
	case "start":
		b.sendTextWithTabs(chatID, "👋 Welcome to *Fitness Management System*! Use the tabs below to navigate.")
		b.showTab(ctx, chatID, navigation.TabHome)
	case "help":
		b.sendText(chatID, helpMessage)
	case "reset":
		if err := b.services.Sessions.Reset(ctx, sessionKey(chatID)); err != nil {
			b.fail(chatID, "reset session", err)
			return
		}
		b.sendTextWithTabs(chatID, "🔄 Session restarted, all totals cleared.")
	case "sessions":
		if msg.From == nil || !b.isAdmin(msg.From.ID) {
			b.sendText(chatID, "⛔ Not allowed")
			return
		}
		n, ok := b.services.Sessions.Count()
		if !ok {
			b.sendText(chatID, "Session count is not available for this store")
			return
		}
		b.sendText(chatID, fmt.Sprintf("Active sessions: %d", n))
	default:
		b.sendText(chatID, "Unknown command. Use /help")
	}
}

const helpMessage = `📚 *Fitness Management System*

*Tabs:*
🏠 Home - daily stats and upcoming classes
🏋️ Workout - workout programs
💳 Membership - membership plans
🛒 Shop - supplements
👤 Profile - calorie and protein calculators

*Commands:*
/start - show the tabs
/help - this help
/reset - restart the session`

func (b *BotApp) handleRegularMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := msg.Text

	log.WithFields(log.Fields{"chat": chatID, "text": text}).Debug("regular message")

	// 1. Кнопка вкладки
	if tab, err := navigation.ParseTab(text); err == nil {
		b.showTab(ctx, chatID, tab)
		return
	}

	// 2. Ожидаемый ввод калькулятора
	key := sessionKey(chatID)
	field, outcome, err := b.services.Profile.Submit(ctx, key, text)
	if err != nil {
		b.fail(chatID, "submit input", err)
		return
	}

	switch field {
	case session.AwaitingDistance:
		b.metrics.Calculation("calories", outcome.Updated)
	case session.AwaitingProtein:
		b.metrics.Calculation("protein", outcome.Updated)
	default:
		// 3. Ничего не ждём - показываем вкладки
		b.sendTextWithTabs(chatID, "Choose a tab below 👇")
		return
	}

	if !outcome.Updated {
		b.sendText(chatID, "⚠️ That is not a number, try again (e.g. 10)")
		return
	}
	b.showTab(ctx, chatID, navigation.TabProfile)
}

func (b *BotApp) handleCallback(ctx context.Context, c *tgbotapi.CallbackQuery) {
	// Отвечаем на callback, чтобы убрать "часики"
	b.answerCallback(c.ID, "")

	if c.Message == nil || c.Message.Chat == nil {
		return
	}
	chatID := c.Message.Chat.ID
	key := sessionKey(chatID)

	var field session.Awaiting
	var prompt string
	switch c.Data {
	case callbackCalories:
		field, prompt = session.AwaitingDistance, "Enter distance (km):"
	case callbackProtein:
		field, prompt = session.AwaitingProtein, "Enter protein amount (g):"
	default:
		log.WithField("data", c.Data).Warn("unknown callback")
		return
	}

	if err := b.services.Profile.Await(ctx, key, field); err != nil {
		b.fail(chatID, "await input", err)
		return
	}
	b.sendText(chatID, prompt)
}

func (b *BotApp) showTab(ctx context.Context, chatID int64, tab navigation.Tab) {
	s, err := b.services.Navigation.Select(ctx, sessionKey(chatID), tab)
	if err != nil {
		b.fail(chatID, "render "+string(tab), err)
		return
	}
	b.metrics.ScreenView(string(tab), frontend)

	if tab == navigation.TabProfile {
		b.sendScreenWithActions(chatID, s)
		return
	}
	b.sendText(chatID, formatScreen(s))
}

func (b *BotApp) fail(chatID int64, op string, err error) {
	b.metrics.ErrorsTotal.Inc()
	log.WithError(err).WithField("chat", chatID).Errorf("%s failed", op)
	b.sendText(chatID, "❌ Something went wrong, please try again later")
}

// Отправка сообщений
func (b *BotApp) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *BotApp) sendTextWithTabs(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tabKeyboard()
	b.send(msg)
}

func (b *BotApp) sendScreenWithActions(chatID int64, s screens.Screen) {
	msg := tgbotapi.NewMessage(chatID, formatScreen(s))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = profileKeyboard(s)
	b.send(msg)
}

// send пробует Markdown, при ошибке отправляет без разметки
func (b *BotApp) send(msg tgbotapi.MessageConfig) {
	if _, err := b.sender.Send(msg); err != nil {
		log.WithError(err).Warn("send with markdown failed")

		msg.ParseMode = ""
		if _, err2 := b.sender.Send(msg); err2 != nil {
			b.metrics.ErrorsTotal.Inc()
			log.WithError(err2).Error("send without markdown failed")
		}
	}
}

func (b *BotApp) answerCallback(callbackID string, text string) {
	if _, err := b.sender.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.WithError(err).Warn("answer callback failed")
	}
}
