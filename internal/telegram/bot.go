package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"weekly-menu-planner/internal/app"
	"weekly-menu-planner/internal/catalog"
	"weekly-menu-planner/internal/config"
	"weekly-menu-planner/internal/grocery"
	"weekly-menu-planner/internal/metrics"
	"weekly-menu-planner/internal/planner"
	"weekly-menu-planner/internal/pricing"
)

// Bot wraps the Telegram API around the planning app. It is a rendering
// surface only; every decision is delegated to the planner.
type Bot struct {
	api *tgbotapi.BotAPI
	app *app.App
	cfg *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, a *app.App) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{api: bot, app: a, cfg: cfg}, nil
}

// HandleWebhook parses an incoming Telegram update and dispatches it.
func (b *Bot) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := false
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}
	if !isAllowed {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "/plan":
		b.handlePlanRequest(msg)
	case "/groceries":
		b.handleGroceriesRequest(msg)
	case "/redo":
		b.handleRedoRequest(msg, fields[1:])
	case "/health":
		b.handleHealthRequest(msg)
	default:
		b.reply(msg.Chat.ID, "Commands:\n/plan — regenerate the weekly menu\n/groceries — show the shopping list\n/redo <day> <meal> — new suggestions for one slot")
	}
}

func (b *Bot) handlePlanRequest(msg *tgbotapi.Message) {
	statusText := "🧑‍🍳 *Planning your week...*"
	replyMsg := tgbotapi.NewMessage(msg.Chat.ID, statusText)
	replyMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(replyMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	ctx := context.Background()

	current, err := b.app.CurrentPlan(ctx)
	if err != nil {
		b.editError(msg.Chat.ID, sentMsg.MessageID, "generating plan", err)
		return
	}
	state, err := b.app.RegenerateWeek(ctx, current.Settings)
	if err != nil {
		b.editError(msg.Chat.ID, sentMsg.MessageID, "generating plan", err)
		return
	}

	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, formatPlanMarkdown(state))
	edit.ParseMode = "Markdown"
	b.api.Send(edit)

	// Send the shopping list as a second message.
	listMsg := tgbotapi.NewMessage(msg.Chat.ID, formatGroceriesMarkdown(grocery.Aggregate(state)))
	listMsg.ParseMode = "Markdown"
	b.api.Send(listMsg)
}

func (b *Bot) handleGroceriesRequest(msg *tgbotapi.Message) {
	list, _, err := b.app.Groceries(context.Background())
	if err != nil {
		b.replyError(msg.Chat.ID, "building grocery list", err)
		return
	}
	b.replyMarkdown(msg.Chat.ID, formatGroceriesMarkdown(list))
}

func (b *Bot) handleRedoRequest(msg *tgbotapi.Message, args []string) {
	if len(args) != 2 {
		b.reply(msg.Chat.ID, "Usage: /redo <day> <meal>, e.g. /redo tuesday dinner")
		return
	}
	day, ok := planner.ParseDay(args[0])
	if !ok {
		b.reply(msg.Chat.ID, fmt.Sprintf("Unknown day %q", args[0]))
		return
	}
	mt, ok := planner.ParseMealType(args[1])
	if !ok {
		b.reply(msg.Chat.ID, fmt.Sprintf("Unknown meal %q", args[1]))
		return
	}

	slot, _, err := b.app.RegenerateSlot(context.Background(), day, mt)
	if err != nil {
		b.replyError(msg.Chat.ID, "regenerating slot", err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔄 *New suggestions for %s %s*\n\n", day, mt)
	for i, id := range slot.SuggestedMealIDs {
		r, ok := catalog.ByID(id)
		if !ok {
			continue
		}
		marker := "  "
		if i == 0 {
			marker = "👉"
		}
		fmt.Fprintf(&sb, "%s %s (%.2f/person)\n", marker, r.Name, pricing.CostPerPerson(r))
	}
	b.replyMarkdown(msg.Chat.ID, sb.String())
}

func (b *Bot) handleHealthRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.AdminTelegramID {
		b.replyMarkdown(msg.Chat.ID, "⛔ *Access Denied*: Admin only.")
		return
	}

	health := metrics.GetSysHealth(b.cfg.DataDir)

	var sb strings.Builder
	sb.WriteString("🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataDiskSize))
	b.replyMarkdown(msg.Chat.ID, sb.String())
}

func formatPlanMarkdown(state *planner.PlanState) string {
	var sb strings.Builder
	sb.WriteString("📅 *Weekly Menu*\n\n")
	for _, day := range planner.Days {
		sb.WriteString(fmt.Sprintf("*%s*\n", titleDay(day)))
		for _, mt := range catalog.MealTypes {
			slot, ok := state.Slots[planner.SlotKey(day, mt)]
			if !ok {
				continue
			}
			if r, ok := catalog.ByID(slot.SelectedMealID); ok {
				sb.WriteString(fmt.Sprintf("  %s: %s\n", mt, r.Name))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatGroceriesMarkdown(list grocery.List) string {
	var sb strings.Builder
	sb.WriteString("🛒 *Shopping List*\n")
	for _, g := range list.Groups {
		sb.WriteString(fmt.Sprintf("\n*%s* (%.2f)\n", g.Category, g.Subtotal))
		for _, l := range g.Lines {
			sb.WriteString(fmt.Sprintf("• %s — %.0f %s", l.Ingredient, l.Quantity, l.Unit))
			if l.Price > 0 {
				sb.WriteString(fmt.Sprintf(" (%.2f)", l.Price))
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\n*Total: %.2f*\n", list.Total))
	return sb.String()
}

func titleDay(day string) string {
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + day[1:]
}

func (b *Bot) reply(chatID int64, text string) {
	b.api.Send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) replyError(chatID int64, action string, err error) {
	log.Printf("Error %s: %v", action, err)
	safeErr := strings.ReplaceAll(err.Error(), "`", "'")
	b.replyMarkdown(chatID, fmt.Sprintf("❌ *Error %s:*\n```\n%v\n```", action, safeErr))
}

func (b *Bot) editError(chatID int64, messageID int, action string, err error) {
	log.Printf("Error %s: %v", action, err)
	safeErr := strings.ReplaceAll(err.Error(), "`", "'")
	edit := tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf("❌ *Error %s:*\n```\n%v\n```", action, safeErr))
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}
