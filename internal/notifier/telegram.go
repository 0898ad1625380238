// Package notifier delivers the daily selection to a Telegram chat.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vodeneev/autobet/internal/pkg/models"
)

// Min interval between any two Telegram messages to the same chat to avoid
// 429 Too Many Requests (~30/min limit).
const telegramSendInterval = 2 * time.Second

// TelegramNotifier sends daily pick messages to a Telegram chat. All
// methods are safe on a nil receiver: an unconfigured notifier logs the
// message instead of sending it.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64

	mu       sync.Mutex
	lastSend time.Time
}

// NewTelegramNotifier creates a new Telegram notifier. Returns nil when
// the token is empty or the bot cannot be reached.
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	if token == "" {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		slog.Error("Failed to get bot info", "error", err)
		return nil
	}

	slog.Info("Telegram notifier initialized", "chat_id", chatID)
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

// SendSelection renders and delivers the daily selection.
func (n *TelegramNotifier) SendSelection(ctx context.Context, sel models.Selection) error {
	text := FormatMessage(sel)
	if n == nil {
		slog.Info("Telegram not configured, skipping send", "message", text)
		return nil
	}
	return n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if wait := telegramSendInterval - time.Since(n.lastSend); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	n.lastSend = time.Now()

	return nil
}
