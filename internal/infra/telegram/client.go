// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// ErrDelivery wraps every failure to hand a message over to Telegram.
var ErrDelivery = errors.New("сбой при отправке сообщения в Telegram")

// chatRecipient lets telebot address a chat by its raw id or @username.
type chatRecipient string

func (c chatRecipient) Recipient() string { return string(c) }

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot     *telebot.Bot
	limiter *rate.Limiter
}

// NewTelebotAdapter wraps b. perSecond caps how many messages are sent per
// second; zero or less disables throttling.
func NewTelebotAdapter(b *telebot.Bot, perSecond float64) *TelebotAdapter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &TelebotAdapter{bot: b, limiter: rate.NewLimiter(limit, 1)}
}

// SendMessage sends a plain text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(ctx context.Context, chatID string, text string) error {
	if err := tba.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	if _, err := tba.bot.Send(chatRecipient(chatID), text, &telebot.SendOptions{ParseMode: telebot.ModeDefault}); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	return nil
}
