package telegram

import "context"

// Client delivers text messages to a Telegram chat.
// This keeps the poll loop independent of the specific bot library.
type Client interface {
	// SendMessage delivers text to chatID, which is either a numeric chat id
	// or a public channel username such as "@channel".
	SendMessage(ctx context.Context, chatID string, text string) error
}
