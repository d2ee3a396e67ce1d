package telegram

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// NewSendOnlyBot creates a bot that is never polled. It makes no network call,
// so a Telegram outage at startup does not stop the process.
func NewSendOnlyBot(token string, logger *logrus.Entry) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		Token:   token,
		Offline: true,
		OnError: func(err error, c telebot.Context) {
			logger.WithError(err).Error("Telebot error")
		},
	})
}
