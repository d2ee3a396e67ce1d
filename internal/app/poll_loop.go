// internal/app/poll_loop.go
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// HomeworkFetcher requests homework status changes since a Unix timestamp.
type HomeworkFetcher interface {
	Fetch(ctx context.Context, fromDate int64) (any, error)
}

// Sleeper blocks between cycles. It returns an error only when ctx is done.
type Sleeper interface {
	Wait(ctx context.Context) error
}

// PollLoop polls the review API, turns status changes into chat messages and
// reports failures. All of its state is touched from a single goroutine.
type PollLoop struct {
	fetcher   HomeworkFetcher
	messenger domainTelegram.Client
	journal   notification.Repository // Optional
	sleeper   Sleeper
	chatID    string
	cursor    int64
	deduper   *ErrorDeduper
	now       func() time.Time
	logger    *logrus.Entry
}

// NewPollLoop creates a loop whose first poll starts at fromDate, or at the
// current time when fromDate is zero. journal may be nil.
func NewPollLoop(
	fetcher HomeworkFetcher,
	messenger domainTelegram.Client,
	journal notification.Repository,
	sleeper Sleeper,
	chatID string,
	fromDate int64,
	logger *logrus.Entry,
) *PollLoop {
	if fromDate <= 0 {
		fromDate = time.Now().Unix()
	}
	return &PollLoop{
		fetcher:   fetcher,
		messenger: messenger,
		journal:   journal,
		sleeper:   sleeper,
		chatID:    chatID,
		cursor:    fromDate,
		deduper:   NewErrorDeduper(),
		now:       time.Now,
		logger:    logger.WithField("component", "poll_loop"),
	}
}

// Cursor returns the lower bound of the next poll window.
func (p *PollLoop) Cursor() int64 {
	return p.cursor
}

// Run executes cycles until ctx is cancelled. Cancellation is observed only at
// the sleep between cycles; a started cycle always runs to completion.
func (p *PollLoop) Run(ctx context.Context) error {
	p.logger.WithField("from_date", p.cursor).Info("Poll loop started")
	cycleCtx := context.WithoutCancel(ctx)
	for {
		_ = p.RunCycle(cycleCtx)
		if err := p.sleeper.Wait(ctx); err != nil {
			p.logger.WithField("from_date", p.cursor).Info("Poll loop stopped")
			return err
		}
	}
}

// RunCycle performs one poll and dispatch. The returned error has already been
// logged and, unless it repeats the previous one, reported to the chat.
func (p *PollLoop) RunCycle(ctx context.Context) error {
	issuedAt := p.now().Unix()
	if err := p.poll(ctx); err != nil {
		p.handleError(ctx, err)
		return err
	}
	if issuedAt > p.cursor {
		p.cursor = issuedAt
	}
	return nil
}

func (p *PollLoop) poll(ctx context.Context) error {
	logCtx := p.logger.WithField("from_date", p.cursor)

	payload, err := p.fetcher.Fetch(ctx, p.cursor)
	if err != nil {
		return err
	}
	if isEmptyPayload(payload) {
		return homework.ErrEmptyResponse
	}

	logCtx.Debug("Validating API response")
	records, err := homework.Validate(payload)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		logCtx.Debug("Обновлений нет")
		return nil
	}

	logCtx.Debugf("Dispatching %d homework updates", len(records))
	for _, record := range records {
		message, err := homework.Render(record)
		if err != nil {
			return err
		}
		// Delivery failures are logged by deliver and do not stop the cycle.
		_ = p.deliver(ctx, notification.KindStatusUpdate, message)
	}
	return nil
}

func (p *PollLoop) handleError(ctx context.Context, err error) {
	kind := homework.KindOf(err)
	message := fmt.Sprintf("Сбой в работе программы: %v, %s", err, kind)
	logCtx := p.logger.WithError(err).WithField("error_kind", kind)
	logCtx.Error(message)

	if errors.Is(err, context.Canceled) {
		return
	}

	text := err.Error()
	if !p.deduper.ShouldNotify(text) {
		logCtx.Debug("Same error was already reported, alert suppressed")
		return
	}
	p.deduper.Record(text)
	_ = p.deliver(ctx, notification.KindErrorAlert, message)
}

// deliver sends text to the chat and journals the attempt. Failures are logged
// and returned, never escalated.
func (p *PollLoop) deliver(ctx context.Context, kind notification.Kind, text string) error {
	logCtx := p.logger.WithField("kind", kind)
	entry := &notification.Entry{Kind: kind, ChatID: p.chatID, Message: text}

	err := p.messenger.SendMessage(ctx, p.chatID, text)
	if err != nil {
		logCtx.WithError(err).Error("Сбой при отправке сообщения в Telegram")
		entry.Error = sql.NullString{String: err.Error(), Valid: true}
	} else {
		logCtx.Infof("Отправлено сообщение %s", text)
		entry.Delivered = true
	}

	if p.journal != nil {
		if jErr := p.journal.Record(ctx, entry); jErr != nil {
			logCtx.WithError(jErr).Warn("Failed to journal notification")
		}
	}
	return err
}

// isEmptyPayload reports a decoded JSON value that carries nothing:
// null, false, zero, an empty string, object or array.
func isEmptyPayload(payload any) bool {
	switch v := payload.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
