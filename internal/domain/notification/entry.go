// internal/domain/notification/entry.go
package notification

import (
	"database/sql"
	"time"
)

// Entry records one attempt to deliver a message to the chat.
// Corresponds to the 'notification_log' table.
type Entry struct {
	ID        int64
	Kind      Kind
	ChatID    string
	Message   string
	Delivered bool
	Error     sql.NullString // Delivery failure text, if any
	CreatedAt time.Time
}
