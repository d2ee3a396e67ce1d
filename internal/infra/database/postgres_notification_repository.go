// internal/infra/database/postgres_notification_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_status_bot/internal/domain/notification"
)

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Record(ctx context.Context, entry *notification.Entry) error {
	query := `INSERT INTO notification_log (kind, chat_id, message, delivered, error)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, entry.Kind, entry.ChatID, entry.Message, entry.Delivered, entry.Error).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording notification: %w", err)
	}
	return nil
}
