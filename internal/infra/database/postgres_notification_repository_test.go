package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"homework_status_bot/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set TEST_DATABASE_URL to run against a real PostgreSQL instance.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	db, err := NewPostgresConnection(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func TestRecordAndList(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresNotificationRepository(db)
	ctx := context.Background()

	delivered := &notification.Entry{Kind: notification.KindStatusUpdate, ChatID: "42", Message: "ok", Delivered: true}
	failed := &notification.Entry{
		Kind:    notification.KindErrorAlert,
		ChatID:  "42",
		Message: "Сбой в работе программы",
		Error:   sql.NullString{String: "chat not found", Valid: true},
	}
	require.NoError(t, repo.Record(ctx, delivered))
	require.NoError(t, repo.Record(ctx, failed))
	assert.NotZero(t, delivered.ID)
	assert.False(t, delivered.CreatedAt.IsZero())

	entries, err := listRecent(ctx, db, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, failed.ID, entries[0].ID)
	assert.Equal(t, notification.KindErrorAlert, entries[0].Kind)
	assert.Equal(t, "chat not found", entries[0].Error.String)
	assert.True(t, entries[1].Delivered)
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := testDB(t)
	require.NoError(t, EnsureSchema(context.Background(), db))
}

// listRecent returns the newest entries first.
func listRecent(ctx context.Context, db *sql.DB, limit int) ([]*notification.Entry, error) {
	query := `SELECT id, kind, chat_id, message, delivered, error, created_at
               FROM notification_log ORDER BY id DESC LIMIT $1`
	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var entries []*notification.Entry
	for rows.Next() {
		e := &notification.Entry{}
		if err := rows.Scan(&e.ID, &e.Kind, &e.ChatID, &e.Message, &e.Delivered, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return entries, nil
}
