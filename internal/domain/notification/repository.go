// internal/domain/notification/repository.go
package notification

import "context"

// Repository stores the delivery journal.
type Repository interface {
	Record(ctx context.Context, entry *Entry) error
}
