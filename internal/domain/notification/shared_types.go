// internal/domain/notification/shared_types.go
package notification

// Kind tells status updates apart from error alerts.
type Kind string

const (
	KindStatusUpdate Kind = "STATUS_UPDATE"
	KindErrorAlert   Kind = "ERROR_ALERT"
)
