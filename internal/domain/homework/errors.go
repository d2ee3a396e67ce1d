// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the API answered successfully but with no usable result.
var ErrEmptyResponse = errors.New("сбой при запросе к эндпоинту: пустой ответ")

// FetchErrorKind classifies why a request to the review API did not produce a payload.
type FetchErrorKind string

const (
	FetchUnreachable   FetchErrorKind = "UNREACHABLE"
	FetchBadStatus     FetchErrorKind = "BAD_STATUS"
	FetchMalformedBody FetchErrorKind = "MALFORMED_BODY"
)

// FetchError is returned by the API client. Err holds the underlying cause, if any.
type FetchError struct {
	Kind       FetchErrorKind
	Endpoint   string
	StatusCode int // Set for FetchBadStatus only
	Err        error
}

// Error keeps the text independent of volatile transport details so repeated
// failures of the same kind produce identical messages.
func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchUnreachable:
		return fmt.Sprintf("эндпоинт %s недоступен", e.Endpoint)
	case FetchBadStatus:
		return fmt.Sprintf("эндпоинт %s недоступен. Код ответа API: %d", e.Endpoint, e.StatusCode)
	case FetchMalformedBody:
		return fmt.Sprintf("ответ эндпоинта %s не является корректным JSON", e.Endpoint)
	default:
		return fmt.Sprintf("сбой при запросе к эндпоинту %s", e.Endpoint)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationErrorKind classifies a payload or record that does not have the expected shape.
type ValidationErrorKind string

const (
	ValidationNotAMapping   ValidationErrorKind = "NOT_A_MAPPING"
	ValidationMissingKey    ValidationErrorKind = "MISSING_KEY"
	ValidationWrongType     ValidationErrorKind = "WRONG_TYPE"
	ValidationUnknownStatus ValidationErrorKind = "UNKNOWN_STATUS"
)

// ValidationError is returned by Validate and Render.
type ValidationError struct {
	Kind  ValidationErrorKind
	Key   string // Offending key for MissingKey and WrongType
	Value string // Offending status for UnknownStatus
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ValidationNotAMapping:
		return "в ответе API ожидается словарь"
	case ValidationMissingKey:
		return fmt.Sprintf("ключа '%s' нет в словаре", e.Key)
	case ValidationWrongType:
		return fmt.Sprintf("под ключом '%s' ожидается список", e.Key)
	case ValidationUnknownStatus:
		return fmt.Sprintf("статус домашней работы '%s' не соответствует ожидаемому", e.Value)
	default:
		return "ответ API не соответствует ожиданиям"
	}
}

// KindOf describes the class of err for operator-facing messages,
// e.g. "FetchError(BAD_STATUS)".
func KindOf(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fmt.Sprintf("FetchError(%s)", fetchErr.Kind)
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("ValidationError(%s)", validationErr.Kind)
	}
	if errors.Is(err, ErrEmptyResponse) {
		return "EmptyResponse"
	}
	return fmt.Sprintf("%T", err)
}
