// internal/domain/homework/status.go
package homework

import "fmt"

// Status is a review status code reported by the API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Record keys the API uses for a single homework entry.
const (
	KeyHomeworks    = "homeworks"
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
)

// verdicts is the fixed set of known statuses and their human-readable verdicts.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the verdict sentence for a known status.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Render builds the notification text for one homework record.
func Render(record any) (string, error) {
	fields, ok := record.(map[string]any)
	if !ok {
		return "", &ValidationError{Kind: ValidationNotAMapping}
	}

	name, ok := fields[KeyHomeworkName]
	if !ok {
		return "", &ValidationError{Kind: ValidationMissingKey, Key: KeyHomeworkName}
	}
	rawStatus, ok := fields[KeyStatus]
	if !ok {
		return "", &ValidationError{Kind: ValidationMissingKey, Key: KeyStatus}
	}

	status, _ := rawStatus.(string)
	verdict, known := Verdict(Status(status))
	if !known {
		return "", &ValidationError{Kind: ValidationUnknownStatus, Value: fmt.Sprint(rawStatus)}
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%v\". %s", name, verdict), nil
}
