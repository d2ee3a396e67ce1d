// internal/domain/homework/validator.go
package homework

// Validate checks that a decoded API payload has the expected top-level shape
// and returns the homework entries unmodified. An empty slice means no updates.
func Validate(payload any) ([]any, error) {
	response, ok := payload.(map[string]any)
	if !ok {
		return nil, &ValidationError{Kind: ValidationNotAMapping}
	}

	raw, ok := response[KeyHomeworks]
	if !ok {
		return nil, &ValidationError{Kind: ValidationMissingKey, Key: KeyHomeworks}
	}

	homeworks, ok := raw.([]any)
	if !ok {
		return nil, &ValidationError{Kind: ValidationWrongType, Key: KeyHomeworks}
	}
	return homeworks, nil
}
