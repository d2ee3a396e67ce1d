package app

// ErrorDeduper remembers the text of the last error alert so the same failure
// is not reported to the chat on every retry. A successful cycle does not reset it.
type ErrorDeduper struct {
	lastError string
	seen      bool
}

func NewErrorDeduper() *ErrorDeduper {
	return &ErrorDeduper{}
}

// ShouldNotify reports whether errorText differs from the last recorded error.
func (d *ErrorDeduper) ShouldNotify(errorText string) bool {
	return !d.seen || errorText != d.lastError
}

// Record marks errorText as the last reported error.
func (d *ErrorDeduper) Record(errorText string) {
	d.lastError = errorText
	d.seen = true
}
