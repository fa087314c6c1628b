package domain

import (
	"fmt"
	"strings"
)

// validationf wraps ErrValidation with a rule-specific message.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// requireText returns a validation error naming the first blank field.
// Fields are given as name/value pairs.
func requireText(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return validationf("%s is required", pairs[i])
		}
	}
	return nil
}
