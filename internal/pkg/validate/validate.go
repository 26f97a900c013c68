package validate

import (
	"strings"

	"github.com/google/uuid"
)

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// UUID parses a non-nil uuid from user input.
func UUID(raw string) (uuid.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if !Required(raw) {
		return uuid.Nil, false
	}
	value, err := uuid.Parse(raw)
	if err != nil || value == uuid.Nil {
		return uuid.Nil, false
	}
	return value, true
}
