package potluck

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/potluckhq/potluck/internal/shared/constants"
)

func normalizeName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	if utf8.RuneCountInString(name) > constants.MaxNameLength {
		return "", fmt.Errorf("%s exceeds maximum length of %d characters", field, constants.MaxNameLength)
	}
	return name, nil
}

func normalizeText(field, text string, max int) (string, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > max {
		return "", fmt.Errorf("%s exceeds maximum length of %d characters", field, max)
	}
	return text, nil
}
