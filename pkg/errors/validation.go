package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// Limits accepted from user input.
const (
	MaxCharacterID = 100000
	MaxPage        = 1000
)

// ParseCharacterID parses and validates a character id given as text,
// as it arrives from a CLI argument or URL path segment.
func ParseCharacterID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidCharacter, "character id cannot be empty")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, New(ErrCodeInvalidCharacter, "character id must be a number: %q", s)
	}
	return id, ValidateCharacterID(id)
}

// ValidateCharacterID rejects ids SWAPI can never serve.
func ValidateCharacterID(id int) error {
	if id < 1 {
		return New(ErrCodeInvalidCharacter, "character id must be positive, got %d", id)
	}
	if id > MaxCharacterID {
		return New(ErrCodeInvalidCharacter, "character id too large (max %d)", MaxCharacterID)
	}
	return nil
}

// ValidatePage validates a 1-based page number of a paginated collection.
func ValidatePage(page int) error {
	if page < 1 {
		return New(ErrCodeInvalidPage, "page must be at least 1, got %d", page)
	}
	if page > MaxPage {
		return New(ErrCodeInvalidPage, "page too large (max %d)", MaxPage)
	}
	return nil
}

// ValidateURL rejects empty URLs, URLs containing whitespace or control
// characters, and URLs whose scheme is not one of schemes. With no schemes
// given, http and https are accepted.
func ValidateURL(rawURL string, schemes ...string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if strings.ContainsFunc(rawURL, func(r rune) bool { return unicode.IsControl(r) || unicode.IsSpace(r) }) {
		return New(ErrCodeInvalidInput, "URL contains invalid characters")
	}

	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	for _, s := range schemes {
		if strings.HasPrefix(rawURL, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "URL must use one of the schemes %s", strings.Join(schemes, ", "))
}

// ValidateFormat checks that format is one of the supported output formats.
func ValidateFormat(format string, supported []string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", format, strings.Join(supported, ", "))
}
