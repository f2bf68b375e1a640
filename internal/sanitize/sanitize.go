// Package sanitize validates and cleans untrusted lead-form input.
// Every function is pure: malformed input is the normal case and is
// reported as a rejection, never as a panic.
package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length limits.
const (
	MaxNameLen    = 100
	MaxPhoneLen   = 30
	MaxEmailLen   = 254
	MaxMessageLen = 2000
)

// LinkPlaceholder replaces anything that looks like a URL.
const LinkPlaceholder = "[ссылка удалена]"

var (
	reScript       = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	reHTMLTag      = regexp.MustCompile(`<[^>]+>`)
	reURL          = regexp.MustCompile(`(?i)https?://[^\s<>]+|www\.[^\s<>]+|\[?https?://[^\]]+\]?`)
	reDangerous    = regexp.MustCompile("(?i)[<>\"'`{}\\\\]|javascript:|data:|vbscript:")
	rePhoneAllowed = regexp.MustCompile(`^[\d+\s()\-]+$`)
	reEmailBasic   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	reControl      = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)
	reDigit        = regexp.MustCompile(`\d`)
)

// SanitizePlain cleans free-form text: script blocks and HTML tags are
// removed, URLs are replaced with LinkPlaceholder, denylisted characters
// and scheme prefixes are stripped, control characters are dropped, runs
// of whitespace collapse to single spaces and the result is truncated to
// maxLen runes. Pass order matters: each pass operates on the previous
// pass's output.
func SanitizePlain(s string, maxLen int) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	s = reScript.ReplaceAllString(s, "")
	s = reHTMLTag.ReplaceAllString(s, "")
	s = reURL.ReplaceAllString(s, LinkPlaceholder)
	s = reDangerous.ReplaceAllString(s, "")
	s = reControl.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) > maxLen {
		s = string([]rune(s)[:maxLen])
	}
	return strings.TrimSpace(s)
}

// ValidateName returns the cleaned name or a rejection reason.
func ValidateName(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if utf8.RuneCountInString(s) < 2 {
		return "", &ValidationError{Reason: "Имя слишком короткое"}
	}
	cleaned := SanitizePlain(s, MaxNameLen)
	if utf8.RuneCountInString(cleaned) < 2 {
		return "", &ValidationError{Reason: "Укажите корректное имя"}
	}
	return cleaned, nil
}

// ValidatePhone accepts digits, +, parentheses, whitespace and hyphens,
// with at least ten digits. The accepted value is the trimmed original:
// the character set is already constrained, so no further cleaning.
func ValidatePhone(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &ValidationError{Reason: "Укажите телефон"}
	}
	if utf8.RuneCountInString(s) > MaxPhoneLen {
		return "", &ValidationError{Reason: "Телефон слишком длинный"}
	}
	if !rePhoneAllowed.MatchString(s) {
		return "", &ValidationError{Reason: "Телефон может содержать только цифры, +, скобки и дефис"}
	}
	if len(reDigit.FindAllString(s, -1)) < 10 {
		return "", &ValidationError{Reason: "Слишком мало цифр в номере"}
	}
	return s, nil
}

// ValidateEmail accepts an empty value (the field is optional) and
// otherwise requires a basic local@domain.tld shape.
func ValidateEmail(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	if utf8.RuneCountInString(s) > MaxEmailLen {
		return "", &ValidationError{Reason: "Email слишком длинный"}
	}
	if strings.ContainsAny(s, "<> \n") {
		return "", &ValidationError{Reason: "Некорректный email"}
	}
	if !reEmailBasic.MatchString(s) {
		return "", &ValidationError{Reason: "Некорректный формат email"}
	}
	return s, nil
}

// ValidateMessage accepts an empty value and sanitizes everything else.
// A non-empty message is never rejected, only cleaned.
func ValidateMessage(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	return SanitizePlain(s, MaxMessageLen), nil
}
