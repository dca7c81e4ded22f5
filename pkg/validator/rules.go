package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Translation keys used by the built-in rules.
const (
	KeyRequired  = "validation.required"
	KeyEmail     = "validation.email"
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"
)

// emailPattern is intentionally loose: something@something.tld with no
// whitespace and a single @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule is a single check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates rules in order and returns ValidationErrors for every
// failing rule, or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check == nil || r.Check() {
			continue
		}
		errs = append(errs, r.Error)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Label turns a field name into its display form ("name" -> "Name").
func Label(field string) string {
	return cases.Title(language.English).String(field)
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           Label(field) + " is required",
			TranslationKey:    KeyRequired,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// Email fails when a non-blank value is not an email address.
// Blank values pass; pair with RequiredString to reject them.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			return v == "" || IsEmail(v)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "Please enter a valid email address",
			TranslationKey:    KeyEmail,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLenString fails when value has fewer than minLen runes.
func MinLenString(field, value string, minLen int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= minLen },
		Error: ValidationError{
			Field:             field,
			Message:           Label(field) + " is too short",
			TranslationKey:    KeyMinLength,
			TranslationValues: map[string]any{"field": field, "min": minLen},
		},
	}
}

// MaxLenString fails when value has more than maxLen runes.
func MaxLenString(field, value string, maxLen int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= maxLen },
		Error: ValidationError{
			Field:             field,
			Message:           Label(field) + " is too long",
			TranslationKey:    KeyMaxLength,
			TranslationValues: map[string]any{"field": field, "max": maxLen},
		},
	}
}
