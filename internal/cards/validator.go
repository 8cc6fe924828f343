// internal/cards/validator.go
package cards

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidMember reports a member record that fails pre-issuance checks.
// It is always fatal to the issuance run.
var ErrInvalidMember = errors.New("invalid member")

// Validator checks a member record before a card is issued.
type Validator interface {
	Validate(member *Member) error
}

type memberValidator struct{}

// NewValidator creates the standard member validator.
func NewValidator() Validator {
	return memberValidator{}
}

// Validate checks name, email and category, in that order. The first failing
// field aborts the check.
func (memberValidator) Validate(member *Member) error {
	if utf8.RuneCountInString(strings.TrimSpace(member.Name)) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidMember)
	}
	email := strings.TrimSpace(member.Email)
	if !strings.Contains(email, "@") || utf8.RuneCountInString(email) < 5 {
		return fmt.Errorf("%w: malformed email %q", ErrInvalidMember, member.Email)
	}
	if !member.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidMember, member.Category)
	}
	return nil
}
