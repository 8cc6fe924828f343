// internal/cards/validator_test.go
package cards

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validMember() *Member {
	return &Member{
		ID:           uuid.New(),
		Name:         "Ana Torres",
		Email:        "ana@uni.edu",
		Category:     CategoryStudentUndergrad,
		RegisteredOn: time.Now().UTC(),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Member)
		valid  bool
	}{
		{"valid member", func(m *Member) {}, true},
		{"empty name", func(m *Member) { m.Name = "" }, false},
		{"one character name", func(m *Member) { m.Name = "X" }, false},
		{"whitespace only name", func(m *Member) { m.Name = "   " }, false},
		{"name padded to length two", func(m *Member) { m.Name = " Al " }, true},
		{"email without at sign", func(m *Member) { m.Email = "ana.uni.edu" }, false},
		{"email too short", func(m *Member) { m.Email = "a@b" }, false},
		{"email at minimum length", func(m *Member) { m.Email = "a@bcd" }, true},
		{"email below minimum after trimming", func(m *Member) { m.Email = "  a@bc  " }, false},
		{"email padded with whitespace", func(m *Member) { m.Email = "  a@bcd  " }, true},
		{"unknown category", func(m *Member) { m.Category = "alumni" }, false},
		{"empty category", func(m *Member) { m.Category = "" }, false},
	}

	v := NewValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := validMember()
			tc.mutate(m)
			err := v.Validate(m)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidMember)
			}
		})
	}
}

func TestValidateChecksNameBeforeEmail(t *testing.T) {
	m := validMember()
	m.Name = "X"
	m.Email = "bad"

	err := NewValidator().Validate(m)
	require.ErrorIs(t, err, ErrInvalidMember)
	assert.Contains(t, err.Error(), "name")
	assert.NotContains(t, err.Error(), "email")
}

func TestValidateRejectsShortNames(t *testing.T) {
	v := NewValidator()
	rapid.Check(t, func(t *rapid.T) {
		core := rapid.StringMatching(`[A-Za-z]?`).Draw(t, "core")
		left := rapid.StringMatching(`[ \t]{0,4}`).Draw(t, "left")
		right := rapid.StringMatching(`[ \t]{0,4}`).Draw(t, "right")

		m := validMember()
		m.Name = left + core + right
		require.ErrorIs(t, v.Validate(m), ErrInvalidMember)
	})
}

func TestValidateRejectsEmailsWithoutAtSign(t *testing.T) {
	v := NewValidator()
	rapid.Check(t, func(t *rapid.T) {
		m := validMember()
		m.Email = rapid.StringMatching(`[A-Za-z0-9.]{0,20}`).Draw(t, "email")
		require.ErrorIs(t, v.Validate(m), ErrInvalidMember)
	})
}
