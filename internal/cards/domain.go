// internal/cards/domain.go
package cards

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a member for fee purposes.
type Category string

const (
	CategoryStudentUndergrad Category = "student_undergrad"
	CategoryStudentGrad      Category = "student_grad"
	CategoryFaculty          Category = "faculty"
	CategoryStaff            Category = "staff"
	CategoryExternal         Category = "external"
)

// Valid reports whether c is one of the five recognized categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStudentUndergrad, CategoryStudentGrad, CategoryFaculty, CategoryStaff, CategoryExternal:
		return true
	}
	return false
}

// Member represents a person registered for library service.
type Member struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Category     Category  `json:"category"`
	RegisteredOn time.Time `json:"registered_on"`
}

// NewMember creates a member with a fresh ID, registered today. Members are
// not modified after creation within an issuance run.
func NewMember(name, email string, category Category) *Member {
	return &Member{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Category:     category,
		RegisteredOn: time.Now().UTC().Truncate(24 * time.Hour),
	}
}

// IssueResult is returned to the caller when a card has been issued.
type IssueResult struct {
	MemberID uuid.UUID `json:"member_id"`
	Fee      float64   `json:"fee"`
}

// CardIssuedEvent is recorded when a member's card is persisted.
type CardIssuedEvent struct {
	MemberID     uuid.UUID `json:"member_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Category     Category  `json:"category"`
	Fee          float64   `json:"fee"`
	RegisteredOn time.Time `json:"registered_on"`
}
