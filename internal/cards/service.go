// internal/cards/service.go
package cards

import "context"

// Service defines the interface for the card issuance service.
type Service interface {
	IssueCard(ctx context.Context, member *Member) (*IssueResult, error)
}
