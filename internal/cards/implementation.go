// internal/cards/implementation.go
package cards

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// service implements the Service interface.
type service struct {
	validator   Validator
	renderer    Renderer
	repo        Repository
	notifier    Notifier
	printer     Printer
	rateLimiter *rate.Limiter
}

// NewService creates a new card issuance service instance.
func NewService(validator Validator, renderer Renderer, repo Repository, notifier Notifier, printer Printer) Service {
	return &service{
		validator:   validator,
		renderer:    renderer,
		repo:        repo,
		notifier:    notifier,
		printer:     printer,
		rateLimiter: rate.NewLimiter(rate.Every(1*time.Minute), 30), // 30 issuances per minute
	}
}

// IssueCard runs the issuance pipeline for one member:
// validate, compute fee, render, persist, notify, print.
//
// Validation, fee computation, rendering and persistence abort the run on
// failure; nothing is stored when an early stage fails. Notification and
// printing are best-effort: their failures are logged and the card still
// counts as issued.
func (s *service) IssueCard(ctx context.Context, member *Member) (*IssueResult, error) {
	if !s.rateLimiter.Allow() {
		return nil, fmt.Errorf("rate limit exceeded")
	}

	if err := s.validator.Validate(member); err != nil {
		return nil, err
	}

	fee, err := FeeFor(member.Category)
	if err != nil {
		return nil, err
	}

	card, err := s.renderer.Render(member, fee)
	if err != nil {
		return nil, fmt.Errorf("failed to render card: %w", err)
	}

	if err := s.repo.Save(ctx, member, fee, card); err != nil {
		return nil, fmt.Errorf("failed to save card record: %w", err)
	}

	subject := "Your library card is ready"
	body := fmt.Sprintf("Dear %s,\nYour library card is ready.\nFee: S/ %.2f\nID: %s\n", member.Name, fee, member.ID)
	if err := s.notifier.Send(ctx, member.Email, subject, body, card); err != nil {
		log.Printf("Failed to notify member %s: %v", member.ID, err)
	}

	if err := s.printer.Print(card); err != nil {
		log.Printf("Failed to print card for member %s: %v", member.ID, err)
	}

	return &IssueResult{MemberID: member.ID, Fee: fee}, nil
}
