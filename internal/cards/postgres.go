// internal/cards/postgres.go
package cards

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"libracard/pkg/eventstore"
)

// PostgresRepository is the external-database persistence variant: every
// issued card appends a CardIssued event to the event store and lands in the
// issued_cards read model.
type PostgresRepository struct {
	eventStore *eventstore.EventStore
	db         *sql.DB
}

// NewPostgresRepository creates a repository backed by the event store and
// its read-model database.
func NewPostgresRepository(es *eventstore.EventStore, db *sql.DB) *PostgresRepository {
	return &PostgresRepository{eventStore: es, db: db}
}

// Save appends the CardIssued event and updates the read model. A fresh
// member aggregate always starts at version 0, so issuing twice for the same
// member ID is a concurrency conflict.
func (r *PostgresRepository) Save(ctx context.Context, member *Member, fee float64, card []byte) error {
	eventData := CardIssuedEvent{
		MemberID:     member.ID,
		Name:         member.Name,
		Email:        member.Email,
		Category:     member.Category,
		Fee:          fee,
		RegisteredOn: member.RegisteredOn,
	}

	jsonData, err := json.Marshal(eventData)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	event := eventstore.Event{
		AggregateID:   member.ID,
		AggregateType: "card",
		EventType:     "CardIssued",
		EventData:     jsonData,
		Version:       1,
	}

	if err := r.eventStore.AppendEvents(ctx, member.ID, "card", 0, []eventstore.Event{event}); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	if err := r.insertIntoReadModel(ctx, member, fee, card); err != nil {
		return fmt.Errorf("failed to update read model: %w", err)
	}

	return nil
}

func (r *PostgresRepository) insertIntoReadModel(ctx context.Context, member *Member, fee float64, card []byte) error {
	query := `
		INSERT INTO issued_cards (member_id, name, email, category, fee, card, registered_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query, member.ID, member.Name, member.Email, string(member.Category), fee, card, member.RegisteredOn)
	return err
}
