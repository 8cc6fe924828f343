// internal/cards/repository.go
package cards

import (
	"context"
	"sync"
)

// Repository persists issued card records. Records are created once and never
// updated or deleted; no reads are part of the issuance workflow.
type Repository interface {
	Save(ctx context.Context, member *Member, fee float64, card []byte) error
}

// Record is the persisted triple for one issued card.
type Record struct {
	Member *Member
	Fee    float64
	Card   []byte
}

// MemoryRepository keeps records in an ordered in-process slice. It is the
// system of record for tests and the CLI driver. The append is the only
// shared mutation in the workflow, hence the mutex.
type MemoryRepository struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save appends the record.
func (r *MemoryRepository) Save(ctx context.Context, member *Member, fee float64, card []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Record{Member: member, Fee: fee, Card: card})
	return nil
}

// Records returns a copy of the stored records in insertion order.
func (r *MemoryRepository) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of stored records.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
