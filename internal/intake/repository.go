package intake

import (
	"context"
	"sync"
)

// Collections the pipeline writes to. Insert-only: nothing in this service
// reads them back.
const (
	CollectionLeads        = "leads"
	CollectionDealRequests = "deal_requests"
)

// Repository defines insert-only access to a named submission collection.
type Repository interface {
	Insert(ctx context.Context, collection string, sub *Submission) error
}

// InMemoryRepository is a stub implementation of Repository using in-memory
// storage, used in tests and local development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]*Submission
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string][]*Submission),
	}
}

// Insert appends the submission to the named collection.
func (r *InMemoryRepository) Insert(ctx context.Context, collection string, sub *Submission) error {
	copied := *sub
	r.mu.Lock()
	r.records[collection] = append(r.records[collection], &copied)
	r.mu.Unlock()
	return nil
}

// Records returns the submissions stored in a collection.
func (r *InMemoryRepository) Records(collection string) []*Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Submission, len(r.records[collection]))
	copy(out, r.records[collection])
	return out
}

// DisabledRepository reports a configuration error on every insert. The
// service boots with it when DATABASE_URL is absent, so the missing
// credential is surfaced loudly on each persistence attempt instead of being
// skipped silently.
type DisabledRepository struct{}

// NewDisabledRepository creates a repository that always fails with ErrNoDatabase.
func NewDisabledRepository() DisabledRepository {
	return DisabledRepository{}
}

// Insert always returns ErrNoDatabase.
func (DisabledRepository) Insert(ctx context.Context, collection string, sub *Submission) error {
	return ErrNoDatabase
}
