package applicants

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	byEmail map[string]struct{}
	ordered []Applicant
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byEmail: make(map[string]struct{})}
}

// Create stores the applicant unless its email is already taken.
func (r *MemoryRepo) Create(ctx context.Context, applicant Applicant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strings.ToLower(applicant.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[key]; exists {
		return ErrDuplicateEmail
	}
	r.byEmail[key] = struct{}{}
	r.ordered = append(r.ordered, applicant)
	return nil
}

// List returns a copy of all applicants in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Applicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Applicant, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
