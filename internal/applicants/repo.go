package applicants

import "context"

// Repo defines persistence operations for applicants. Implementations must
// enforce email uniqueness themselves and report violations as ErrDuplicateEmail.
type Repo interface {
	Create(ctx context.Context, applicant Applicant) error
	List(ctx context.Context) ([]Applicant, error)
}
