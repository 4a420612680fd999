package applicants

import (
	"errors"
	"fmt"
)

// ErrDuplicateEmail is returned by repositories when the normalized email
// already belongs to another applicant.
var ErrDuplicateEmail = errors.New("an applicant with this email already exists")

// StoreError wraps any persistence failure other than a uniqueness conflict.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("applicant store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
