package applicants

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new applicant. The unique index on email turns a
// concurrent duplicate into ErrDuplicateEmail.
func (r *PGRepo) Create(ctx context.Context, applicant Applicant) error {
	const query = `
INSERT INTO applicants (
    id,
    full_name,
    email,
    phone,
    interest,
    resume,
    why_this_job,
    registration_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		applicant.ID,
		applicant.FullName,
		applicant.Email,
		applicant.Phone,
		string(applicant.Interest),
		applicant.Resume,
		nullableString(applicant.WhyThisJob),
		applicant.RegistrationDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// List returns every applicant in registration order.
func (r *PGRepo) List(ctx context.Context) ([]Applicant, error) {
	const query = `
SELECT id, full_name, email, phone, interest, resume, why_this_job, registration_date
FROM applicants
ORDER BY registration_date, id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Applicant{}
	for rows.Next() {
		var applicant Applicant
		var interest string
		var whyThisJob sql.NullString
		if err := rows.Scan(
			&applicant.ID,
			&applicant.FullName,
			&applicant.Email,
			&applicant.Phone,
			&interest,
			&applicant.Resume,
			&whyThisJob,
			&applicant.RegistrationDate,
		); err != nil {
			return nil, err
		}
		applicant.Interest = Interest(interest)
		if whyThisJob.Valid {
			applicant.WhyThisJob = whyThisJob.String
		}
		out = append(out, applicant)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
