package applicants

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"intern-portal/internal/shared/metrics"
	"intern-portal/internal/shared/validation"
)

const defaultStoreTimeout = 5 * time.Second

var tracer = otel.Tracer("intern-portal/applicants")

// Service contains registration and listing logic for applicants.
type Service struct {
	Repo    Repo
	Logger  *zap.Logger
	Timeout time.Duration

	now   func() time.Time
	newID func() string
}

// NewService constructs a Service. A non-positive timeout falls back to 5s.
func NewService(repo Repo, logger *zap.Logger, timeout time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &Service{
		Repo:    repo,
		Logger:  logger,
		Timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Register validates input and stores a new applicant. It returns
// validation.Errors with every failing field, ErrDuplicateEmail when the
// email is taken, or a *StoreError for any other persistence failure.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Applicant, error) {
	ctx, span := tracer.Start(ctx, "applicants.Register")
	defer span.End()

	if err := validation.Struct(in, registerMessages); err != nil {
		metrics.IncRegistration(metrics.ResultInvalid)
		span.SetStatus(codes.Error, "validation failed")
		return Applicant{}, err
	}

	applicant := Applicant{
		ID:               s.newID(),
		FullName:         in.FullName,
		Email:            NormalizeEmail(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Interest:         Interest(in.Interest),
		Resume:           strings.TrimSpace(in.Resume),
		WhyThisJob:       in.WhyThisJob,
		RegistrationDate: s.now(),
	}
	span.SetAttributes(attribute.String("applicant.id", applicant.ID))

	storeCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	started := time.Now()
	err := s.Repo.Create(storeCtx, applicant)
	metrics.ObserveStoreOp("insert", started)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			metrics.IncRegistration(metrics.ResultConflict)
			s.Logger.Info("applicant.duplicate_email", zap.String("applicant_id", applicant.ID))
			span.SetStatus(codes.Error, "duplicate email")
			return Applicant{}, ErrDuplicateEmail
		}
		metrics.IncRegistration(metrics.ResultError)
		s.Logger.Error("applicant.insert_failed", zap.String("applicant_id", applicant.ID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return Applicant{}, &StoreError{Op: "insert", Err: err}
	}

	metrics.IncRegistration(metrics.ResultCreated)
	s.Logger.Info("applicant.registered",
		zap.String("applicant_id", applicant.ID),
		zap.String("interest", string(applicant.Interest)),
	)
	return applicant, nil
}

// ListAll returns every applicant. An empty store yields an empty, non-nil slice.
func (s *Service) ListAll(ctx context.Context) ([]Applicant, error) {
	ctx, span := tracer.Start(ctx, "applicants.ListAll")
	defer span.End()

	storeCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	started := time.Now()
	list, err := s.Repo.List(storeCtx)
	metrics.ObserveStoreOp("list", started)
	if err != nil {
		s.Logger.Error("applicant.list_failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, &StoreError{Op: "list", Err: err}
	}
	if list == nil {
		list = []Applicant{}
	}
	span.SetAttributes(attribute.Int("applicants.count", len(list)))
	return list, nil
}

// NormalizeEmail case-folds an email address for storage and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
