package admin

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"intern-portal/internal/shared/metrics"
	"intern-portal/internal/shared/validation"
)

// ErrInvalidCredentials means the username/password pair did not match.
// It never says which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

var tracer = otel.Tracer("intern-portal/admin")

// LoginInput is the admin login request body.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = validation.Messages{
	"username": "Username is required",
	"password": "Password is required",
}

// Service checks admin credentials against the configured pair. It issues
// no token or session.
type Service struct {
	Username string
	Password string
	Logger   *zap.Logger
}

// NewService constructs a Service.
func NewService(username, password string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Username: username, Password: password, Logger: logger}
}

// Configured reports whether both credentials are set.
func (s *Service) Configured() bool {
	return s.Username != "" && s.Password != ""
}

// CheckCredentials returns validation.Errors when a field is missing,
// ErrInvalidCredentials on mismatch and nil on success.
func (s *Service) CheckCredentials(ctx context.Context, in LoginInput) error {
	_, span := tracer.Start(ctx, "admin.CheckCredentials")
	defer span.End()

	if err := validation.Struct(in, loginMessages); err != nil {
		metrics.IncAdminLogin(metrics.ResultInvalid)
		span.SetStatus(codes.Error, "validation failed")
		return err
	}

	// Plain equality against the configured values; nothing is hashed.
	if !s.Configured() || in.Username != s.Username || in.Password != s.Password {
		metrics.IncAdminLogin(metrics.ResultDenied)
		s.Logger.Warn("admin.login_denied")
		span.SetStatus(codes.Error, "denied")
		return ErrInvalidCredentials
	}

	metrics.IncAdminLogin(metrics.ResultSuccess)
	s.Logger.Info("admin.login_succeeded")
	return nil
}
