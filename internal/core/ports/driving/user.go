package driving

import (
	"context"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// UserProfileReader serves read-only profile lookups.
type UserProfileReader interface {
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
}

// UserAdministration manages stored users.
type UserAdministration interface {
	CreateUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, userID int) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// PasswordResetService sends password reset emails.
type PasswordResetService interface {
	ResetPassword(ctx context.Context, userID int) error
}

// UserReportService renders user reports.
type UserReportService interface {
	MonthlyReport(ctx context.Context, month, year int) ([]byte, error)
}
