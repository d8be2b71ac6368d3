package driven

import (
	"context"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// UserReader looks users up.
type UserReader interface {
	// GetByID returns domain.ErrNotFound when no user has the id.
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

// UserWriter changes stored users.
type UserWriter interface {
	Create(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id int) error
}

// UserLister enumerates stored users ordered by id.
type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

// UserNotifier sends account emails.
type UserNotifier interface {
	SendPasswordResetEmail(ctx context.Context, user domain.User) error
}

// UserReporting renders periodic user reports.
type UserReporting interface {
	// GenerateMonthlyReport returns the rendered report as a single byte
	// sequence.
	GenerateMonthlyReport(ctx context.Context, month, year int) ([]byte, error)
}
