package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
	"github.com/custodia-labs/solidkit/internal/logger"
)

// Ensure the user services implement their interfaces.
var (
	_ driving.UserProfileReader    = (*UserProfileReader)(nil)
	_ driving.UserAdministration   = (*UserAdministration)(nil)
	_ driving.PasswordResetService = (*PasswordResetService)(nil)
	_ driving.UserReportService    = (*UserReportService)(nil)
)

// UserProfileReader depends only on reading users.
type UserProfileReader struct {
	reader driven.UserReader
}

// NewUserProfileReader creates a new profile reader.
func NewUserProfileReader(reader driven.UserReader) *UserProfileReader {
	return &UserProfileReader{reader: reader}
}

// GetProfile returns the user with the given id.
func (r *UserProfileReader) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := r.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	return user, nil
}

// UserAdministration manages users through the writer and lister roles.
type UserAdministration struct {
	writer driven.UserWriter
	lister driven.UserLister
	log    logger.Logger
}

// NewUserAdministration creates a new user administration service.
func NewUserAdministration(writer driven.UserWriter, lister driven.UserLister) *UserAdministration {
	return &UserAdministration{
		writer: writer,
		lister: lister,
		log:    logger.With("users"),
	}
}

// CreateUser stores a new user.
func (a *UserAdministration) CreateUser(ctx context.Context, user domain.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	a.log.Debug("creating user %d", user.ID)
	if err := a.writer.Create(ctx, user); err != nil {
		return fmt.Errorf("create user %d: %w", user.ID, err)
	}
	return nil
}

// UpdateUser replaces a stored user.
func (a *UserAdministration) UpdateUser(ctx context.Context, user domain.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	a.log.Debug("updating user %d", user.ID)
	if err := a.writer.Update(ctx, user); err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return nil
}

// DeleteUser removes a user.
func (a *UserAdministration) DeleteUser(ctx context.Context, userID int) error {
	a.log.Debug("deleting user %d", userID)
	if err := a.writer.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	return nil
}

// ListUsers returns every stored user.
func (a *UserAdministration) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := a.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func validateUser(user domain.User) error {
	if user.ID <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if !strings.Contains(user.Email, "@") {
		return domain.NewValidationError("email", "must be an email address")
	}
	return nil
}

// PasswordResetService looks a user up and emails a reset link.
type PasswordResetService struct {
	reader   driven.UserReader
	notifier driven.UserNotifier
}

// NewPasswordResetService creates a new password reset service.
func NewPasswordResetService(reader driven.UserReader, notifier driven.UserNotifier) *PasswordResetService {
	return &PasswordResetService{reader: reader, notifier: notifier}
}

// ResetPassword emails the user identified by userID.
func (s *PasswordResetService) ResetPassword(ctx context.Context, userID int) error {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("reset password for %d: %w", userID, err)
	}
	if err := s.notifier.SendPasswordResetEmail(ctx, *user); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

// UserReportService delegates to the reporting role.
type UserReportService struct {
	reporting driven.UserReporting
}

// NewUserReportService creates a new report service.
func NewUserReportService(reporting driven.UserReporting) *UserReportService {
	return &UserReportService{reporting: reporting}
}

// MonthlyReport renders the report for month/year.
func (s *UserReportService) MonthlyReport(ctx context.Context, month, year int) ([]byte, error) {
	data, err := s.reporting.GenerateMonthlyReport(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("monthly report %04d-%02d: %w", year, month, err)
	}
	return data, nil
}
