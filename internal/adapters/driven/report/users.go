// Package report renders user reports.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Ensure UserReportService implements the interface.
var _ driven.UserReporting = (*UserReportService)(nil)

// UserReportService builds monthly user reports as CSV.
type UserReportService struct {
	users driven.UserLister
}

// NewUserReportService creates a report service over a user listing.
func NewUserReportService(users driven.UserLister) *UserReportService {
	return &UserReportService{users: users}
}

// GenerateMonthlyReport returns a CSV document with one row per user.
// The header is period,id,email; period is YYYY-MM. Users carry no
// timestamps, so the period only labels the rows and every month lists
// the same users.
func (s *UserReportService) GenerateMonthlyReport(ctx context.Context, month, year int) ([]byte, error) {
	if month < 1 || month > 12 {
		return nil, domain.NewValidationError("month", "must be between 1 and 12")
	}
	if year < 1 {
		return nil, domain.NewValidationError("year", "must be positive")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	period := fmt.Sprintf("%04d-%02d", year, month)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"period", "id", "email"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, u := range users {
		if err := w.Write([]string{period, strconv.Itoa(u.ID), u.Email}); err != nil {
			return nil, fmt.Errorf("write user %d: %w", u.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush report: %w", err)
	}

	return buf.Bytes(), nil
}
