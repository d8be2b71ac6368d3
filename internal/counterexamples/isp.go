package counterexamples

import (
	"fmt"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// FatUserService mixes storage, email and reporting in one interface.
//
// Counter-example (ISP): a client that only reads profiles still depends on
// email and reporting, and a test double must stub all six methods.
type FatUserService interface {
	GetByID(id int) domain.User
	Create(user domain.User)
	Update(user domain.User)
	Delete(id int)

	SendPasswordResetEmail(user domain.User)
	GenerateMonthlyReport(month, year int) []byte
}

// Ensure UserService implements the fat interface.
var _ FatUserService = (*UserService)(nil)

// UserService is forced to implement everything.
type UserService struct {
	out io.Writer
}

// NewUserService creates the fat service writing to out.
func NewUserService(out io.Writer) *UserService {
	return &UserService{out: out}
}

// GetByID returns a placeholder user.
func (s *UserService) GetByID(id int) domain.User {
	return domain.User{ID: id, Email: "user@email.com"}
}

// Create does nothing.
func (s *UserService) Create(domain.User) {}

// Update does nothing.
func (s *UserService) Update(domain.User) {}

// Delete does nothing.
func (s *UserService) Delete(int) {}

// SendPasswordResetEmail prints a line.
func (s *UserService) SendPasswordResetEmail(user domain.User) {
	fmt.Fprintf(s.out, "Sending password reset email to %s\n", user.Email)
}

// GenerateMonthlyReport returns an empty report.
// The report is a single byte sequence here; a report split into one
// sequence per row would not even match the declared return type.
func (s *UserService) GenerateMonthlyReport(int, int) []byte {
	return []byte{}
}

// FatUserProfileReader only reads, but depends on the whole service.
type FatUserProfileReader struct {
	users FatUserService
}

// NewFatUserProfileReader creates the reader.
func NewFatUserProfileReader(users FatUserService) *FatUserProfileReader {
	return &FatUserProfileReader{users: users}
}

// GetProfile returns the user.
func (r *FatUserProfileReader) GetProfile(userID int) domain.User {
	return r.users.GetByID(userID)
}
