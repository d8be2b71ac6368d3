// Package notify provides simulated email notifiers.
// Nothing is sent; each notification is written to an io.Writer.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Ensure the notifiers implement their interfaces.
var (
	_ driven.InvoiceNotifier = (*InvoiceEmailNotifier)(nil)
	_ driven.UserNotifier    = (*UserEmailNotifier)(nil)
)

// InvoiceEmailNotifier tells the customer an invoice was created.
type InvoiceEmailNotifier struct {
	out io.Writer
}

// NewInvoiceEmailNotifier creates a notifier writing to out.
func NewInvoiceEmailNotifier(out io.Writer) *InvoiceEmailNotifier {
	return &InvoiceEmailNotifier{out: out}
}

// Notify writes the simulated email.
func (n *InvoiceEmailNotifier) Notify(ctx context.Context, invoice domain.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(n.out, "Sending invoice email to %s\n", invoice.CustomerEmail); err != nil {
		return fmt.Errorf("write invoice email: %w", err)
	}
	return nil
}

// UserEmailNotifier sends account emails to users.
type UserEmailNotifier struct {
	out io.Writer
}

// NewUserEmailNotifier creates a notifier writing to out.
func NewUserEmailNotifier(out io.Writer) *UserEmailNotifier {
	return &UserEmailNotifier{out: out}
}

// SendPasswordResetEmail writes the simulated reset email.
func (n *UserEmailNotifier) SendPasswordResetEmail(ctx context.Context, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(n.out, "Sending password reset email to %s\n", user.Email); err != nil {
		return fmt.Errorf("write reset email: %w", err)
	}
	return nil
}
