package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
)

// Ensure MessageService implements the interface.
var _ driving.MessageService = (*MessageService)(nil)

// MessageService sends a message by email.
// There is one format and one channel, so there are no abstractions for
// either. Introduce them when a second one exists.
type MessageService struct {
	out io.Writer
}

// NewMessageService creates a message service writing to out.
func NewMessageService(out io.Writer) *MessageService {
	return &MessageService{out: out}
}

// Send delivers the message.
func (s *MessageService) Send(_ context.Context, message domain.Message) error {
	if _, err := fmt.Fprintf(s.out, "Sending EMAIL: %s\n", message.Content); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
