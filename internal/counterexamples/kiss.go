package counterexamples

import (
	"fmt"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// MessageFormatter formats a message. It has one implementation.
type MessageFormatter interface {
	Format(message domain.Message) string
}

// DefaultMessageFormatter prefixes the content.
type DefaultMessageFormatter struct{}

// Format returns "[DEFAULT]: content".
func (DefaultMessageFormatter) Format(message domain.Message) string {
	return "[DEFAULT]: " + message.Content
}

// MessageSender delivers a formatted message. It has one implementation.
type MessageSender interface {
	Send(formatted string)
}

// EmailMessageSender prints the email.
type EmailMessageSender struct {
	out io.Writer
}

// NewEmailMessageSender creates a sender writing to out.
func NewEmailMessageSender(out io.Writer) *EmailMessageSender {
	return &EmailMessageSender{out: out}
}

// Send prints "Sending EMAIL: formatted".
func (s *EmailMessageSender) Send(formatted string) {
	fmt.Fprintf(s.out, "Sending EMAIL: %s\n", formatted)
}

// OverEngineeredMessageService routes one format through one channel via
// two interfaces.
//
// Counter-example (KISS/YAGNI): there is only one format and one channel.
// The abstractions add files, wiring and indirection and buy nothing until
// a second implementation actually exists.
type OverEngineeredMessageService struct {
	formatter MessageFormatter
	sender    MessageSender
}

// NewOverEngineeredMessageService creates the service.
func NewOverEngineeredMessageService(formatter MessageFormatter, sender MessageSender) *OverEngineeredMessageService {
	return &OverEngineeredMessageService{formatter: formatter, sender: sender}
}

// Send formats then sends.
func (s *OverEngineeredMessageService) Send(message domain.Message) {
	s.sender.Send(s.formatter.Format(message))
}
