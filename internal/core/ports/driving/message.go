package driving

import (
	"context"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// MessageService sends messages.
type MessageService interface {
	Send(ctx context.Context, message domain.Message) error
}
