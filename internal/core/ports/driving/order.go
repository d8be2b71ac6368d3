package driving

import (
	"context"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// OrderService places orders.
type OrderService interface {
	PlaceOrder(ctx context.Context, order domain.Order) error
}

// OrderHistory lists stored orders.
type OrderHistory interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
