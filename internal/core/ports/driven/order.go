package driven

import (
	"context"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// OrderRepository persists placed orders.
// The interface is owned by the core; storage adapters implement it.
type OrderRepository interface {
	Save(ctx context.Context, order domain.Order) error
}

// OrderLister enumerates stored orders ordered by id.
type OrderLister interface {
	List(ctx context.Context) ([]domain.Order, error)
}
