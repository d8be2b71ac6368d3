package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
	"github.com/custodia-labs/solidkit/internal/logger"
)

// Ensure OrderService implements the interface.
var _ driving.OrderService = (*OrderService)(nil)

// OrderService places orders. It depends on the OrderRepository
// abstraction; which database sits behind it is decided by the caller.
type OrderService struct {
	repository driven.OrderRepository
	log        logger.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repository driven.OrderRepository) *OrderService {
	return &OrderService{
		repository: repository,
		log:        logger.With("order"),
	}
}

// PlaceOrder persists the order.
func (s *OrderService) PlaceOrder(ctx context.Context, order domain.Order) error {
	s.log.Debug("placing order %d (amount %s)", order.ID, order.Amount)
	if err := s.repository.Save(ctx, order); err != nil {
		return fmt.Errorf("save order %d: %w", order.ID, err)
	}
	return nil
}

// Ensure OrderHistory implements the interface.
var _ driving.OrderHistory = (*OrderHistory)(nil)

// OrderHistory lists placed orders.
type OrderHistory struct {
	lister driven.OrderLister
}

// NewOrderHistory creates a new order history.
func NewOrderHistory(lister driven.OrderLister) *OrderHistory {
	return &OrderHistory{lister: lister}
}

// ListOrders returns every stored order.
func (h *OrderHistory) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := h.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
