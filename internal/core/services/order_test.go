package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/solidkit/internal/core/domain"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	repo := &mockOrderRepository{}
	service := NewOrderService(repo)

	order := domain.Order{ID: 7, Amount: decimal.NewFromInt(120)}
	err := service.PlaceOrder(context.Background(), order)

	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, 7, repo.saved[0].ID)
	assert.True(t, repo.saved[0].Amount.Equal(decimal.NewFromInt(120)))
}

func TestOrderService_PlaceOrder_RepositoryError(t *testing.T) {
	boom := errors.New("disk full")
	service := NewOrderService(&mockOrderRepository{saveErr: boom})

	err := service.PlaceOrder(context.Background(), domain.Order{ID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "save order 1")
}

func TestOrderHistory_ListOrders(t *testing.T) {
	ctx := context.Background()
	store := memory.NewOrderStore()
	require.NoError(t, NewOrderService(store).PlaceOrder(ctx, domain.Order{ID: 3, Amount: decimal.NewFromInt(30)}))

	orders, err := NewOrderHistory(store).ListOrders(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 3, orders[0].ID)
}
