package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// OrderStore persists orders in the orders table.
type OrderStore struct {
	db *sql.DB
}

// Save inserts or replaces an order by id.
func (s *OrderStore) Save(ctx context.Context, order domain.Order) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id, amount, is_holiday, is_first_purchase, loyalty_years, is_employee, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			amount = excluded.amount,
			is_holiday = excluded.is_holiday,
			is_first_purchase = excluded.is_first_purchase,
			loyalty_years = excluded.loyalty_years,
			is_employee = excluded.is_employee,
			saved_at = excluded.saved_at
	`, order.ID, order.Amount.String(), order.IsHoliday, order.IsFirstPurchase,
		order.LoyaltyYears, order.IsEmployee, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving order %d: %w", order.ID, err)
	}
	return nil
}

// List returns all orders ordered by id.
func (s *OrderStore) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, is_holiday, is_first_purchase, loyalty_years, is_employee
		FROM orders ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Amount, &o.IsHoliday, &o.IsFirstPurchase,
			&o.LoyaltyYears, &o.IsEmployee); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
