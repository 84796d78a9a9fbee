package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookstore/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns("amount", "confirmation_number", "customer_id").
		Values(o.Amount, o.ConfirmationNumber, o.CustomerID).
		Suffix("RETURNING order_id").
		MustSql()

	var orderID int64
	if err := r.getContext(ctx, &orderID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}
	return orderID, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "amount", "confirmation_number", "customer_id", "created_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(order), nil
}
