package repo

import (
	"context"
	"fmt"

	"bookstore/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateLineItem(ctx context.Context, li entities.LineItem) (int64, error) {
	query, args := r.qb.Insert("line_items").
		Columns("order_id", "book_id", "quantity").
		Values(li.OrderID, li.BookID, li.Quantity).
		Suffix("RETURNING line_item_id").
		MustSql()

	var lineItemID int64
	if err := r.getContext(ctx, &lineItemID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create line item: %w", err)
	}
	return lineItemID, nil
}

func (r *postgresRepo) ListLineItemsByOrderID(ctx context.Context, orderID int64) ([]entities.LineItem, error) {
	// Порядок вставки сохраняется за счёт сортировки по первичному ключу
	query, args := r.qb.Select("line_item_id", "order_id", "book_id", "quantity").
		From("line_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("line_item_id").
		MustSql()

	var items []LineItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select line items: %w", err)
	}

	result := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		result = append(result, LineItemToEntity(it))
	}
	return result, nil
}
