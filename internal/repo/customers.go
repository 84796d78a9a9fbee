package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookstore/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateCustomer(ctx context.Context, c entities.Customer) (int64, error) {
	query, args := r.qb.Insert("customers").
		Columns("name", "address", "phone", "email", "cc_number", "cc_expiry").
		Values(c.Name, c.Address, c.Phone, c.Email, c.CCNumber, nullTime(c.CCExpiry)).
		Suffix("RETURNING customer_id").
		MustSql()

	var customerID int64
	if err := r.getContext(ctx, &customerID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}
	return customerID, nil
}

func (r *postgresRepo) GetCustomerByID(ctx context.Context, customerID int64) (entities.Customer, error) {
	query, args := r.qb.Select(
		"customer_id", "name", "address", "phone", "email", "cc_number", "cc_expiry").
		From("customers").
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return CustomerToEntity(customer), nil
}
