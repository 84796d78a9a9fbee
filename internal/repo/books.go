package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookstore/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetBookByID(ctx context.Context, bookID int64) (entities.Book, error) {
	query, args := r.qb.Select(
		"book_id", "title", "author", "description", "price",
		"rating", "is_public", "is_featured", "category_id").
		From("books").
		Where(sq.Eq{"book_id": bookID}).
		MustSql()

	var book Book
	err := r.getContext(ctx, &book, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Book{}, entities.ErrBookNotFound
	}
	if err != nil {
		return entities.Book{}, fmt.Errorf("failed to get book: %w", err)
	}

	return BookToEntity(book), nil
}
