package repo

import (
	"database/sql"
	"time"

	"bookstore/internal/entities"
)

type Book struct {
	BookID      int64          `db:"book_id"`
	Title       string         `db:"title"`
	Author      string         `db:"author"`
	Description sql.NullString `db:"description"`
	Price       int            `db:"price"`
	Rating      int            `db:"rating"`
	IsPublic    bool           `db:"is_public"`
	IsFeatured  bool           `db:"is_featured"`
	CategoryID  int64          `db:"category_id"`
}

type Customer struct {
	CustomerID int64        `db:"customer_id"`
	Name       string       `db:"name"`
	Address    string       `db:"address"`
	Phone      string       `db:"phone"`
	Email      string       `db:"email"`
	CCNumber   string       `db:"cc_number"`
	CCExpiry   sql.NullTime `db:"cc_expiry"`
}

type Order struct {
	OrderID            int64     `db:"order_id"`
	Amount             int       `db:"amount"`
	ConfirmationNumber int       `db:"confirmation_number"`
	CustomerID         int64     `db:"customer_id"`
	CreatedAt          time.Time `db:"created_at"`
}

type LineItem struct {
	LineItemID int64 `db:"line_item_id"`
	OrderID    int64 `db:"order_id"`
	BookID     int64 `db:"book_id"`
	Quantity   int   `db:"quantity"`
}

func BookToEntity(b Book) entities.Book {
	return entities.Book{
		BookID:      b.BookID,
		Title:       b.Title,
		Author:      b.Author,
		Description: nullStringToString(b.Description),
		Price:       b.Price,
		Rating:      b.Rating,
		IsPublic:    b.IsPublic,
		IsFeatured:  b.IsFeatured,
		CategoryID:  b.CategoryID,
	}
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Address:    c.Address,
		Phone:      c.Phone,
		Email:      c.Email,
		CCNumber:   c.CCNumber,
		CCExpiry:   nullTimeToTime(c.CCExpiry),
	}
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		OrderID:            o.OrderID,
		Amount:             o.Amount,
		ConfirmationNumber: o.ConfirmationNumber,
		CustomerID:         o.CustomerID,
		CreatedAt:          o.CreatedAt,
	}
}

func LineItemToEntity(li LineItem) entities.LineItem {
	return entities.LineItem{
		LineItemID: li.LineItemID,
		OrderID:    li.OrderID,
		BookID:     li.BookID,
		Quantity:   li.Quantity,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
