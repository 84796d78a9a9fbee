package handler

import (
	"time"

	"bookstore/internal/entities"
)

// PlaceOrderRequest тело запроса на оформление заказа
type PlaceOrderRequest struct {
	Customer CustomerForm `json:"customer" validate:"required"`
	Cart     ShoppingCart `json:"cart" validate:"required"`
}

// CustomerForm форма покупателя; поля срока действия карты опциональны
type CustomerForm struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required"`
	CCNumber      string `json:"cc_number" validate:"required"`
	CCExpiryMonth string `json:"cc_expiry_month,omitempty"`
	CCExpiryYear  string `json:"cc_expiry_year,omitempty"`
}

// ShoppingCart корзина со снапшотом цен и категорий
type ShoppingCart struct {
	Surcharge int        `json:"surcharge" validate:"gte=0"`
	Items     []CartItem `json:"items" validate:"required,dive"`
}

type CartItem struct {
	BookID     int64 `json:"book_id" validate:"required"`
	Quantity   int   `json:"quantity"`
	Price      int   `json:"price"`
	CategoryID int64 `json:"category_id"`
}

// PlaceOrderResponse идентификатор созданного заказа
type PlaceOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

// OrderDetails составное представление заказа для страницы подтверждения
type OrderDetails struct {
	Order     Order      `json:"order"`
	Customer  Customer   `json:"customer"`
	LineItems []LineItem `json:"line_items"`
	Books     []Book     `json:"books"`
}

type Order struct {
	OrderID            int64     `json:"order_id"`
	Amount             int       `json:"amount"`
	ConfirmationNumber int       `json:"confirmation_number"`
	CustomerID         int64     `json:"customer_id"`
	CreatedAt          time.Time `json:"created_at"`
}

type Customer struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	CCNumber   string `json:"cc_number"`
	CCExpiry   string `json:"cc_expiry,omitempty"`
}

type LineItem struct {
	LineItemID int64 `json:"line_item_id"`
	OrderID    int64 `json:"order_id"`
	BookID     int64 `json:"book_id"`
	Quantity   int   `json:"quantity"`
}

type Book struct {
	BookID      int64  `json:"book_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
	Rating      int    `json:"rating"`
	IsPublic    bool   `json:"is_public"`
	IsFeatured  bool   `json:"is_featured"`
	CategoryID  int64  `json:"category_id"`
}

func CustomerFormToEntity(f CustomerForm) entities.CustomerForm {
	return entities.CustomerForm{
		Name:          f.Name,
		Address:       f.Address,
		Phone:         f.Phone,
		Email:         f.Email,
		CCNumber:      f.CCNumber,
		CCExpiryMonth: f.CCExpiryMonth,
		CCExpiryYear:  f.CCExpiryYear,
	}
}

func ShoppingCartToEntity(c ShoppingCart) entities.ShoppingCart {
	items := make([]entities.ShoppingCartItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entities.ShoppingCartItem{
			BookID:     it.BookID,
			Quantity:   it.Quantity,
			Price:      it.Price,
			CategoryID: it.CategoryID,
		})
	}
	return entities.ShoppingCart{
		Surcharge: c.Surcharge,
		Items:     items,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderID:            o.OrderID,
		Amount:             o.Amount,
		ConfirmationNumber: o.ConfirmationNumber,
		CustomerID:         o.CustomerID,
		CreatedAt:          o.CreatedAt,
	}
}

func CustomerEntityToJSON(c entities.Customer) Customer {
	customer := Customer{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Address:    c.Address,
		Phone:      c.Phone,
		Email:      c.Email,
		CCNumber:   c.CCNumber,
	}
	if !c.CCExpiry.IsZero() {
		customer.CCExpiry = c.CCExpiry.Format("2006-01")
	}
	return customer
}

func LineItemEntityToJSON(li entities.LineItem) LineItem {
	return LineItem{
		LineItemID: li.LineItemID,
		OrderID:    li.OrderID,
		BookID:     li.BookID,
		Quantity:   li.Quantity,
	}
}

func BookEntityToJSON(b entities.Book) Book {
	return Book{
		BookID:      b.BookID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Rating:      b.Rating,
		IsPublic:    b.IsPublic,
		IsFeatured:  b.IsFeatured,
		CategoryID:  b.CategoryID,
	}
}

func OrderDetailsEntityToJSON(d entities.OrderDetails) OrderDetails {
	lineItems := make([]LineItem, 0, len(d.LineItems))
	for _, li := range d.LineItems {
		lineItems = append(lineItems, LineItemEntityToJSON(li))
	}
	books := make([]Book, 0, len(d.Books))
	for _, b := range d.Books {
		books = append(books, BookEntityToJSON(b))
	}

	return OrderDetails{
		Order:     OrderEntityToJSON(d.Order),
		Customer:  CustomerEntityToJSON(d.Customer),
		LineItems: lineItems,
		Books:     books,
	}
}
