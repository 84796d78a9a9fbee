package entities

import (
	"errors"
	"time"
)

// Book строка каталога. Каталог для этого сервиса read-only,
// цена хранится в минимальных единицах валюты.
type Book struct {
	BookID      int64
	Title       string
	Author      string
	Description string
	Price       int
	Rating      int
	IsPublic    bool
	IsFeatured  bool
	CategoryID  int64
}

// CustomerForm данные формы покупателя, как их прислал клиент.
// Поля срока действия карты могут быть пустыми.
type CustomerForm struct {
	Name          string
	Address       string
	Phone         string
	Email         string
	CCNumber      string
	CCExpiryMonth string
	CCExpiryYear  string
}

type Customer struct {
	CustomerID int64
	Name       string
	Address    string
	Phone      string
	Email      string
	CCNumber   string

	// Нулевое значение, если срок действия не был указан
	CCExpiry time.Time
}

// ShoppingCartItem позиция корзины со снапшотом цены и категории,
// снятым при сборке корзины. Расхождение с каталогом означает,
// что корзина устарела.
type ShoppingCartItem struct {
	BookID     int64
	Quantity   int
	Price      int
	CategoryID int64
}

type ShoppingCart struct {
	Surcharge int
	Items     []ShoppingCartItem
}

// Subtotal считается по ценам из снапшота корзины.
func (c ShoppingCart) Subtotal() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

type Order struct {
	OrderID            int64
	Amount             int
	ConfirmationNumber int
	CustomerID         int64
	CreatedAt          time.Time
}

type LineItem struct {
	LineItemID int64
	OrderID    int64
	BookID     int64
	Quantity   int
}

// OrderDetails композиция для страницы заказа: Books идут
// в том же порядке, что и LineItems.
type OrderDetails struct {
	Order     Order
	Customer  Customer
	LineItems []LineItem
	Books     []Book
}

type OrderPlacedEvent struct {
	OrderID            int64
	ConfirmationNumber int
	Amount             int
}

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrTransactionFailed = errors.New("order transaction failed")
	ErrStorageFailure    = errors.New("storage failure")
)
