package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"bookstore/internal/entities"
	"bookstore/pkg/trm"
)

type CatalogRepo interface {
	GetBookByID(ctx context.Context, bookID int64) (entities.Book, error)
}

type CustomerRepo interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (int64, error)
	GetCustomerByID(ctx context.Context, customerID int64) (entities.Customer, error)
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (int64, error)
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
}

type LineItemRepo interface {
	CreateLineItem(ctx context.Context, li entities.LineItem) (int64, error)
	ListLineItemsByOrderID(ctx context.Context, orderID int64) ([]entities.LineItem, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, ev entities.OrderPlacedEvent) error
}

// ConfirmationSource выдаёт публичный номер подтверждения заказа.
type ConfirmationSource func() int

// DefaultConfirmationSource генерирует номер в [0, 999999999).
// Уникальность не гарантируется, коллизии допустимы.
func DefaultConfirmationSource() int {
	return rand.IntN(999_999_999)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	catalog   CatalogRepo
	customers CustomerRepo
	orders    OrderRepo
	lineItems LineItemRepo
	publisher OrderPublisher
	confirm   ConfirmationSource
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	catalog CatalogRepo,
	customers CustomerRepo,
	orders OrderRepo,
	lineItems LineItemRepo,
	publisher OrderPublisher,
	confirm ConfirmationSource,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		catalog:   catalog,
		customers: customers,
		orders:    orders,
		lineItems: lineItems,
		publisher: publisher,
		confirm:   confirm,
	}
}

// PlaceOrder оформляет заказ одной транзакцией: покупатель, заказ,
// позиции. До первой записи обе проверки должны пройти целиком.
func (s *orderService) PlaceOrder(ctx context.Context, form entities.CustomerForm, cart entities.ShoppingCart) (int64, error) {
	if err := ValidateCustomer(form); err != nil {
		return 0, err
	}
	if err := s.validateCart(ctx, cart); err != nil {
		return 0, err
	}

	expiry, err := resolveExpiry(form.CCExpiryMonth, form.CCExpiryYear)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve expiry date: %w", err)
	}

	amount := cart.Subtotal() + cart.Surcharge
	confirmation := s.confirm()

	var orderID int64
	txErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		customerID, err := s.customers.CreateCustomer(ctx, entities.Customer{
			Name:     form.Name,
			Address:  form.Address,
			Phone:    form.Phone,
			Email:    form.Email,
			CCNumber: form.CCNumber,
			CCExpiry: expiry,
		})
		if err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		orderID, err = s.orders.CreateOrder(ctx, entities.Order{
			Amount:             amount,
			ConfirmationNumber: confirmation,
			CustomerID:         customerID,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range cart.Items {
			_, err := s.lineItems.CreateLineItem(ctx, entities.LineItem{
				OrderID:  orderID,
				BookID:   item.BookID,
				Quantity: item.Quantity,
			})
			if err != nil {
				return fmt.Errorf("failed to create line item: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, trm.ErrBeginFailed) ||
			errors.Is(txErr, trm.ErrCommitFailed) ||
			errors.Is(txErr, trm.ErrRollbackFailed) {
			return 0, fmt.Errorf("%w: %w", entities.ErrStorageFailure, txErr)
		}
		// Откат прошёл, ни одна строка не записана
		return 0, fmt.Errorf("%w: %w", entities.ErrTransactionFailed, txErr)
	}

	s.publishOrderPlaced(ctx, entities.OrderPlacedEvent{
		OrderID:            orderID,
		ConfirmationNumber: confirmation,
		Amount:             amount,
	})

	s.logger.DebugContext(ctx, "order placed", slog.Int64("order_id", orderID))
	return orderID, nil
}

// validateCart сверяет снапшот корзины с текущим каталогом.
func (s *orderService) validateCart(ctx context.Context, cart entities.ShoppingCart) error {
	if len(cart.Items) == 0 {
		return fmt.Errorf("%w: cart is empty", entities.ErrInvalidParameter)
	}

	for _, item := range cart.Items {
		if item.Quantity < 0 || item.Quantity > 99 {
			return fmt.Errorf("%w: invalid quantity", entities.ErrInvalidParameter)
		}

		book, err := s.catalog.GetBookByID(ctx, item.BookID)
		if err != nil {
			return fmt.Errorf("failed to look up book %d: %w", item.BookID, err)
		}
		if item.Price != book.Price {
			return fmt.Errorf("%w: book price does not match catalog", entities.ErrInvalidParameter)
		}
		if item.CategoryID != book.CategoryID {
			return fmt.Errorf("%w: book category does not match catalog", entities.ErrInvalidParameter)
		}
	}
	return nil
}

func (s *orderService) GetOrderDetails(ctx context.Context, orderID int64) (entities.OrderDetails, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.OrderDetails{}, err
	}

	customer, err := s.customers.GetCustomerByID(ctx, order.CustomerID)
	if err != nil {
		return entities.OrderDetails{}, err
	}

	lineItems, err := s.lineItems.ListLineItemsByOrderID(ctx, orderID)
	if err != nil {
		return entities.OrderDetails{}, err
	}

	books := make([]entities.Book, 0, len(lineItems))
	for _, li := range lineItems {
		book, err := s.catalog.GetBookByID(ctx, li.BookID)
		if err != nil {
			return entities.OrderDetails{}, err
		}
		books = append(books, book)
	}

	return entities.OrderDetails{
		Order:     order,
		Customer:  customer,
		LineItems: lineItems,
		Books:     books,
	}, nil
}

// Событие best-effort: заказ уже закоммичен, ошибка публикации
// только логируется.
func (s *orderService) publishOrderPlaced(ctx context.Context, ev entities.OrderPlacedEvent) {
	if err := s.publisher.PublishOrderPlaced(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order placed event",
			slog.Any("error", err), slog.Int64("order_id", ev.OrderID))
	}
}
