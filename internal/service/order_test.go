package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"bookstore/internal/entities"
	"bookstore/internal/service"
	mocks "bookstore/internal/service/mocks"
	"bookstore/pkg/trm"
	txMocks "bookstore/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type serviceMocks struct {
	tx        *txMocks.MockManager
	catalog   *mocks.MockCatalogRepo
	customers *mocks.MockCustomerRepo
	orders    *mocks.MockOrderRepo
	lineItems *mocks.MockLineItemRepo
	publisher *mocks.MockOrderPublisher
}

func newServiceMocks(t *testing.T) serviceMocks {
	return serviceMocks{
		tx:        txMocks.NewMockManager(t),
		catalog:   mocks.NewMockCatalogRepo(t),
		customers: mocks.NewMockCustomerRepo(t),
		orders:    mocks.NewMockOrderRepo(t),
		lineItems: mocks.NewMockLineItemRepo(t),
		publisher: mocks.NewMockOrderPublisher(t),
	}
}

type orderService interface {
	PlaceOrder(ctx context.Context, form entities.CustomerForm, cart entities.ShoppingCart) (int64, error)
	GetOrderDetails(ctx context.Context, orderID int64) (entities.OrderDetails, error)
}

func (m serviceMocks) newService(confirm service.ConfirmationSource) orderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, m.tx, m.catalog, m.customers, m.orders, m.lineItems, m.publisher, confirm)
}

// Do выполняет callback как будто транзакция открыта
func passThroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

func validForm() entities.CustomerForm {
	return entities.CustomerForm{
		Name:     "John Smith",
		Address:  "123 Main Street",
		Phone:    "123-456-7890",
		Email:    "john@example.com",
		CCNumber: "1234-5678-9012-3456",
	}
}

func validCart() entities.ShoppingCart {
	return entities.ShoppingCart{
		Surcharge: 500,
		Items: []entities.ShoppingCartItem{
			{BookID: 1, Quantity: 2, Price: 1500, CategoryID: 3},
			{BookID: 2, Quantity: 1, Price: 2000, CategoryID: 3},
		},
	}
}

func catalogBooks() map[int64]entities.Book {
	return map[int64]entities.Book{
		1: {BookID: 1, Title: "The Go Programming Language", Price: 1500, CategoryID: 3},
		2: {BookID: 2, Title: "Designing Data-Intensive Applications", Price: 2000, CategoryID: 3},
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("places order and returns generated id", func(t *testing.T) {
		m := newServiceMocks(t)
		books := catalogBooks()

		m.catalog.EXPECT().
			GetBookByID(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, bookID int64) (entities.Book, error) {
				return books[bookID], nil
			})

		passThroughTx(m.tx)

		m.customers.EXPECT().
			CreateCustomer(mock.Anything, mock.MatchedBy(func(c entities.Customer) bool {
				return c.Name == "John Smith" && c.CCExpiry.IsZero()
			})).
			Return(int64(11), nil).Once()

		// subtotal 2*1500 + 1*2000 = 5000, surcharge 500
		m.orders.EXPECT().
			CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
				return o.Amount == 5500 && o.CustomerID == 11 && o.ConfirmationNumber == 777
			})).
			Return(int64(42), nil).Once()

		m.lineItems.EXPECT().
			CreateLineItem(mock.Anything, entities.LineItem{OrderID: 42, BookID: 1, Quantity: 2}).
			Return(int64(1), nil).Once()
		m.lineItems.EXPECT().
			CreateLineItem(mock.Anything, entities.LineItem{OrderID: 42, BookID: 2, Quantity: 1}).
			Return(int64(2), nil).Once()

		m.publisher.EXPECT().
			PublishOrderPlaced(mock.Anything, entities.OrderPlacedEvent{
				OrderID: 42, ConfirmationNumber: 777, Amount: 5500,
			}).
			Return(nil).Once()

		svc := m.newService(func() int { return 777 })

		orderID, err := svc.PlaceOrder(ctx, validForm(), validCart())
		require.NoError(t, err)
		assert.Equal(t, int64(42), orderID)
	})

	t.Run("invalid form fails before any storage call", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := m.newService(service.DefaultConfirmationSource)

		form := validForm()
		form.Name = "ab"

		_, err := svc.PlaceOrder(ctx, form, validCart())
		assert.ErrorIs(t, err, entities.ErrInvalidParameter)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := m.newService(service.DefaultConfirmationSource)

		_, err := svc.PlaceOrder(ctx, validForm(), entities.ShoppingCart{})
		assert.ErrorIs(t, err, entities.ErrInvalidParameter)
	})

	t.Run("quantity over 99 is rejected", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := m.newService(service.DefaultConfirmationSource)

		cart := validCart()
		cart.Items[0].Quantity = 100

		_, err := svc.PlaceOrder(ctx, validForm(), cart)
		assert.ErrorIs(t, err, entities.ErrInvalidParameter)
	})

	t.Run("stale price fails without starting transaction", func(t *testing.T) {
		m := newServiceMocks(t)

		book := catalogBooks()[1]
		book.Price = 1600
		m.catalog.EXPECT().
			GetBookByID(mock.Anything, int64(1)).
			Return(book, nil).Once()

		svc := m.newService(service.DefaultConfirmationSource)

		_, err := svc.PlaceOrder(ctx, validForm(), validCart())
		assert.ErrorIs(t, err, entities.ErrInvalidParameter)
	})

	t.Run("stale category fails", func(t *testing.T) {
		m := newServiceMocks(t)

		book := catalogBooks()[1]
		book.CategoryID = 9
		m.catalog.EXPECT().
			GetBookByID(mock.Anything, int64(1)).
			Return(book, nil).Once()

		svc := m.newService(service.DefaultConfirmationSource)

		_, err := svc.PlaceOrder(ctx, validForm(), validCart())
		assert.ErrorIs(t, err, entities.ErrInvalidParameter)
	})

	t.Run("unknown book in cart", func(t *testing.T) {
		m := newServiceMocks(t)

		m.catalog.EXPECT().
			GetBookByID(mock.Anything, int64(1)).
			Return(entities.Book{}, entities.ErrBookNotFound).Once()

		svc := m.newService(service.DefaultConfirmationSource)

		_, err := svc.PlaceOrder(ctx, validForm(), validCart())
		assert.ErrorIs(t, err, entities.ErrBookNotFound)
	})

	t.Run("failed write rolls back and reports transaction failure", func(t *testing.T) {
		m := newServiceMocks(t)
		dbError := errors.New("db error")
		books := catalogBooks()

		m.catalog.EXPECT().
			GetBookByID(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, bookID int64) (entities.Book, error) {
				return books[bookID], nil
			})

		passThroughTx(m.tx)

		m.customers.EXPECT().
			CreateCustomer(mock.Anything, mock.Anything).
			Return(int64(11), nil).Once()
		m.orders.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(int64(0), dbError).Once()

		svc := m.newService(service.DefaultConfirmationSource)

		orderID, err := svc.PlaceOrder(ctx, validForm(), validCart())
		assert.ErrorIs(t, err, entities.ErrTransactionFailed)
		assert.ErrorIs(t, err, dbError)
		assert.Zero(t, orderID)
	})

	t.Run("failed rollback is a storage failure", func(t *testing.T) {
		m := newServiceMocks(t)
		books := catalogBooks()

		m.catalog.EXPECT().
			GetBookByID(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, bookID int64) (entities.Book, error) {
				return books[bookID], nil
			})

		rollbackErr := fmt.Errorf("%w: connection lost", trm.ErrRollbackFailed)
		m.tx.EXPECT().
			Do(mock.Anything, mock.Anything).
			Return(rollbackErr).Once()

		svc := m.newService(service.DefaultConfirmationSource)

		_, err := svc.PlaceOrder(ctx, validForm(), validCart())
		assert.ErrorIs(t, err, entities.ErrStorageFailure)
		assert.NotErrorIs(t, err, entities.ErrTransactionFailed)
	})

	t.Run("publish failure does not fail the placed order", func(t *testing.T) {
		m := newServiceMocks(t)
		books := catalogBooks()

		m.catalog.EXPECT().
			GetBookByID(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, bookID int64) (entities.Book, error) {
				return books[bookID], nil
			})

		passThroughTx(m.tx)

		m.customers.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(int64(11), nil).Once()
		m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(42), nil).Once()
		m.lineItems.EXPECT().CreateLineItem(mock.Anything, mock.Anything).Return(int64(1), nil)

		m.publisher.EXPECT().
			PublishOrderPlaced(mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable")).Once()

		svc := m.newService(service.DefaultConfirmationSource)

		orderID, err := svc.PlaceOrder(ctx, validForm(), validCart())
		require.NoError(t, err)
		assert.Equal(t, int64(42), orderID)
	})
}

func TestOrderService_PlaceOrder_Concurrent(t *testing.T) {
	const callers = 8

	m := newServiceMocks(t)
	books := catalogBooks()

	m.catalog.EXPECT().
		GetBookByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, bookID int64) (entities.Book, error) {
			return books[bookID], nil
		})

	passThroughTx(m.tx)

	var customerSeq, orderSeq atomic.Int64
	m.customers.EXPECT().
		CreateCustomer(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entities.Customer) (int64, error) {
			return customerSeq.Add(1), nil
		})
	m.orders.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entities.Order) (int64, error) {
			return orderSeq.Add(1), nil
		})
	m.lineItems.EXPECT().CreateLineItem(mock.Anything, mock.Anything).Return(int64(1), nil)
	m.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil)

	svc := m.newService(service.DefaultConfirmationSource)

	ids := make([]int64, callers)
	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			orderID, err := svc.PlaceOrder(context.Background(), validForm(), validCart())
			ids[i] = orderID
			return err
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]bool, callers)
	for _, id := range ids {
		assert.Positive(t, id)
		assert.False(t, seen[id], "order id %d returned twice", id)
		seen[id] = true
	}
}

func TestOrderService_GetOrderDetails(t *testing.T) {
	ctx := context.Background()

	order := entities.Order{OrderID: 42, Amount: 5500, ConfirmationNumber: 777, CustomerID: 11}
	customer := entities.Customer{CustomerID: 11, Name: "John Smith"}
	lineItems := []entities.LineItem{
		{LineItemID: 1, OrderID: 42, BookID: 2, Quantity: 1},
		{LineItemID: 2, OrderID: 42, BookID: 1, Quantity: 2},
	}

	t.Run("composes order, customer, items and books in item order", func(t *testing.T) {
		m := newServiceMocks(t)
		books := catalogBooks()

		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(order, nil).Once()
		m.customers.EXPECT().GetCustomerByID(mock.Anything, int64(11)).Return(customer, nil).Once()
		m.lineItems.EXPECT().ListLineItemsByOrderID(mock.Anything, int64(42)).Return(lineItems, nil).Once()
		m.catalog.EXPECT().
			GetBookByID(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, bookID int64) (entities.Book, error) {
				return books[bookID], nil
			})

		svc := m.newService(service.DefaultConfirmationSource)

		details, err := svc.GetOrderDetails(ctx, 42)
		require.NoError(t, err)

		assert.Equal(t, order, details.Order)
		assert.Equal(t, customer, details.Customer)
		assert.Equal(t, lineItems, details.LineItems)
		require.Len(t, details.Books, 2)
		assert.Equal(t, int64(2), details.Books[0].BookID)
		assert.Equal(t, int64(1), details.Books[1].BookID)
	})

	t.Run("order not found", func(t *testing.T) {
		m := newServiceMocks(t)

		m.orders.EXPECT().
			GetOrderByID(mock.Anything, int64(99)).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := m.newService(service.DefaultConfirmationSource)

		_, err := svc.GetOrderDetails(ctx, 99)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("missing customer surfaces not found", func(t *testing.T) {
		m := newServiceMocks(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(order, nil).Once()
		m.customers.EXPECT().
			GetCustomerByID(mock.Anything, int64(11)).
			Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()

		svc := m.newService(service.DefaultConfirmationSource)

		_, err := svc.GetOrderDetails(ctx, 42)
		assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
	})
}
