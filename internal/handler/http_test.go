package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/entities"
	"bookstore/internal/handler"
	mocks "bookstore/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockOrderService) {
	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

const placeOrderBody = `{
	"customer": {
		"name": "John Smith",
		"address": "123 Main Street",
		"phone": "123-456-7890",
		"email": "john@example.com",
		"cc_number": "1234-5678-9012-3456"
	},
	"cart": {
		"surcharge": 500,
		"items": [
			{"book_id": 1, "quantity": 2, "price": 1500, "category_id": 3}
		]
	}
}`

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: placeOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(int64(42), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":42`,
		},
		{
			name:         "malformed json",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "missing required fields",
			body:         `{"customer": {}, "cart": {"items": [{"book_id": 1}]}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name: "validation error from service",
			body: placeOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(int64(0), fmt.Errorf("%w: invalid phone field", entities.ErrInvalidParameter)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid phone field`,
		},
		{
			name: "unknown book",
			body: placeOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(int64(0), fmt.Errorf("failed to look up book 1: %w", entities.ErrBookNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"book not found"`,
		},
		{
			name: "transaction rolled back",
			body: placeOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(int64(0), fmt.Errorf("%w: create order: db error", entities.ErrTransactionFailed)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order was not placed, try again"`,
		},
		{
			name: "storage failure",
			body: placeOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(int64(0), errors.New("connection lost")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_PlaceOrder_PassesDecodedRequest(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().
		PlaceOrder(mock.Anything,
			entities.CustomerForm{
				Name:     "John Smith",
				Address:  "123 Main Street",
				Phone:    "123-456-7890",
				Email:    "john@example.com",
				CCNumber: "1234-5678-9012-3456",
			},
			entities.ShoppingCart{
				Surcharge: 500,
				Items:     []entities.ShoppingCartItem{{BookID: 1, Quantity: 2, Price: 1500, CategoryID: 3}},
			}).
		Return(int64(42), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(placeOrderBody))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestHTTPHandler_GetOrderDetails(t *testing.T) {
	details := entities.OrderDetails{
		Order:    entities.Order{OrderID: 42, Amount: 5500, ConfirmationNumber: 777, CustomerID: 11},
		Customer: entities.Customer{CustomerID: 11, Name: "John Smith"},
		LineItems: []entities.LineItem{
			{LineItemID: 1, OrderID: 42, BookID: 1, Quantity: 2},
		},
		Books: []entities.Book{
			{BookID: 1, Title: "The Go Programming Language", Price: 1500, CategoryID: 3},
		},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderDetails(mock.Anything, int64(42)).
					Return(details, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"confirmation_number":777`,
		},
		{
			name:         "invalid id",
			orderID:      "abc",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid order id"`,
		},
		{
			name:    "not found",
			orderID: "99",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderDetails(mock.Anything, int64(99)).
					Return(entities.OrderDetails{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "dangling customer reference",
			orderID: "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderDetails(mock.Anything, int64(42)).
					Return(entities.OrderDetails{}, entities.ErrCustomerNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order data is inconsistent"`,
		},
		{
			name:    "internal error",
			orderID: "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderDetails(mock.Anything, int64(42)).
					Return(entities.OrderDetails{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				order, ok := resp["order"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, float64(42), order["order_id"])
			}
		})
	}
}
