package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bookstore/internal/entities"
	"bookstore/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, form entities.CustomerForm, cart entities.ShoppingCart) (int64, error)
	GetOrderDetails(ctx context.Context, orderID int64) (entities.OrderDetails, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.PlaceOrder)
	r.Get("/orders/{order_id}", h.GetOrderDetails)
}

// PlaceOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Проверяет форму и корзину, создаёт покупателя, заказ и позиции одной транзакцией
// @Tags         orders
// @Accept       json
// @Param        request  body  PlaceOrderRequest  true  "Форма покупателя и корзина"
// @Success      201  {object}  PlaceOrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Невалидные данные"
// @Failure      404  {object}  utils.ErrorResponse "Книга не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Транзакция откатилась"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	orderID, err := h.svc.PlaceOrder(ctx, CustomerFormToEntity(req.Customer), ShoppingCartToEntity(req.Cart))
	placeOrderDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, entities.ErrInvalidParameter):
		ordersRejected.Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrBookNotFound):
		ordersRejected.Inc()
		utils.WriteError(w, "book not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrTransactionFailed):
		ordersFailed.Inc()
		utils.WriteError(w, "order was not placed, try again", http.StatusConflict)
	case err != nil:
		ordersFailed.Inc()
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		ordersPlaced.Inc()
		utils.WriteJSON(w, PlaceOrderResponse{OrderID: orderID}, http.StatusCreated)
	}
}

// GetOrderDetails возвращает заказ со всеми связанными данными.
// @Summary      Получить детали заказа
// @Description  Возвращает заказ, покупателя, позиции и книги по идентификатору заказа
// @Tags         orders
// @Param        order_id  path  int  true  "Идентификатор заказа"
// @Success      200  {object}  OrderDetails
// @Failure      400  {object}  utils.ErrorResponse "Невалидный идентификатор"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	details, err := h.svc.GetOrderDetails(ctx, orderID)

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCustomerNotFound), errors.Is(err, entities.ErrBookNotFound):
		// Заказ есть, а связанных строк нет: нарушение целостности данных
		h.logger.ErrorContext(ctx, "order references missing rows",
			slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "order data is inconsistent", http.StatusNotFound)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to get order details",
			slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, OrderDetailsEntityToJSON(details), http.StatusOK)
	}
}
