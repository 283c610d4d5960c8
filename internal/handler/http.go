package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
	maxIdempotencyKeyLen = 255
)

type OrderService interface {
	PlaceOrder(ctx context.Context, buyer entities.Buyer, req entities.OrderRequest, idempotencyKey string) (entities.PlacedOrder, error)
	GetOrderForUser(ctx context.Context, uid, orderID string) (entities.Order, error)
}

type HTTPHandler struct {
	logger *slog.Logger
	svc    OrderService
	auth   func(http.Handler) http.Handler
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, auth func(http.Handler) http.Handler) *HTTPHandler {
	return &HTTPHandler{
		logger: logger.With(slog.String("handler", "http")),
		svc:    svc,
		auth:   auth,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/{order_id}", h.GetOrderByID)
	})
}

// CreateOrder places an order for the authenticated buyer.
// @Summary      Place an order
// @Description  Validates the cart, reserves stock atomically and notifies the buyer and sellers
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Client key that makes retries safe"
// @Param        order            body      CreateOrderRequest  true   "Checkout payload"
// @Success      201  {object}  CreateOrderResponse
// @Success      200  {object}  CreateOrderResponse "Replay of an earlier request with the same key"
// @Failure      400  {object}  utils.ErrorResponse "Validation, unknown product or not enough stock"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	buyer, ok := middleware.BuyerFromContext(ctx)
	if !ok {
		h.observe("unauthorized", start)
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body CreateOrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		h.observe("bad_request", start)
		utils.WriteErrorDetails(w, "invalid request body", map[string]string{"body": err.Error()}, http.StatusBadRequest)
		return
	}

	key := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
	if len(key) > maxIdempotencyKeyLen {
		h.observe("bad_request", start)
		utils.WriteValidationError(w, map[string]string{idempotencyKeyHeader: "must be at most 255 characters"})
		return
	}

	placed, err := h.svc.PlaceOrder(ctx, buyer, OrderRequestToEntity(body), key)
	if err != nil {
		h.observe(h.writeOrderError(ctx, w, err), start)
		return
	}

	resp := CreateOrderResponse{Success: true, OrderID: placed.Order.ID}
	if placed.Replayed {
		h.observe("replayed", start)
		w.Header().Set(replayedHeader, "true")
		utils.WriteJSON(w, resp, http.StatusOK)
		return
	}
	h.observe("created", start)
	utils.WriteJSON(w, resp, http.StatusCreated)
}

// GetOrderByID returns an order to its buyer or one of its sellers.
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id   path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	buyer, ok := middleware.BuyerFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	order, err := h.svc.GetOrderForUser(ctx, buyer.UID, orderID)
	switch {
	case err == nil:
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	default:
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeOrderError maps placement errors to responses and returns the metric label.
func (h *HTTPHandler) writeOrderError(ctx context.Context, w http.ResponseWriter, err error) string {
	var (
		verr     *entities.ValidationError
		notFound *entities.ProductNotFoundError
		stock    *entities.InsufficientStockError
	)
	switch {
	case errors.As(err, &verr):
		utils.WriteValidationError(w, verr.Fields)
		return "bad_request"
	case errors.As(err, &notFound):
		utils.WriteErrorDetails(w, "product not found", map[string]string{"product_id": notFound.ProductID}, http.StatusBadRequest)
		return "bad_request"
	case errors.As(err, &stock):
		utils.WriteErrorDetails(w, "not enough stock", map[string]any{
			"product_id": stock.ProductID,
			"requested":  stock.Requested,
			"available":  stock.Available,
		}, http.StatusBadRequest)
		return "bad_request"
	case errors.Is(err, entities.ErrUnauthorized):
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return "unauthorized"
	default:
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err))
		utils.WriteError(w, "order creation failed", http.StatusInternalServerError)
		return "error"
	}
}

func (h *HTTPHandler) observe(status string, start time.Time) {
	checkoutsTotal.WithLabelValues(status).Inc()
	checkoutDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
}
