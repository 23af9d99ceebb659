package handler

import (
	"io"
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc      usecase.OrderUsecase
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, gateway service.PaymentGateway, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:      uc,
		gateway: gateway,
		logger:  logger,
	}
}

// createOrderRequest is the wire shape of a checkout request. The customer
// is taken from the access token, never from the body.
type createOrderRequest struct {
	StoreID         uuid.UUID                `json:"storeId" validate:"required"`
	Items           []usecase.OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress entity.ShippingAddress   `json:"shippingAddress"`
	CouponCode      string                   `json:"couponCode"`
}

// updateOrderStatusRequest carries the requested state transition.
type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateOrder handles the checkout request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req *createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		CustomerID:      userID,
		StoreID:         req.StoreID,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		CouponCode:      req.CouponCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order created successfully")
}

// GetOrder returns one order's detail to its customer or the store owner.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListMyOrders pages through the requesting customer's orders.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, limit := paginationParams(c)

	output, err := h.uc.ListUserOrders(c.Request().Context(), userID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}

// ListStoreOrders pages through a store's orders for its owner, with an
// optional status filter.
func (h *OrderHandler) ListStoreOrders(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.OrderStatus(raw)
		if !s.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown order status filter")
		}
		status = &s
	}

	page, limit := paginationParams(c)

	output, err := h.uc.ListStoreOrders(c.Request().Context(), storeID, userID, status, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}

// UpdateOrderStatus handles a vendor advancing an order through fulfilment.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req *updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	next := entity.OrderStatus(req.Status)
	if !next.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown order status")
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), orderID, userID, next)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// StripeWebhook receives payment events from the gateway. The raw body is
// needed for signature verification, so this route must not be wrapped by
// any body-consuming middleware.
func (h *OrderHandler) StripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYLOAD", "Unable to read webhook payload")
	}

	event, err := h.gateway.VerifyWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", "error", err.Error())

		return response.BadRequest(c, "INVALID_SIGNATURE", "Webhook signature verification failed")
	}

	// Apply failures are logged and still acknowledged. Surfacing them
	// would make the gateway redeliver errors that are not retryable.
	if err := h.uc.ApplyWebhook(c.Request().Context(), event); err != nil {
		h.logger.Error("Failed to apply webhook event",
			"eventType", event.Type,
			"intentId", event.IntentID,
			"error", err.Error(),
		)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"received": true}, "Webhook processed")
}
