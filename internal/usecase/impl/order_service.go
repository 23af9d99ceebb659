package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// vendorTransitions are the order statuses a store owner may move an
// order into. PAID and FAILED are reserved for the payment webhook.
var vendorTransitions = map[entity.OrderStatus]struct{}{
	entity.OrderStatusProcessing: {},
	entity.OrderStatusShipped:    {},
	entity.OrderStatusDelivered:  {},
	entity.OrderStatusCancelled:  {},
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	gateway     service.PaymentGateway
	rewards     usecase.RewardUsecase
	dispatch    usecase.TaskDispatcher
	currency    string
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	CouponRepo  repository.CouponRepository
	Gateway     service.PaymentGateway
	Rewards     usecase.RewardUsecase
	Dispatch    usecase.TaskDispatcher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	currency := ""
	if params.Config != nil && params.Config.Stripe != nil {
		currency = params.Config.Stripe.Currency
	}

	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		couponRepo:  params.CouponRepo,
		gateway:     params.Gateway,
		rewards:     params.Rewards,
		dispatch:    params.Dispatch,
		currency:    currency,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices the requested items, persists the order atomically
// and opens a payment intent. If the gateway rejects the intent, the
// just-created order is cancelled so no order waits for a payment that
// can never arrive.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	srv.log(ctx).Info("Creating order", slog.Any("customerID", input.CustomerID), slog.Any("storeID", input.StoreID), slog.Int("items", len(input.Items)))

	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order has no items")
	}

	store, err := srv.storeRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store does not exist")
		}

		return nil, errors.Wrap(err, "failed to load store for order")
	}
	if !store.Active {
		return nil, errors.Wrap(domainerrors.ErrStoreInactive, "store is not accepting orders")
	}

	items, total, err := srv.priceItems(ctx, input)
	if err != nil {
		return nil, err
	}

	createdOrder, usedCouponID, err := srv.persistOrder(ctx, input, items, total)
	if err != nil {
		srv.log(ctx).Error("Failed to execute order creation transaction", slog.Any("customerID", input.CustomerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	intent, err := srv.gateway.CreatePaymentIntent(ctx, toMinorUnits(createdOrder.Total), srv.currency, map[string]string{
		"orderId": createdOrder.ID.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Payment gateway rejected intent, cancelling order", slog.Any("orderID", createdOrder.ID), slog.Any("error", err))
		srv.cancelUnpaid(ctx, createdOrder.ID, usedCouponID)

		return nil, errors.Wrap(domainerrors.ErrPaymentGatewayFailed, "failed to open payment intent")
	}

	if err := srv.orderRepo.SetPaymentIntentID(ctx, createdOrder.ID, intent.ID); err != nil {
		// Without the intent id the webhook can never find this order.
		srv.log(ctx).Error("Failed to attach payment intent, cancelling order", slog.Any("orderID", createdOrder.ID), slog.Any("error", err))
		srv.cancelUnpaid(ctx, createdOrder.ID, usedCouponID)

		return nil, errors.Wrap(err, "failed to attach payment intent to order")
	}
	createdOrder.PaymentIntentID = &intent.ID

	srv.log(ctx).Info("Order created", slog.Any("orderID", createdOrder.ID), slog.Float64("total", createdOrder.Total))

	return &usecase.CreateOrderOutput{Order: createdOrder, ClientSecret: intent.ClientSecret}, nil
}

// priceItems resolves every requested product against the live catalogue
// and builds the immutable item snapshots. Prices are frozen here; later
// catalogue edits never change what this order charges.
func (srv *orderService) priceItems(ctx context.Context, input *usecase.CreateOrderInput) ([]*entity.OrderItem, float64, error) {
	items := make([]*entity.OrderItem, 0, len(input.Items))
	total := 0.0

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, 0, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
		}

		product, err := srv.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, 0, errors.Wrap(domainerrors.ErrProductNotFound, "ordered product does not exist")
			}

			return nil, 0, errors.Wrap(err, "failed to load product for order")
		}
		if product.StoreID != input.StoreID {
			return nil, 0, errors.Wrap(domainerrors.ErrValidationFailed, "product belongs to another store")
		}

		item := &entity.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		}
		items = append(items, item)
		total += item.Subtotal()
	}

	return items, total, nil
}

// persistOrder writes the order with its items, applying and consuming a
// coupon when one was presented, all in one transaction. The consumed
// coupon's id is returned so a later compensation can release the use.
func (srv *orderService) persistOrder(ctx context.Context, input *usecase.CreateOrderInput, items []*entity.OrderItem, total float64) (*entity.Order, *uuid.UUID, error) {
	var createdOrder *entity.Order
	var usedCouponID *uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		finalTotal := total
		if input.CouponCode != "" {
			discounted, coupon, couponErr := srv.applyCoupon(ctx, repoFactory.NewCouponRepository(), input.StoreID, input.CouponCode, total)
			if couponErr != nil {
				return couponErr
			}
			finalTotal = discounted
			usedCouponID = &coupon.ID
		}

		order := &entity.Order{
			CustomerID:      input.CustomerID,
			StoreID:         input.StoreID,
			Total:           finalTotal,
			Status:          entity.OrderStatusPending,
			ShippingAddress: input.ShippingAddress,
			Items:           items,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return createdOrder, usedCouponID, nil
}

func (srv *orderService) applyCoupon(ctx context.Context, couponRepo repository.CouponRepository, storeID uuid.UUID, code string, total float64) (float64, *entity.Coupon, error) {
	coupon, err := couponRepo.FindByStoreAndCode(ctx, storeID, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return 0, nil, errors.Wrap(domainerrors.ErrCouponNotFound, "coupon does not exist for this store")
		}

		return 0, nil, errors.Wrap(err, "failed to load coupon")
	}

	if !coupon.IsUsable(time.Now()) {
		return 0, nil, errors.Wrap(domainerrors.ErrCouponNotUsable, "coupon is expired, exhausted or inactive")
	}

	if err := couponRepo.IncrementUsage(ctx, coupon.ID); err != nil {
		return 0, nil, errors.Wrap(err, "failed to consume coupon")
	}

	return coupon.Apply(total), coupon, nil
}

// cancelUnpaid is the compensation for a failed gateway call. The write
// is conditional on PENDING so it can never clobber a concurrent
// webhook's transition. A coupon consumed by the aborted checkout is
// released so the customer can spend it again.
func (srv *orderService) cancelUnpaid(ctx context.Context, orderID uuid.UUID, usedCouponID *uuid.UUID) {
	err := srv.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusCancelled)
	if err != nil && !errors.Is(err, repository.ErrStaleOrderStatus) {
		srv.log(ctx).Error("Failed to cancel order after gateway failure", slog.Any("orderID", orderID), slog.Any("error", err))
	}

	if usedCouponID == nil {
		return
	}
	if err := srv.couponRepo.DecrementUsage(ctx, *usedCouponID); err != nil {
		srv.log(ctx).Error("Failed to release coupon after gateway failure", slog.Any("couponID", *usedCouponID), slog.Any("error", err))
	}
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// GetOrder returns the full order detail for its customer or the owner
// of its store.
func (srv *orderService) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order does not exist")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if order.CustomerID != requesterID && (order.Store == nil || order.Store.OwnerID != requesterID) {
		srv.log(ctx).Warn("Order access denied", slog.Any("orderID", orderID), slog.Any("requesterID", requesterID))

		return nil, errors.Wrap(domainerrors.ErrForbiddenOwnership, "order belongs to another customer")
	}

	return order, nil
}

// ListUserOrders pages through the requesting customer's own orders.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*usecase.OrderListOutput, error) {
	offset, limit := normalizePage(page, limit)

	orders, total, err := srv.orderRepo.ListByCustomer(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return &usecase.OrderListOutput{Orders: orders, Total: total, Pages: pageCount(total, limit)}, nil
}

// ListStoreOrders pages through a store's orders for its owner.
func (srv *orderService) ListStoreOrders(ctx context.Context, storeID, requesterID uuid.UUID, status *entity.OrderStatus, page, limit int) (*usecase.OrderListOutput, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store does not exist")
		}

		return nil, errors.Wrap(err, "failed to load store")
	}
	if store.OwnerID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrForbiddenOwnership, "store belongs to another vendor")
	}

	if status != nil && !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status filter")
	}

	offset, limit := normalizePage(page, limit)

	orders, total, err := srv.orderRepo.ListByStore(ctx, storeID, status, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store orders")
	}

	return &usecase.OrderListOutput{Orders: orders, Total: total, Pages: pageCount(total, limit)}, nil
}

// UpdateStatus applies a vendor-driven transition. The write is
// conditional on the status the vendor saw, so two racing updates
// resolve to exactly one winner.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID, requesterID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	if _, ok := vendorTransitions[next]; !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "status is not vendor-assignable")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order does not exist")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if order.Store == nil || order.Store.OwnerID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrForbiddenOwnership, "order belongs to another vendor's store")
	}

	if !order.Status.CanTransitionTo(next) {
		srv.log(ctx).Warn("Rejected illegal status transition", slog.Any("orderID", orderID), slog.String("from", order.Status.String()), slog.String("to", next.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "transition not allowed from current status")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, order.Status, next); err != nil {
		if errors.Is(err, repository.ErrStaleOrderStatus) {
			return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "order status changed concurrently")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("from", order.Status.String()), slog.String("to", next.String()))
	order.Status = next

	return order, nil
}

// ApplyWebhook applies a verified gateway event. Redeliveries and
// out-of-order events resolve to no-ops: the conditional PENDING write
// admits exactly one effective transition per order, and reward
// settlement is dispatched only by the event that wins it.
func (srv *orderService) ApplyWebhook(ctx context.Context, event *service.WebhookEvent) error {
	var next entity.OrderStatus
	switch event.Type {
	case service.WebhookPaymentSucceeded:
		next = entity.OrderStatusPaid
	case service.WebhookPaymentFailed:
		next = entity.OrderStatusFailed
	default:
		srv.log(ctx).Debug("Ignoring unhandled webhook event", slog.String("type", event.Type))

		return nil
	}

	order, err := srv.orderRepo.FindByPaymentIntentID(ctx, event.IntentID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			// Likely an intent from another environment. Acknowledge so
			// the gateway stops redelivering.
			srv.log(ctx).Warn("Webhook for unknown payment intent", slog.String("intentID", event.IntentID))

			return nil
		}

		return errors.Wrap(err, "failed to find order by payment intent")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusPending, next); err != nil {
		if errors.Is(err, repository.ErrStaleOrderStatus) {
			srv.log(ctx).Info("Webhook already applied", slog.Any("orderID", order.ID), slog.String("type", event.Type))

			return nil
		}

		return errors.Wrap(err, "failed to apply webhook transition")
	}

	srv.log(ctx).Info("Webhook applied", slog.Any("orderID", order.ID), slog.String("status", next.String()))

	if next == entity.OrderStatusPaid {
		// Settlement must not block or fail the acknowledgement.
		orderID := order.ID
		settleCtx := context.WithoutCancel(ctx)
		srv.dispatch(func() {
			if settleErr := srv.rewards.SettleOrderReward(settleCtx, orderID); settleErr != nil {
				srv.logger.Error("Reward settlement failed", slog.Any("orderID", orderID), slog.Any("error", settleErr))
			}
		})
	}

	return nil
}

func normalizePage(page, limit int) (offset, normalized int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return (page - 1) * limit, limit
}

func pageCount(total int64, limit int) int {
	if total == 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}
