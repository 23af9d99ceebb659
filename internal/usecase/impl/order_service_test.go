package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	mockUC "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	storeRepo   *mockRepo.MockStoreRepository
	productRepo *mockRepo.MockProductRepository
	couponRepo  *mockRepo.MockCouponRepository
	gateway     *mockSvc.MockPaymentGateway
	rewards     *mockUC.MockRewardUsecase
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	rewards := mockUC.NewMockRewardUsecase(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		CouponRepo:  couponRepo,
		Gateway:     gateway,
		Rewards:     rewards,
		Dispatch:    usecase.SyncDispatcher(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     service,
		txManager:   txManager,
		orderRepo:   orderRepo,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		gateway:     gateway,
		rewards:     rewards,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	storeID := uuid.New()
	orderID := uuid.New()
	productA := &entity.Product{ID: uuid.New(), StoreID: storeID, Price: 10.50}
	productB := &entity.Product{ID: uuid.New(), StoreID: storeID, Price: 5.25}

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, Active: true}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, productA.ID).Return(productA, nil)
	fx.productRepo.EXPECT().FindByID(ctx, productB.ID).Return(productB, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	})

	fx.gateway.EXPECT().
		CreatePaymentIntent(ctx, int64(2625), "brl", map[string]string{"orderId": orderID.String()}).
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)
	fx.orderRepo.EXPECT().SetPaymentIntentID(ctx, orderID, "pi_123").Return(nil)

	output, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID: customerID,
		StoreID:    storeID,
		Items: []usecase.OrderItemInput{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
	assert.InDelta(t, 26.25, output.Order.Total, 1e-9)
	assert.Equal(t, "pi_123_secret", output.ClientSecret)
	require.NotNil(t, output.Order.PaymentIntentID)
	assert.Equal(t, "pi_123", *output.Order.PaymentIntentID)

	// Item prices are frozen from the catalogue at order time.
	require.Len(t, output.Order.Items, 2)
	assert.InDelta(t, 10.50, output.Order.Items[0].Price, 1e-9)
	assert.InDelta(t, 5.25, output.Order.Items[1].Price, 1e-9)
}

func TestOrderService_CreateOrder_AppliesCoupon(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	storeID := uuid.New()
	orderID := uuid.New()
	product := &entity.Product{ID: uuid.New(), StoreID: storeID, Price: 100.0}
	coupon := &entity.Coupon{ID: uuid.New(), StoreID: storeID, Code: "SAVE10", DiscountPercent: 10, Active: true}

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, Active: true}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)
	txCouponRepo := mockRepo.NewMockCouponRepository(t)
	txCouponRepo.EXPECT().FindByStoreAndCode(ctx, storeID, "SAVE10").Return(coupon, nil)
	txCouponRepo.EXPECT().IncrementUsage(ctx, coupon.ID).Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		factory.EXPECT().NewCouponRepository().Return(txCouponRepo)
	})

	fx.gateway.EXPECT().
		CreatePaymentIntent(ctx, int64(9000), "brl", map[string]string{"orderId": orderID.String()}).
		Return(&service.PaymentIntent{ID: "pi_c", ClientSecret: "pi_c_secret"}, nil)
	fx.orderRepo.EXPECT().SetPaymentIntentID(ctx, orderID, "pi_c").Return(nil)

	output, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		StoreID:    storeID,
		Items:      []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		CouponCode: "SAVE10",
	})

	require.NoError(t, err)
	assert.InDelta(t, 90.0, output.Order.Total, 1e-9)
}

func TestOrderService_CreateOrder_CouponNotUsable(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	storeID := uuid.New()
	product := &entity.Product{ID: uuid.New(), StoreID: storeID, Price: 100.0}
	coupon := &entity.Coupon{ID: uuid.New(), StoreID: storeID, Code: "DEAD", DiscountPercent: 10, Active: false}

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, Active: true}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	txCouponRepo := mockRepo.NewMockCouponRepository(t)
	txCouponRepo.EXPECT().FindByStoreAndCode(ctx, storeID, "DEAD").Return(coupon, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))
		factory.EXPECT().NewCouponRepository().Return(txCouponRepo)
	})

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		StoreID:    storeID,
		Items:      []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		CouponCode: "DEAD",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponNotUsable))
}

func TestOrderService_CreateOrder_UnknownProductNeverPersists(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	storeID := uuid.New()
	known := &entity.Product{ID: uuid.New(), StoreID: storeID, Price: 10.0}
	ghostID := uuid.New()

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, Active: true}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
	fx.productRepo.EXPECT().FindByID(ctx, ghostID).Return(nil, repository.ErrProductNotFound)

	// No transaction and no order write: pricing fails before persistence,
	// so a bad line item can never leave a partial order behind. The
	// fixture mocks verify that nothing else was called.
	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		StoreID:    storeID,
		Items: []usecase.OrderItemInput{
			{ProductID: known.ID, Quantity: 1},
			{ProductID: ghostID, Quantity: 2},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_NoItems(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		StoreID:    uuid.New(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_InactiveStore(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	storeID := uuid.New()
	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, Active: false}, nil)

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		StoreID:    storeID,
		Items:      []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreInactive))
}

func TestOrderService_CreateOrder_GatewayFailureCancelsOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	storeID := uuid.New()
	orderID := uuid.New()
	product := &entity.Product{ID: uuid.New(), StoreID: storeID, Price: 10.0}

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, Active: true}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	})

	fx.gateway.EXPECT().
		CreatePaymentIntent(ctx, int64(1000), "brl", mock.Anything).
		Return(nil, errors.New("stripe is down"))

	// Compensation: the unpaid order must be cancelled.
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusCancelled).
		Return(nil)

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		StoreID:    storeID,
		Items:      []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentGatewayFailed))
}

func TestOrderService_CreateOrder_GatewayFailureReleasesCoupon(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	storeID := uuid.New()
	orderID := uuid.New()
	product := &entity.Product{ID: uuid.New(), StoreID: storeID, Price: 100.0}
	coupon := &entity.Coupon{ID: uuid.New(), StoreID: storeID, Code: "SAVE10", DiscountPercent: 10, Active: true}

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, Active: true}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)
	txCouponRepo := mockRepo.NewMockCouponRepository(t)
	txCouponRepo.EXPECT().FindByStoreAndCode(ctx, storeID, "SAVE10").Return(coupon, nil)
	txCouponRepo.EXPECT().IncrementUsage(ctx, coupon.ID).Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		factory.EXPECT().NewCouponRepository().Return(txCouponRepo)
	})

	fx.gateway.EXPECT().
		CreatePaymentIntent(ctx, int64(9000), "brl", mock.Anything).
		Return(nil, errors.New("stripe is down"))

	// Compensation cancels the order and gives the coupon use back.
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusCancelled).
		Return(nil)
	fx.couponRepo.EXPECT().DecrementUsage(ctx, coupon.ID).Return(nil)

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		StoreID:    storeID,
		Items:      []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		CouponCode: "SAVE10",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentGatewayFailed))
}

func TestOrderService_GetOrder_ForbiddenForStranger(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     entity.OrderStatusPaid,
		Store:      &entity.Store{ID: uuid.New(), OwnerID: uuid.New()},
	}
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, orderID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbiddenOwnership))
}

func TestOrderService_GetOrder_AllowsCustomerAndOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	customerID := uuid.New()
	ownerID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		CustomerID: customerID,
		Status:     entity.OrderStatusPaid,
		Store:      &entity.Store{ID: uuid.New(), OwnerID: ownerID},
	}
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil).Twice()

	got, err := fx.service.GetOrder(ctx, orderID, customerID)
	require.NoError(t, err)
	assert.Equal(t, orderID, got.ID)

	got, err = fx.service.GetOrder(ctx, orderID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, orderID, got.ID)
}

func TestOrderService_UpdateStatus_IllegalTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     entity.OrderStatusPending,
		Store:      &entity.Store{ID: uuid.New(), OwnerID: ownerID},
	}
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	// SHIPPED is vendor-assignable in general, but not from PENDING.
	_, err := fx.service.UpdateStatus(ctx, orderID, ownerID, entity.OrderStatusShipped)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_UpdateStatus_PaidIsReservedForWebhook(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), uuid.New(), entity.OrderStatusPaid)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_UpdateStatus_NotOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     entity.OrderStatusPaid,
		Store:      &entity.Store{ID: uuid.New(), OwnerID: uuid.New()},
	}
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.UpdateStatus(ctx, orderID, uuid.New(), entity.OrderStatusProcessing)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbiddenOwnership))
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     entity.OrderStatusPaid,
		Store:      &entity.Store{ID: uuid.New(), OwnerID: ownerID},
	}
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPaid, entity.OrderStatusProcessing).
		Return(nil)

	got, err := fx.service.UpdateStatus(ctx, orderID, ownerID, entity.OrderStatusProcessing)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, got.Status)
}

func TestOrderService_ApplyWebhook_PaidDispatchesSettlement(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	intentID := "pi_hook"
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusPending, PaymentIntentID: &intentID}

	fx.orderRepo.EXPECT().FindByPaymentIntentID(ctx, intentID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusPaid).
		Return(nil)
	fx.rewards.EXPECT().SettleOrderReward(mock.Anything, orderID).Return(nil).Once()

	err := fx.service.ApplyWebhook(ctx, &service.WebhookEvent{
		Type:     service.WebhookPaymentSucceeded,
		IntentID: intentID,
	})

	require.NoError(t, err)
}

func TestOrderService_ApplyWebhook_RedeliveryIsNoOp(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	intentID := "pi_hook"
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusPaid, PaymentIntentID: &intentID}

	fx.orderRepo.EXPECT().FindByPaymentIntentID(ctx, intentID).Return(order, nil)
	// The conditional write finds the order already moved off PENDING.
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusPaid).
		Return(repository.ErrStaleOrderStatus)

	err := fx.service.ApplyWebhook(ctx, &service.WebhookEvent{
		Type:     service.WebhookPaymentSucceeded,
		IntentID: intentID,
	})

	// Acknowledged without dispatching settlement a second time.
	require.NoError(t, err)
}

func TestOrderService_ApplyWebhook_FailedEventNoSettlement(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	intentID := "pi_fail"
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusPending, PaymentIntentID: &intentID}

	fx.orderRepo.EXPECT().FindByPaymentIntentID(ctx, intentID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusFailed).
		Return(nil)

	err := fx.service.ApplyWebhook(ctx, &service.WebhookEvent{
		Type:     service.WebhookPaymentFailed,
		IntentID: intentID,
	})

	require.NoError(t, err)
}

func TestOrderService_ApplyWebhook_UnknownIntentAcknowledged(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindByPaymentIntentID(ctx, "pi_ghost").
		Return(nil, repository.ErrOrderNotFound)

	err := fx.service.ApplyWebhook(ctx, &service.WebhookEvent{
		Type:     service.WebhookPaymentSucceeded,
		IntentID: "pi_ghost",
	})

	require.NoError(t, err)
}

func TestOrderService_ApplyWebhook_IgnoresOtherEventTypes(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.ApplyWebhook(context.Background(), &service.WebhookEvent{
		Type:     "charge.refunded",
		IntentID: "pi_any",
	})

	require.NoError(t, err)
}
