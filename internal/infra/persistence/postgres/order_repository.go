package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists the order and all of its item snapshots. GORM writes
// the association rows together with the parent, so the whole graph
// lands in one statement batch inside the caller's transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer, store or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindByID retrieves an order with items, products, customer and store.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer").
		Preload("Store").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByPaymentIntentID retrieves the order joined to the given intent.
func (repo *orderRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Store").
		Where("payment_intent_id = ?", intentID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by payment intent")
	}

	return toOrderDomain(&orderM), nil
}

// SetPaymentIntentID attaches the gateway's intent id to the order.
func (repo *orderRepository) SetPaymentIntentID(ctx context.Context, id uuid.UUID, intentID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_intent_id", intentID)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "payment intent already attached to another order")
		}

		return errors.Wrap(result.Error, "failed to set payment intent id")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateStatus performs the conditional transition. The WHERE clause on
// the expected status makes the write atomic: of two racing updates,
// exactly one matches the row.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, expected.String()).
		Update("status", next.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing order from a lost race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrStaleOrderStatus
	}

	return nil
}

// ListByCustomer returns the customer's orders newest-first with the total count.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("customer_id = ?", customerID)

	return repo.listOrders(query, offset, limit)
}

// ListByStore returns the store's orders newest-first, optionally
// filtered by status, with the total count.
func (repo *orderRepository) ListByStore(ctx context.Context, storeID uuid.UUID, status *entity.OrderStatus, offset, limit int) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("store_id = ?", storeID)

	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	return repo.listOrders(query, offset, limit)
}

// CountByCustomerAndStatus counts the customer's orders in the given status.
func (repo *orderRepository) CountByCustomerAndStatus(ctx context.Context, customerID uuid.UUID, status entity.OrderStatus) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("customer_id = ? AND status = ?", customerID, status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customer orders")
	}

	return count, nil
}

func (repo *orderRepository) listOrders(query *gorm.DB, offset, limit int) ([]*entity.Order, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		StoreID:         data.StoreID,
		Total:           data.Total,
		Status:          entity.OrderStatus(data.Status),
		PaymentIntentID: data.PaymentIntentID,
		ShippingAddress: entity.ShippingAddress{
			Street:       data.ShippingAddress.Street,
			Number:       data.ShippingAddress.Number,
			Complement:   data.ShippingAddress.Complement,
			Neighborhood: data.ShippingAddress.Neighborhood,
			City:         data.ShippingAddress.City,
			State:        data.ShippingAddress.State,
			ZipCode:      data.ShippingAddress.ZipCode,
		},
		Customer:  toUserDomain(data.Customer),
		Store:     toStoreDomain(data.Store),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	order.Items = make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			Price:     itemM.Price,
			Product:   toProductDomain(itemM.Product),
		})
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		StoreID:         data.StoreID,
		Total:           data.Total,
		Status:          data.Status.String(),
		PaymentIntentID: data.PaymentIntentID,
		ShippingAddress: model.ShippingAddressColumns{
			Street:       data.ShippingAddress.Street,
			Number:       data.ShippingAddress.Number,
			Complement:   data.ShippingAddress.Complement,
			Neighborhood: data.ShippingAddress.Neighborhood,
			City:         data.ShippingAddress.City,
			State:        data.ShippingAddress.State,
			ZipCode:      data.ShippingAddress.ZipCode,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	orderM.Items = make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return orderM
}
