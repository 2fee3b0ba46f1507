package postgres

import (
	"context"
	"time"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderItemBatchSize caps the rows per INSERT when writing order items.
const orderItemBatchSize = 100

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate order id")
		}
		order.ID = id
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("order references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) CreateItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		if item.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return errors.Wrap(err, "failed to generate order item id")
			}
			item.ID = id
		}
		itemModels = append(itemModels, fromOrderItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(itemModels, orderItemBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i, itemM := range itemModels {
		items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *orderRepository) FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return repo.findOne(ctx, "order_number = ?", orderNumber)
}

// findOne reads from the primary: callbacks and status updates arrive right
// after the order was written and must not miss it on a lagging replica.
func (repo *orderRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(cond, arg).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrdersDomain(orderModels), nil
}

func (repo *orderRepository) List(ctx context.Context, opts repository.OrderListOptions) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if opts.Status != nil {
		query = query.Where("status = ?", string(*opts.Status))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrdersDomain(orderModels), nil
}

func (repo *orderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	items := make([]*entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toOrderItemDomain(itemM))
	}

	return items, nil
}

// MarkPaymentCompleted is a single conditional UPDATE so replayed callbacks never
// write twice. A pending order moves to processing; any later status is kept.
func (repo *orderRepository) MarkPaymentCompleted(ctx context.Context, orderID uuid.UUID, reference string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_status <> ? AND status <> ?",
			orderID, string(entity.PaymentStatusCompleted), string(entity.OrderStatusCancelled)).
		Updates(map[string]any{
			"payment_status":    string(entity.PaymentStatusCompleted),
			"payment_reference": reference,
			"status": gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END",
				string(entity.OrderStatusPending), string(entity.OrderStatusProcessing)),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark payment completed")
	}

	return result.RowsAffected > 0, nil
}

func (repo *orderRepository) MarkPaymentFailed(ctx context.Context, orderID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_status = ?", orderID, string(entity.PaymentStatusPending)).
		Updates(map[string]any{
			"payment_status": string(entity.PaymentStatusFailed),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark payment failed")
	}

	return result.RowsAffected > 0, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to entity.OrderStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", orderID, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update order status")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	addr := data.ShippingAddress.Data()

	return &entity.Order{
		ID:               data.ID,
		UserID:           data.UserID,
		OrderNumber:      data.OrderNumber,
		TotalAmount:      data.TotalAmount,
		Status:           entity.OrderStatus(data.Status),
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		PaymentReference: data.PaymentReference,
		ShippingAddress: entity.ShippingAddress{
			FullName:   addr.FullName,
			Phone:      addr.Phone,
			Street:     addr.Street,
			City:       addr.City,
			State:      addr.State,
			Country:    addr.Country,
			PostalCode: addr.PostalCode,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toOrdersDomain(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	addr := data.ShippingAddress

	return &model.OrderModel{
		ID:               data.ID,
		UserID:           data.UserID,
		OrderNumber:      data.OrderNumber,
		TotalAmount:      data.TotalAmount,
		Status:           string(data.Status),
		PaymentStatus:    string(data.PaymentStatus),
		PaymentReference: data.PaymentReference,
		ShippingAddress: datatypes.NewJSONType(model.ShippingAddressJSON{
			FullName:   addr.FullName,
			Phone:      addr.Phone,
			Street:     addr.Street,
			City:       addr.City,
			State:      addr.State,
			Country:    addr.Country,
			PostalCode: addr.PostalCode,
		}),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
	}
}
