package postgres

import (
	"context"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
// Every query is scoped by user_id so one shopper can never touch another's lines.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by product")
	}

	return toCartItemDomain(&itemM), nil
}

func (repo *cartRepository) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// Upsert inserts the line or, when the user already has one for the product,
// overwrites its quantity. The stored row is read back into item.
func (repo *cartRepository) Upsert(ctx context.Context, item *entity.CartItem) error {
	if item.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate cart item id")
		}
		item.ID = id
	}
	itemM := fromCartItemDomain(item)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart item references an unknown product")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("cart quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	*item = *toCartItemDomain(itemM)

	return nil
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("cart quantity must be positive")
		}

		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
