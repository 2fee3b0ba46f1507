package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestOrderRepository_MarkPaymentCompleted(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		wantChanged bool
	}{
		{name: "first callback updates the order", affected: 1, wantChanged: true},
		{name: "replayed callback is a no-op", affected: 0, wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewOrderRepository(db)

			mock.ExpectExec(`UPDATE "orders" SET .* WHERE id = \$\d+ AND payment_status <> \$\d+ AND status <> \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			changed, err := repo.MarkPaymentCompleted(context.Background(), uuid.New(), "FLW-123")
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderRepository_MarkPaymentFailed_OnlyWhilePending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`UPDATE "orders" SET .* WHERE id = \$\d+ AND payment_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := repo.MarkPaymentFailed(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByNumber_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE order_number = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByNumber(context.Background(), "ORD-MISSING")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateItems_EmptyIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	require.NoError(t, repo.CreateItems(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_DeleteByUser_ReportsRemovedLines(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "cart_items" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_UpdateQuantity_OtherUsersLine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectExec(`UPDATE "cart_items" SET .* WHERE id = \$\d+ AND user_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateQuantity(context.Background(), uuid.New(), uuid.New(), 2)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_Upsert_ReadsBackExistingLine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	existingID := uuid.New()
	userID := uuid.New()
	productID := uuid.New()
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "cart_items" .* ON CONFLICT \("user_id","product_id"\) DO UPDATE SET .* RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "created_at", "updated_at"}).
			AddRow(existingID, userID, productID, 4, createdAt, createdAt))

	item := &entity.CartItem{UserID: userID, ProductID: productID, Quantity: 4}
	require.NoError(t, repo.Upsert(context.Background(), item))

	assert.Equal(t, existingID, item.ID)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, createdAt, item.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_HidesInactiveAndEscapesSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE is_active = \$1 AND name ILIKE \$2 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "images", "specifications"}).
			AddRow(uuid.New(), "Jollof kit", "12.50", `["a.png"]`, `{"size":"L"}`))

	products, err := repo.List(context.Background(), entity.ProductFilter{Search: "100%"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Jollof kit", products[0].Name)
	assert.Equal(t, "12.5", products[0].Price.String())
	assert.Equal(t, []string{"a.png"}, products[0].Images)
	assert.Equal(t, map[string]string{"size": "L"}, products[0].Specifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindByIDs_EmptyInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	products, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_IsAdmin_MissingRowIsFalse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_admin"}))

	isAdmin, err := repo.IsAdmin(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, isAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "missing user", affected: 0, wantErr: repository.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectExec(`UPDATE "users" SET "password_hash"=\$1,"updated_at"=\$2 WHERE id = \$3`).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.UpdatePasswordHash(context.Background(), uuid.New(), "$2a$12$new")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionStore_Revoke_SkipsRevokedSessions(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewSessionStore(db)

	mock.ExpectExec(`UPDATE "sessions" SET "revoked_at"=\$1 WHERE id = \$2 AND revoked_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Revoke(context.Background(), uuid.New(), time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	userID := uuid.New()
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if _, err := f.CartRepo().DeleteByUser(context.Background(), userID); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		_, err := f.OrderRepo().UpdateStatus(context.Background(), uuid.New(),
			entity.OrderStatusProcessing, entity.OrderStatusShipped)

		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
