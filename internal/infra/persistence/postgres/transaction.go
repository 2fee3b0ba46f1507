// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"crave/internal/domain/repository"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil. An error or a panic from fn rolls the
// transaction back; the error is returned unchanged.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories builds repositories on one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) ProductRepo() repository.ProductRepository   { return NewProductRepository(r.tx) }
func (r txRepositories) CategoryRepo() repository.CategoryRepository { return NewCategoryRepository(r.tx) }
func (r txRepositories) CartRepo() repository.CartRepository         { return NewCartRepository(r.tx) }
func (r txRepositories) ProfileRepo() repository.ProfileRepository   { return NewProfileRepository(r.tx) }
func (r txRepositories) OrderRepo() repository.OrderRepository       { return NewOrderRepository(r.tx) }
func (r txRepositories) UserRepo() repository.UserRepository         { return NewUserRepository(r.tx) }
func (r txRepositories) AdminRepo() repository.AdminRepository       { return NewAdminRepository(r.tx) }
func (r txRepositories) SessionStore() repository.SessionStore       { return NewSessionStore(r.tx) }
