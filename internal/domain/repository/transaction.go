package repository

import "context"

// TransactionManager runs multi-step writes (checkout, payment reconciliation,
// admin category changes, session rotation) atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Only
	// repositories obtained from the factory take part in the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

type RepositoryFactory interface {
	ProductRepo() ProductRepository
	CategoryRepo() CategoryRepository
	CartRepo() CartRepository
	ProfileRepo() ProfileRepository
	OrderRepo() OrderRepository
	UserRepo() UserRepository
	AdminRepo() AdminRepository
	SessionStore() SessionStore
}
