package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction. Usecases receive it from TransactionManager.Execute and must
// not retain the repositories beyond the callback.
type RepositoryFactory interface {
	UserRepo() UserRepository
	BookingRepo() BookingRepository
	OrderRepo() OrderRepository
}

// TransactionManager defines the interface for managing database transactions.
// Registration uses it to keep the username pre-check and the insert in one
// atomic unit; the unique constraint remains the authoritative conflict check.
type TransactionManager interface {
	// Execute runs fn within a single transaction, committing on nil return
	// and rolling back on error or panic.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
