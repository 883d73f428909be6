package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	SessionRepo() RefreshSessionRepository
}

// TransactionManager runs a unit of work inside a single store transaction.
// The callback's repositories all share that transaction; returning an error
// rolls it back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
