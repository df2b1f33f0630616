package repository

import (
	"context"
	"fmt"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Do runs the given function in a transaction boundary, providing a UnitOfWork for repository access.
// GetRepository provides access to repositories bound to the current session.
// Example usage:
//
//	repoAny, err := uow.GetRepository(reflect.TypeOf((*user.Repository)(nil)).Elem())
//	repo := repoAny.(user.Repository)
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the transaction inside Do and to the base session outside it.
	GetRepository(repoType reflect.Type) (any, error)
}

// Get resolves the repository interface T from the unit of work.
func Get[T any](uow UnitOfWork) (T, error) {
	var zero T
	repoType := reflect.TypeOf((*T)(nil)).Elem()
	repoAny, err := uow.GetRepository(repoType)
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("repository %v has unexpected type %T", repoType, repoAny)
	}
	return repo, nil
}
