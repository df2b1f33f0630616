package repository

import (
	"context"
	"fmt"
	"reflect"

	budgetinfra "github.com/amirasaad/pocketpilot/infra/repository/budget"
	goalinfra "github.com/amirasaad/pocketpilot/infra/repository/goal"
	savingsinfra "github.com/amirasaad/pocketpilot/infra/repository/savings"
	transactioninfra "github.com/amirasaad/pocketpilot/infra/repository/transaction"
	userinfra "github.com/amirasaad/pocketpilot/infra/repository/user"
	voiceplaninfra "github.com/amirasaad/pocketpilot/infra/repository/voiceplan"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	"github.com/amirasaad/pocketpilot/pkg/repository/budget"
	"github.com/amirasaad/pocketpilot/pkg/repository/goal"
	"github.com/amirasaad/pocketpilot/pkg/repository/savings"
	"github.com/amirasaad/pocketpilot/pkg/repository/transaction"
	"github.com/amirasaad/pocketpilot/pkg/repository/user"
	"github.com/amirasaad/pocketpilot/pkg/repository/voiceplan"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do share the transaction session.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			typeOf[user.Repository]():         func(db *gorm.DB) any { return userinfra.New(db) },
			typeOf[transaction.Repository]():  func(db *gorm.DB) any { return transactioninfra.New(db) },
			typeOf[budget.DomainRepository](): func(db *gorm.DB) any { return budgetinfra.NewDomainRepository(db) },
			typeOf[budget.PlanRepository]():   func(db *gorm.DB) any { return budgetinfra.NewPlanRepository(db) },
			typeOf[goal.Repository]():         func(db *gorm.DB) any { return goalinfra.New(db) },
			typeOf[savings.Repository]():      func(db *gorm.DB) any { return savingsinfra.New(db) },
			typeOf[voiceplan.Repository]():    func(db *gorm.DB) any { return voiceplaninfra.New(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return MapGormErrorToDomain(u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	}))
}

// GetRepository returns the repository registered for repoType, bound to
// the transaction inside Do and to the base connection otherwise.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}
