package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// Mutation is one staged change applied inside the unit of work's transaction
type Mutation struct {
	Name  string
	Apply func(tx *gorm.DB) error
}

// UnitOfWork stages entity-state mutations and commits them in a single
// transaction. Either every staged mutation is applied or none is.
type UnitOfWork struct {
	db        *gorm.DB
	isolation sql.IsolationLevel
	mutations []Mutation
}

// NewUnitOfWork creates an empty unit of work bound to db
func NewUnitOfWork(db *gorm.DB, isolation sql.IsolationLevel) *UnitOfWork {
	return &UnitOfWork{db: db, isolation: isolation}
}

// Stage appends a mutation. Mutations run in the order they were staged.
func (u *UnitOfWork) Stage(name string, apply func(tx *gorm.DB) error) *UnitOfWork {
	u.mutations = append(u.mutations, Mutation{Name: name, Apply: apply})
	return u
}

// Len returns the number of staged mutations
func (u *UnitOfWork) Len() int {
	return len(u.mutations)
}

// Commit runs all staged mutations in one transaction. The first failing
// mutation rolls back the transaction and its error is returned wrapped
// with the mutation name.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if len(u.mutations) == 0 {
		return nil
	}

	var opts []*sql.TxOptions
	if u.isolation != sql.LevelDefault {
		opts = append(opts, &sql.TxOptions{Isolation: u.isolation})
	}

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range u.mutations {
			if err := m.Apply(tx); err != nil {
				return fmt.Errorf("%s: %w", m.Name, err)
			}
		}
		return nil
	}, opts...)
}
