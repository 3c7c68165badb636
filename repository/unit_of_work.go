package repository

import (
	"context"
	"fmt"

	"crapstable/database"
	"crapstable/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// UnitOfWork groups the repositories behind a single transaction so a
// roll's game snapshot and its resolution ledger rows commit atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	GameRepository() interfaces.GameRepository
	BetRepository() interfaces.BetRepository
	BetResolutionRepository() interfaces.BetResolutionRepository
}

// UnitOfWorkFactory creates units of work; one per inbound operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

type unitOfWork struct {
	db  *database.DB
	tx  pgx.Tx
	ctx context.Context

	gameRepo       interfaces.GameRepository
	betRepo        interfaces.BetRepository
	resolutionRepo interfaces.BetResolutionRepository
}

type unitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) *unitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

// Create creates a new UnitOfWork
func (f *unitOfWorkFactory) Create() UnitOfWork {
	return &unitOfWork{db: f.db}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.gameRepo = newGameRepositoryWithTx(tx)
	u.betRepo = newBetRepositoryWithTx(tx)
	u.resolutionRepo = newBetResolutionRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// GameRepository returns the game repository for this unit of work
func (u *unitOfWork) GameRepository() interfaces.GameRepository {
	return u.gameRepo
}

// BetRepository returns the bet repository for this unit of work
func (u *unitOfWork) BetRepository() interfaces.BetRepository {
	return u.betRepo
}

// BetResolutionRepository returns the resolution repository for this unit of work
func (u *unitOfWork) BetResolutionRepository() interfaces.BetResolutionRepository {
	return u.resolutionRepo
}
