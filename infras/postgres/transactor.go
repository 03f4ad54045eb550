package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// TxFunc is the body of a unit of work. Returning an error rolls the transaction back.
type TxFunc func(tx *sqlx.Tx) error

type Transactor interface {
	WithTx(ctx context.Context, opts *sql.TxOptions, fn TxFunc) error
}

func NewTransactor(conn *Connection) Transactor {
	return conn
}

// WithTx runs fn inside a transaction on the write pool, committing on success.
func (c *Connection) WithTx(ctx context.Context, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := c.Write.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
