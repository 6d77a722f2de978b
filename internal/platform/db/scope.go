package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of *pgx.Conn a unit of work is allowed to use.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Scope runs one unit of work against one connection: acquire, invoke,
// release on every exit path. Anything the unit of work returns that is not
// already part of the error taxonomy is treated as a driver failure and
// wrapped as a DataAccessError; the scope never interprets result shape,
// only failures.
type Scope struct {
	provider *Provider
}

func NewScope(provider *Provider) *Scope {
	return &Scope{provider: provider}
}

// Execute acquires a connection, runs fn against it and closes the
// connection regardless of outcome. op names the operation for error
// wrapping.
func (s *Scope) Execute(ctx context.Context, op string, fn func(ctx context.Context, q Querier) error) error {
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if err := fn(ctx, conn); err != nil {
		return wrapUnitError(op, err)
	}
	return nil
}

// wrapUnitError lets taxonomy members through untouched and wraps anything
// else as a driver failure.
func wrapUnitError(op string, err error) error {
	if errors.Is(err, ErrEntityNotFound) || errors.Is(err, ErrNoDataFound) || IsDataAccess(err) {
		return err
	}
	return AccessError(op, err)
}
