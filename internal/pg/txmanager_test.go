package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTXManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(conn *Conn) TransactionalFn
		nested    bool
		expectErr bool
	}{
		{
			name: "Commits on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET point = $1 WHERE id = $2")).
					WithArgs(100, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := conn.Exec(ctx, "UPDATE users SET point = $1 WHERE id = $2", 100, 1)
					return err
				}
			},
		},
		{
			name: "Rolls back when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					return errors.New("insufficient balance")
				}
			},
			expectErr: true,
		},
		{
			name: "Begin error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					t.Error("fn must not run without a transaction")
					return nil
				}
			},
			expectErr: true,
		},
		{
			name: "Nested call joins outer transaction",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					return nil
				}
			},
			nested: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			manager := NewTXManager(mock)
			conn := New(mock)

			fn := tt.fn(conn)
			if tt.nested {
				inner := fn
				fn = func(ctx context.Context) error {
					return manager.Begin(ctx, inner)
				}
			}

			err = manager.Begin(context.Background(), fn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTXManager_RollbackOnPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	manager := NewTXManager(mock)
	assert.Panics(t, func() {
		_ = manager.Begin(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_UsesPoolOutsideTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	conn := New(mock)
	tag, err := conn.Exec(context.Background(), "DELETE FROM users WHERE id = $1", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.RowsAffected())
	assert.NoError(t, mock.ExpectationsWereMet())
}
