package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/core/apperror"
	"tally/internal/domain/invoice"
)

func TestInvoiceRepoUpdateState(t *testing.T) {
	repo := NewInvoiceRepo(&TxManager{})

	inv := &invoice.Invoice{
		ID:       7,
		CompCode: "apple",
		Amount:   decimal.RequireFromString("250"),
		Paid:     true,
	}
	paidDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	inv.PaidDate = &paidDate

	t.Run("writes only the payment state", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("UPDATE 1")}

		err := repo.UpdateState(txContext(tx), inv)

		require.NoError(t, err)
		require.Len(t, tx.gotSQL, 1)
		assert.Equal(t,
			"UPDATE invoices SET amt = $1, paid = $2, paid_date = $3 WHERE id = $4",
			tx.gotSQL[0])
		assert.Equal(t, []any{inv.Amount, true, &paidDate, int64(7)}, tx.gotArgs[0])
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("UPDATE 0")}

		err := repo.UpdateState(txContext(tx), inv)

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestInvoiceRepoDelete(t *testing.T) {
	repo := NewInvoiceRepo(&TxManager{})

	t.Run("removes the row", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("DELETE 1")}

		err := repo.Delete(txContext(tx), 7)

		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM invoices WHERE id = $1", tx.gotSQL[0])
		assert.Equal(t, []any{int64(7)}, tx.gotArgs[0])
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("DELETE 0")}

		err := repo.Delete(txContext(tx), 42)

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestInvoiceRepoQueryShapes(t *testing.T) {
	repo := NewInvoiceRepo(&TxManager{})

	t.Run("detail join aliases company columns for nested scanning", func(t *testing.T) {
		q := repo.Builder().
			Select(
				"i.id", "i.comp_code", "i.amt", "i.paid", "i.add_date", "i.paid_date",
				`c.code AS "company.code"`,
				`c.name AS "company.name"`,
				`c.description AS "company.description"`,
			).
			From(invoicesTable + " AS i").
			Join(companiesTable + " AS c ON i.comp_code = c.code").
			Where("i.id = ?", int64(7)).
			Limit(1)

		sql, args, err := q.ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, `c.code AS "company.code"`)
		assert.Contains(t, sql, "JOIN companies AS c ON i.comp_code = c.code")
		assert.Equal(t, []any{int64(7)}, args)
	})

	t.Run("update-path read locks the row", func(t *testing.T) {
		q := repo.Builder().
			Select("id", "comp_code", "amt", "paid", "add_date", "paid_date").
			From(invoicesTable).
			Where("id = ?", int64(7)).
			Suffix("FOR UPDATE")

		sql, _, err := q.ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, "FOR UPDATE")
	})
}
