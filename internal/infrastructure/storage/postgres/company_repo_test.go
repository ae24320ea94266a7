package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/core/apperror"
	"tally/internal/domain/company"
)

func TestCompanyRepoCreate(t *testing.T) {
	repo := NewCompanyRepo(&TxManager{})

	t.Run("builds a placeholder insert", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("INSERT 0 1")}
		desc := "Big blue."

		err := repo.Create(txContext(tx), &company.Company{Code: "ibm", Name: "IBM", Description: &desc})

		require.NoError(t, err)
		require.Len(t, tx.gotSQL, 1)
		assert.Equal(t,
			"INSERT INTO companies (code,name,description) VALUES ($1,$2,$3)",
			tx.gotSQL[0])
		assert.Equal(t, []any{"ibm", "IBM", &desc}, tx.gotArgs[0])
	})

	t.Run("unique violation becomes a conflict", func(t *testing.T) {
		tx := &fakeTx{execErr: &pgconn.PgError{Code: codeUniqueViolation}}

		err := repo.Create(txContext(tx), &company.Company{Code: "ibm", Name: "IBM"})

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
	})
}

func TestCompanyRepoUpdate(t *testing.T) {
	repo := NewCompanyRepo(&TxManager{})

	t.Run("never touches the code column", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("UPDATE 1")}

		err := repo.Update(txContext(tx), &company.Company{Code: "ibm", Name: "IBM"})

		require.NoError(t, err)
		require.Len(t, tx.gotSQL, 1)
		assert.Equal(t,
			"UPDATE companies SET name = $1, description = $2 WHERE code = $3",
			tx.gotSQL[0])
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("UPDATE 0")}

		err := repo.Update(txContext(tx), &company.Company{Code: "nope", Name: "Nope"})

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestCompanyRepoDelete(t *testing.T) {
	repo := NewCompanyRepo(&TxManager{})

	t.Run("removes the row", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("DELETE 1")}

		err := repo.Delete(txContext(tx), "ibm")

		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM companies WHERE code = $1", tx.gotSQL[0])
		assert.Equal(t, []any{"ibm"}, tx.gotArgs[0])
	})

	t.Run("foreign key violation becomes a conflict", func(t *testing.T) {
		tx := &fakeTx{execErr: &pgconn.PgError{Code: codeForeignKeyViolation}}

		err := repo.Delete(txContext(tx), "ibm")

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("DELETE 0")}

		err := repo.Delete(txContext(tx), "nope")

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestCompanyRepoExistsByCode(t *testing.T) {
	repo := NewCompanyRepo(&TxManager{})

	t.Run("row present", func(t *testing.T) {
		tx := &fakeTx{}

		exists, err := repo.ExistsByCode(txContext(tx), "ibm")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "SELECT 1 FROM companies WHERE code = $1 LIMIT 1", tx.gotSQL[0])
	})

	t.Run("no rows", func(t *testing.T) {
		tx := &fakeTx{rowErr: pgx.ErrNoRows}

		exists, err := repo.ExistsByCode(txContext(tx), "nope")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}
