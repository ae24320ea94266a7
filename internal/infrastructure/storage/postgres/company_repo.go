package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"tally/internal/core/apperror"
	"tally/internal/domain/company"
)

const companiesTable = "companies"

// Compile-time check that CompanyRepo implements company.Repository.
var _ company.Repository = (*CompanyRepo)(nil)

// CompanyRepo implements company.Repository on PostgreSQL.
type CompanyRepo struct {
	txManager *TxManager
}

// NewCompanyRepo creates a new company repository.
func NewCompanyRepo(txManager *TxManager) *CompanyRepo {
	return &CompanyRepo{txManager: txManager}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *CompanyRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// List retrieves all companies as code/name summaries.
func (r *CompanyRepo) List(ctx context.Context) ([]company.Summary, error) {
	q := r.Builder().
		Select("code", "name").
		From(companiesTable).
		OrderBy("code ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []company.Summary{}
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return items, nil
}

// GetByCode retrieves a company by code.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*company.Company, error) {
	q := r.Builder().
		Select("code", "name", "description").
		From(companiesTable).
		Where(squirrel.Eq{"code": code}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c company.Company
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("company", code)
		}
		return nil, fmt.Errorf("get company by code: %w", err)
	}

	return &c, nil
}

// InvoiceIDs retrieves the ids of all invoices billed to the company,
// ascending by id so repeated reads are reproducible.
func (r *CompanyRepo) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	q := r.Builder().
		Select("id").
		From(invoicesTable).
		Where(squirrel.Eq{"comp_code": code}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ids := []int64{}
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &ids, sql, args...); err != nil {
		return nil, fmt.Errorf("company invoice ids: %w", err)
	}

	return ids, nil
}

// ExistsByCode checks if a company with the given code exists.
func (r *CompanyRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := r.Builder().
		Select("1").
		From(companiesTable).
		Where(squirrel.Eq{"code": code}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	var exists int
	err = querier.QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists by code: %w", err)
	}

	return true, nil
}

// Create inserts a new company.
func (r *CompanyRepo) Create(ctx context.Context, c *company.Company) error {
	q := r.Builder().
		Insert(companiesTable).
		Columns("code", "name", "description").
		Values(c.Code, c.Name, c.Description)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if isPgErrCode(err, codeUniqueViolation) {
			return apperror.NewDuplicate("company", "code", c.Code).WithCause(err)
		}
		return fmt.Errorf("insert company: %w", err)
	}

	return nil
}

// Update modifies name and description of an existing company.
// The code column is never touched.
func (r *CompanyRepo) Update(ctx context.Context, c *company.Company) error {
	q := r.Builder().
		Update(companiesTable).
		Set("name", c.Name).
		Set("description", c.Description).
		Where(squirrel.Eq{"code": c.Code})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("company", c.Code)
	}

	return nil
}

// Delete performs physical removal. A foreign key violation means the
// company still has invoices or industry associations and is reported
// as a conflict, per the declared reject-not-cascade policy.
func (r *CompanyRepo) Delete(ctx context.Context, code string) error {
	q := r.Builder().
		Delete(companiesTable).
		Where(squirrel.Eq{"code": code})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if isPgErrCode(err, codeForeignKeyViolation) {
			return apperror.NewConflict("company has dependent invoices or industry associations").
				WithDetail("entity", "company").
				WithDetail("code", code).
				WithCause(err)
		}
		return fmt.Errorf("delete company: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("company", code)
	}

	return nil
}
