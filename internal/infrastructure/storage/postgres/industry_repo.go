package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"tally/internal/core/apperror"
	"tally/internal/domain/industry"
)

const (
	industriesTable   = "industries"
	associationsTable = "companies_industries"
)

// Compile-time check that IndustryRepo implements industry.Repository.
var _ industry.Repository = (*IndustryRepo)(nil)

// IndustryRepo implements industry.Repository on PostgreSQL.
type IndustryRepo struct {
	txManager *TxManager
}

// NewIndustryRepo creates a new industry repository.
func NewIndustryRepo(txManager *TxManager) *IndustryRepo {
	return &IndustryRepo{txManager: txManager}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *IndustryRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// List retrieves all industries.
func (r *IndustryRepo) List(ctx context.Context) ([]industry.Industry, error) {
	q := r.Builder().
		Select("code", "industry").
		From(industriesTable).
		OrderBy("code ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []industry.Industry{}
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}

	return items, nil
}

// ExistsByCode checks if an industry with the given code exists.
func (r *IndustryRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := r.Builder().
		Select("1").
		From(industriesTable).
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

// Create inserts a new industry.
func (r *IndustryRepo) Create(ctx context.Context, i *industry.Industry) error {
	q := r.Builder().
		Insert(industriesTable).
		Columns("code", "industry").
		Values(i.Code, i.Industry)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if isPgErrCode(err, codeUniqueViolation) {
			return apperror.NewDuplicate("industry", "code", i.Code).WithCause(err)
		}
		return fmt.Errorf("insert industry: %w", err)
	}

	return nil
}

// Associate inserts a company-industry pair. Uniqueness of the pair and
// both foreign keys are enforced by the store; violations come back as
// typed errors.
func (r *IndustryRepo) Associate(ctx context.Context, a *industry.Association) error {
	q := r.Builder().
		Insert(associationsTable).
		Columns("comp_code", "ind_code").
		Values(a.CompCode, a.IndCode)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if isPgErrCode(err, codeUniqueViolation) {
			return apperror.NewConflict("association already exists").
				WithDetail("comp_code", a.CompCode).
				WithDetail("ind_code", a.IndCode).
				WithCause(err)
		}
		if isPgErrCode(err, codeForeignKeyViolation) {
			return apperror.NewNotFound("company or industry", a.CompCode+"/"+a.IndCode).
				WithCause(err)
		}
		return fmt.Errorf("insert association: %w", err)
	}

	return nil
}
