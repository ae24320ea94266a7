package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tally/internal/core/apperror"
	"tally/internal/domain/invoice"
)

const invoicesTable = "invoices"

// Compile-time check that InvoiceRepo implements invoice.Repository.
var _ invoice.Repository = (*InvoiceRepo)(nil)

// InvoiceRepo implements invoice.Repository on PostgreSQL.
type InvoiceRepo struct {
	txManager *TxManager
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txManager *TxManager) *InvoiceRepo {
	return &InvoiceRepo{txManager: txManager}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *InvoiceRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// List retrieves all invoices as id/company summaries.
func (r *InvoiceRepo) List(ctx context.Context) ([]invoice.Summary, error) {
	q := r.Builder().
		Select("id", "comp_code").
		From(invoicesTable).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []invoice.Summary{}
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return items, nil
}

// GetByID retrieves an invoice joined with the current state of its
// owning company. The join reads the company row at query time; the
// embedded company is never a cached copy.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*invoice.WithCompany, error) {
	q := r.Builder().
		Select(
			"i.id", "i.comp_code", "i.amt", "i.paid", "i.add_date", "i.paid_date",
			`c.code AS "company.code"`,
			`c.name AS "company.name"`,
			`c.description AS "company.description"`,
		).
		From(invoicesTable + " AS i").
		Join(companiesTable + " AS c ON i.comp_code = c.code").
		Where(squirrel.Eq{"i.id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var inv invoice.WithCompany
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice", id)
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}

	return &inv, nil
}

// GetForUpdate retrieves an invoice with a row lock for the
// read-modify-write update path.
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id int64) (*invoice.Invoice, error) {
	q := r.Builder().
		Select("id", "comp_code", "amt", "paid", "add_date", "paid_date").
		From(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var inv invoice.Invoice
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice", id)
		}
		return nil, fmt.Errorf("get invoice for update: %w", err)
	}

	return &inv, nil
}

// Create inserts a new invoice. The store assigns the id and stamps the
// add date; the full row is read back into inv.
func (r *InvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	q := r.Builder().
		Insert(invoicesTable).
		Columns("comp_code", "amt").
		Values(inv.CompCode, inv.Amount).
		Suffix("RETURNING id, comp_code, amt, paid, add_date, paid_date")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, inv, sql, args...); err != nil {
		if isPgErrCode(err, codeForeignKeyViolation) {
			return apperror.NewNotFound("company", inv.CompCode).WithCause(err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	return nil
}

// UpdateState persists amount, paid and paid date. Company code, id and
// add date are immutable and never written.
func (r *InvoiceRepo) UpdateState(ctx context.Context, inv *invoice.Invoice) error {
	q := r.Builder().
		Update(invoicesTable).
		Set("amt", inv.Amount).
		Set("paid", inv.Paid).
		Set("paid_date", inv.PaidDate).
		Where(squirrel.Eq{"id": inv.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("invoice", inv.ID)
	}

	return nil
}

// Delete removes an invoice by id.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	q := r.Builder().
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("invoice", id)
	}

	return nil
}
