package invoice

import (
	"context"
)

// Repository defines the interface for Invoice persistence.
type Repository interface {
	// List retrieves all invoices as id/company summaries.
	List(ctx context.Context) ([]Summary, error)

	// GetByID retrieves an invoice joined with the current state of its
	// owning company.
	GetByID(ctx context.Context, id int64) (*WithCompany, error)

	// GetForUpdate retrieves an invoice with a row lock, for the
	// read-modify-write update path. Must run inside a transaction.
	GetForUpdate(ctx context.Context, id int64) (*Invoice, error)

	// Create inserts a new invoice; the store assigns id and add date.
	// The inserted row is read back into inv.
	Create(ctx context.Context, inv *Invoice) error

	// UpdateState persists amount, paid and paid date for an invoice.
	UpdateState(ctx context.Context, inv *Invoice) error

	// Delete removes an invoice by id.
	Delete(ctx context.Context, id int64) error
}
