package company

import (
	"context"
)

// Repository defines the interface for Company persistence.
type Repository interface {
	// List retrieves all companies as code/name summaries.
	List(ctx context.Context) ([]Summary, error)

	// GetByCode retrieves a company by code.
	GetByCode(ctx context.Context, code string) (*Company, error)

	// InvoiceIDs retrieves the ids of all invoices billed to the company,
	// ascending by id. The company itself is not checked for existence.
	InvoiceIDs(ctx context.Context, code string) ([]int64, error)

	// ExistsByCode checks if a company with the given code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Create inserts a new company.
	Create(ctx context.Context, c *Company) error

	// Update modifies name and description of an existing company.
	// The code is never updated.
	Update(ctx context.Context, c *Company) error

	// Delete removes a company. Fails with a conflict when dependent
	// invoices or industry associations still reference it.
	Delete(ctx context.Context, code string) error
}
