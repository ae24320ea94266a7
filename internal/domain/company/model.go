// Package company provides the Company catalog.
// Companies own invoices and participate in industry associations.
package company

import (
	"context"
	"strings"

	"tally/internal/core/apperror"
	"tally/internal/core/slug"
)

// Company represents a billable organization.
type Company struct {
	// Code is the unique identifier, derived from Name at creation.
	// Immutable once set; never part of an update payload.
	Code string `db:"code" json:"code"`

	// Name is the display string
	Name string `db:"name" json:"name"`

	// Description is optional free text
	Description *string `db:"description" json:"description"`
}

// Summary is the list projection of a company.
type Summary struct {
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// WithInvoices aggregates a company with the ids of its invoices.
// The ids are ordered ascending so repeated reads are reproducible.
type WithInvoices struct {
	Company
	InvoiceIDs []int64 `json:"invoiceIds"`
}

// Validate implements basic field validation.
func (c *Company) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewInvalidInput("name is required").
			WithDetail("field", "name")
	}
	if !slug.IsValid(c.Code) {
		return apperror.NewInvalidInput("code could not be derived from name").
			WithDetail("field", "name").
			WithDetail("value", c.Name)
	}
	return nil
}
