// Package industry provides the Industry catalog and its many-to-many
// association with companies.
package industry

import (
	"context"
	"strings"

	"tally/internal/core/apperror"
	"tally/internal/core/slug"
)

// Industry represents a line of business companies can belong to.
type Industry struct {
	// Code is the unique identifier, derived from the Industry label.
	Code string `db:"code" json:"code"`

	// Industry is the display label
	Industry string `db:"industry" json:"industry"`
}

// Association links a company to an industry. The pair is unique;
// it carries no attributes of its own.
type Association struct {
	CompCode string `db:"comp_code" json:"compCode"`
	IndCode  string `db:"ind_code" json:"indCode"`
}

// Validate implements basic field validation.
func (i *Industry) Validate(ctx context.Context) error {
	if strings.TrimSpace(i.Industry) == "" {
		return apperror.NewInvalidInput("industry is required").
			WithDetail("field", "industry")
	}
	if !slug.IsValid(i.Code) {
		return apperror.NewInvalidInput("code could not be derived from industry").
			WithDetail("field", "industry").
			WithDetail("value", i.Industry)
	}
	return nil
}
