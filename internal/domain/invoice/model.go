// Package invoice provides the Invoice entity and its payment lifecycle.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/domain/company"
)

// Invoice represents a bill issued to a company.
type Invoice struct {
	// ID is system-generated at creation and unique.
	ID int64 `db:"id" json:"id"`

	// CompCode references the owning company. Required, immutable.
	CompCode string `db:"comp_code" json:"compCode"`

	// Amount is the billed amount. Positive at creation.
	Amount decimal.Decimal `db:"amt" json:"amt"`

	// Paid marks whether the invoice has been settled.
	Paid bool `db:"paid" json:"paid"`

	// AddDate is set once at creation and never changes.
	AddDate time.Time `db:"add_date" json:"addDate"`

	// PaidDate is present if and only if Paid is true.
	PaidDate *time.Time `db:"paid_date" json:"paidDate"`
}

// Summary is the list projection of an invoice.
type Summary struct {
	ID       int64  `db:"id" json:"id"`
	CompCode string `db:"comp_code" json:"compCode"`
}

// WithCompany joins an invoice with the current state of its owning
// company. The company is read at query time, never cached.
type WithCompany struct {
	Invoice
	Company company.Company `json:"company"`
}

// State returns the mutable payment state of the invoice, the input to
// the lifecycle transition.
func (i *Invoice) State() State {
	return State{
		Amount:   i.Amount,
		Paid:     i.Paid,
		PaidDate: i.PaidDate,
	}
}

// ApplyState writes a computed payment state back onto the invoice.
func (i *Invoice) ApplyState(s State) {
	i.Amount = s.Amount
	i.Paid = s.Paid
	i.PaidDate = s.PaidDate
}
