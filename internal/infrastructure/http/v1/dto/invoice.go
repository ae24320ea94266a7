package dto

import (
	"github.com/shopspring/decimal"

	"tally/internal/domain/invoice"
)

// --- Request DTOs ---

// CreateInvoiceRequest is the request body for creating an invoice.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code" binding:"required"`
	Amt      decimal.Decimal `json:"amt"`
}

// UpdateInvoiceRequest is the request body for the payment transition.
// A nil Amt expresses "mark unpaid" intent; the distinction between an
// absent and an explicit zero amount matters, hence the pointer.
type UpdateInvoiceRequest struct {
	Amt *decimal.Decimal `json:"amt"`
}

// --- Response DTOs ---

// InvoiceSummaryResponse is the list projection of an invoice.
type InvoiceSummaryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceResponse contains the full invoice fields.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceDetailResponse joins an invoice with the current state of its
// owning company.
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// FromInvoice creates InvoiceResponse from the domain entity.
func FromInvoice(inv invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amount,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatPaidDate(inv),
	}
}

// FromInvoiceSummaries maps list projections.
func FromInvoiceSummaries(items []invoice.Summary) []InvoiceSummaryResponse {
	resp := make([]InvoiceSummaryResponse, len(items))
	for i, s := range items {
		resp[i] = InvoiceSummaryResponse{ID: s.ID, CompCode: s.CompCode}
	}
	return resp
}

// FromInvoiceWithCompany creates InvoiceDetailResponse from the join.
func FromInvoiceWithCompany(inv invoice.WithCompany) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       inv.ID,
		Amt:      inv.Amount,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatPaidDate(inv.Invoice),
		Company:  FromCompany(inv.Company),
	}
}

func formatPaidDate(inv invoice.Invoice) *string {
	if inv.PaidDate == nil {
		return nil
	}
	s := inv.PaidDate.Format(dateLayout)
	return &s
}
