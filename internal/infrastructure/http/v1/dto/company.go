package dto

import (
	"tally/internal/domain/company"
)

// --- Request DTOs ---

// CreateCompanyRequest is the request body for creating a company.
// The code is derived server-side and never client-supplied.
type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest is the request body for updating a company.
// The code comes from the path, not the payload.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// --- Response DTOs ---

// CompanySummaryResponse is the list projection of a company.
type CompanySummaryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyResponse contains the full company fields.
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetailResponse aggregates a company with its invoice ids.
type CompanyDetailResponse struct {
	CompanyResponse
	Invoices []int64 `json:"invoices"`
}

// FromCompany creates CompanyResponse from the domain entity.
func FromCompany(c company.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// FromCompanySummaries maps list projections.
func FromCompanySummaries(items []company.Summary) []CompanySummaryResponse {
	resp := make([]CompanySummaryResponse, len(items))
	for i, s := range items {
		resp[i] = CompanySummaryResponse{Code: s.Code, Name: s.Name}
	}
	return resp
}

// FromCompanyWithInvoices creates CompanyDetailResponse from the aggregate.
func FromCompanyWithInvoices(c company.WithInvoices) CompanyDetailResponse {
	return CompanyDetailResponse{
		CompanyResponse: FromCompany(c.Company),
		Invoices:        c.InvoiceIDs,
	}
}
