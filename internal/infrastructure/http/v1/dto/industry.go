package dto

import (
	"tally/internal/domain/industry"
)

// --- Request DTOs ---

// CreateIndustryRequest is the request body for creating an industry.
type CreateIndustryRequest struct {
	Industry string `json:"industry" binding:"required"`
}

// --- Response DTOs ---

// IndustryResponse contains industry fields.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// AssociationResponse contains a company-industry link.
type AssociationResponse struct {
	CompCode string `json:"comp_code"`
	IndCode  string `json:"ind_code"`
}

// FromIndustry creates IndustryResponse from the domain entity.
func FromIndustry(i industry.Industry) IndustryResponse {
	return IndustryResponse{Code: i.Code, Industry: i.Industry}
}

// FromIndustries maps a list of industries.
func FromIndustries(items []industry.Industry) []IndustryResponse {
	resp := make([]IndustryResponse, len(items))
	for i, ind := range items {
		resp[i] = FromIndustry(ind)
	}
	return resp
}

// FromAssociation creates AssociationResponse from the domain entity.
func FromAssociation(a industry.Association) AssociationResponse {
	return AssociationResponse{CompCode: a.CompCode, IndCode: a.IndCode}
}
