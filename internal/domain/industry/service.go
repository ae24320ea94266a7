package industry

import (
	"context"

	"tally/internal/core/apperror"
	"tally/internal/core/slug"
	"tally/pkg/logger"
)

// CompanyDirectory is the subset of the company repository the industry
// service needs for association existence checks.
type CompanyDirectory interface {
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// Service provides business logic for the Industry catalog.
type Service struct {
	repo      Repository
	companies CompanyDirectory
}

// NewService creates a new Industry service.
func NewService(repo Repository, companies CompanyDirectory) *Service {
	return &Service{repo: repo, companies: companies}
}

// List returns all industries. An empty result is valid.
func (s *Service) List(ctx context.Context) ([]Industry, error) {
	return s.repo.List(ctx)
}

// Create derives the code from the label and inserts the industry.
// Fails with a conflict when the derived code already exists.
func (s *Service) Create(ctx context.Context, label string) (*Industry, error) {
	i := &Industry{
		Code:     slug.Normalize(label),
		Industry: label,
	}

	if err := i.Validate(ctx); err != nil {
		return nil, err
	}

	if exists, err := s.repo.ExistsByCode(ctx, i.Code); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.NewDuplicate("industry", "code", i.Code)
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	logger.Info(ctx, "industry created", "code", i.Code)
	return i, nil
}

// Associate links a company to an industry.
// Fails with not found when either code is absent, and with a conflict
// when the pair already exists.
func (s *Service) Associate(ctx context.Context, companyCode, industryCode string) (*Association, error) {
	if exists, err := s.companies.ExistsByCode(ctx, companyCode); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperror.NewNotFound("company", companyCode)
	}

	if exists, err := s.repo.ExistsByCode(ctx, industryCode); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperror.NewNotFound("industry", industryCode)
	}

	a := &Association{CompCode: companyCode, IndCode: industryCode}
	if err := s.repo.Associate(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}
