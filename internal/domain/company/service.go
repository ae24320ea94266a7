package company

import (
	"context"

	"tally/internal/core/apperror"
	"tally/internal/core/slug"
	"tally/internal/core/tx"
	"tally/pkg/logger"
)

// Service provides business logic for the Company catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Company service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// List returns all companies as code/name summaries.
// An empty result is valid.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Get returns the company together with the ids of its invoices.
// Both reads run in one read-only transaction so the id list matches
// the company row it is aggregated with.
func (s *Service) Get(ctx context.Context, code string) (*WithInvoices, error) {
	var result *WithInvoices

	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		c, err := s.repo.GetByCode(ctx, code)
		if err != nil {
			return err
		}

		ids, err := s.repo.InvoiceIDs(ctx, code)
		if err != nil {
			return err
		}

		result = &WithInvoices{Company: *c, InvoiceIDs: ids}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Create derives the code from name and inserts the company.
// Fails with a conflict when the derived code already exists.
func (s *Service) Create(ctx context.Context, name string, description *string) (*Company, error) {
	c := &Company{
		Code:        slug.Normalize(name),
		Name:        name,
		Description: description,
	}

	if err := c.Validate(ctx); err != nil {
		return nil, err
	}

	if exists, err := s.repo.ExistsByCode(ctx, c.Code); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.NewDuplicate("company", "code", c.Code)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info(ctx, "company created", "code", c.Code)
	return c, nil
}

// Update replaces name and description of an existing company.
// The code itself is never part of the update payload.
func (s *Service) Update(ctx context.Context, code, name string, description *string) (*Company, error) {
	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	c.Name = name
	c.Description = description

	if err := c.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes a company by code.
//
// Policy: deletion is rejected, not cascaded. The schema declares plain
// foreign keys, so a company with dependent invoices or industry
// associations fails with a conflict surfaced from the store.
func (s *Service) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}

	logger.Info(ctx, "company deleted", "code", code)
	return nil
}
