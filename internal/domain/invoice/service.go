package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/core/apperror"
	"tally/internal/core/tx"
	"tally/internal/domain/industry"
	"tally/pkg/logger"
)

// Service provides business logic for invoices.
type Service struct {
	repo      Repository
	companies industry.CompanyDirectory
	txManager tx.Manager
	now       func() time.Time
}

// NewService creates a new Invoice service.
func NewService(repo Repository, companies industry.CompanyDirectory, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		companies: companies,
		txManager: txManager,
		now:       time.Now,
	}
}

// List returns all invoices as id/company summaries.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Get returns the invoice joined with the current state of its company.
func (s *Service) Get(ctx context.Context, id int64) (*WithCompany, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new invoice for the given company. New invoices start
// unpaid with no paid date; the store stamps the add date.
func (s *Service) Create(ctx context.Context, compCode string, amount decimal.Decimal) (*Invoice, error) {
	if amount.Sign() <= 0 {
		return nil, apperror.NewInvalidInput("amt must be a positive number").
			WithDetail("field", "amt").
			WithDetail("value", amount.String())
	}

	if exists, err := s.companies.ExistsByCode(ctx, compCode); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperror.NewNotFound("company", compCode)
	}

	inv := &Invoice{
		CompCode: compCode,
		Amount:   amount,
		Paid:     false,
		PaidDate: nil,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	logger.Info(ctx, "invoice created", "id", inv.ID, "comp_code", compCode)
	return inv, nil
}

// Update runs the payment lifecycle transition and persists the result.
// The read, the pure transition and the write form one transaction; any
// isolation beyond that comes from the store's isolation level.
func (s *Service) Update(ctx context.Context, id int64, requested *decimal.Decimal) (*Invoice, error) {
	var updated *Invoice

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		inv, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		inv.ApplyState(Transition(inv.State(), requested, s.now()))

		if err := s.repo.UpdateState(ctx, inv); err != nil {
			return err
		}

		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "invoice updated", "id", id, "paid", updated.Paid)
	return updated, nil
}

// Delete removes an invoice by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info(ctx, "invoice deleted", "id", id)
	return nil
}
