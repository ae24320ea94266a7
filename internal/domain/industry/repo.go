package industry

import (
	"context"
)

// Repository defines the interface for Industry persistence.
type Repository interface {
	// List retrieves all industries.
	List(ctx context.Context) ([]Industry, error)

	// ExistsByCode checks if an industry with the given code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Create inserts a new industry.
	Create(ctx context.Context, i *Industry) error

	// Associate inserts a company-industry pair. Fails with a conflict
	// when the pair already exists.
	Associate(ctx context.Context, a *Association) error
}
