package loan

import "context"

type Repository interface {
	Create(ctx context.Context, p *LoanProfile) error
	GetByProfileID(ctx context.Context, profileID string) (*LoanProfile, error)
	// GetByProfileIDForUpdate locks the profile row (SELECT ... FOR UPDATE);
	// only meaningful inside a transaction.
	GetByProfileIDForUpdate(ctx context.Context, profileID string) (*LoanProfile, error)
	Save(ctx context.Context, p *LoanProfile) error
	Delete(ctx context.Context, p *LoanProfile) error

	// List returns profiles whose name contains nameFilter
	// (case-insensitive substring); all profiles when the filter is empty.
	List(ctx context.Context, nameFilter string) ([]LoanProfile, error)
	// ListWithBalances annotates each listed profile with its payment sum
	// and remaining amount, computed in SQL (COALESCE(SUM(amount), 0)).
	ListWithBalances(ctx context.Context, nameFilter string) ([]ProfileBalance, error)
	// ListOutstanding returns only profiles with remaining > 0.
	ListOutstanding(ctx context.Context) ([]ProfileBalance, error)
	Totals(ctx context.Context) (*Totals, error)
}
