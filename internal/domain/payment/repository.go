package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, p *LoanPayment) error

	// SumByProfile returns COALESCE(SUM(amount), 0) over the profile's
	// payments, by numeric profile id.
	SumByProfile(ctx context.Context, loanProfileID uint64) (decimal.Decimal, error)

	// ListByProfile returns the profile's payments, newest first.
	ListByProfile(ctx context.Context, loanProfileID uint64) ([]LoanPayment, error)

	// DeleteByProfile removes every payment of the profile (cascade step).
	DeleteByProfile(ctx context.Context, loanProfileID uint64) error

	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
