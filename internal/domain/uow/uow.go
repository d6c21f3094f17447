package uow

import (
	"context"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
)

type Repos struct {
	Profiles loan.Repository
	Payments payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the profile row first, then pass it in. Serializes
	// concurrent writers against the same profile.
	WithinProfileTx(ctx context.Context, profileID string, fn func(r Repos, p *loan.LoanProfile) error) error
}
