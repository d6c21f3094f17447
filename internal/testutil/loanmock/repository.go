package loanmock

import (
	"context"
	"errors"

	domain "loanbook-backend/internal/domain/loan"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn                  func(ctx context.Context, p *domain.LoanProfile) error
	GetByProfileIDFn          func(ctx context.Context, profileID string) (*domain.LoanProfile, error)
	GetByProfileIDForUpdateFn func(ctx context.Context, profileID string) (*domain.LoanProfile, error)
	SaveFn                    func(ctx context.Context, p *domain.LoanProfile) error
	DeleteFn                  func(ctx context.Context, p *domain.LoanProfile) error
	ListFn                    func(ctx context.Context, nameFilter string) ([]domain.LoanProfile, error)
	ListWithBalancesFn        func(ctx context.Context, nameFilter string) ([]domain.ProfileBalance, error)
	ListOutstandingFn         func(ctx context.Context) ([]domain.ProfileBalance, error)
	TotalsFn                  func(ctx context.Context) (*domain.Totals, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.LoanProfile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByProfileID(ctx context.Context, profileID string) (*domain.LoanProfile, error) {
	if m.GetByProfileIDFn != nil {
		return m.GetByProfileIDFn(ctx, profileID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByProfileIDForUpdate(ctx context.Context, profileID string) (*domain.LoanProfile, error) {
	if m.GetByProfileIDForUpdateFn != nil {
		return m.GetByProfileIDForUpdateFn(ctx, profileID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, p *domain.LoanProfile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, p *domain.LoanProfile) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, p)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, nameFilter string) ([]domain.LoanProfile, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, nameFilter)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListWithBalances(ctx context.Context, nameFilter string) ([]domain.ProfileBalance, error) {
	if m.ListWithBalancesFn != nil {
		return m.ListWithBalancesFn(ctx, nameFilter)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListOutstanding(ctx context.Context) ([]domain.ProfileBalance, error) {
	if m.ListOutstandingFn != nil {
		return m.ListOutstandingFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Totals(ctx context.Context) (*domain.Totals, error) {
	if m.TotalsFn != nil {
		return m.TotalsFn(ctx)
	}
	return nil, errUnimplemented
}
