package paymentmock

import (
	"context"
	"errors"
	"time"

	domain "loanbook-backend/internal/domain/payment"

	"github.com/shopspring/decimal"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("paymentmock: method not implemented")

// Repo is a function-backed mock that satisfies payment.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, p *domain.LoanPayment) error
	SumByProfileFn    func(ctx context.Context, loanProfileID uint64) (decimal.Decimal, error)
	ListByProfileFn   func(ctx context.Context, loanProfileID uint64) ([]domain.LoanPayment, error)
	DeleteByProfileFn func(ctx context.Context, loanProfileID uint64) error
	CountFn           func(ctx context.Context) (int64, error)
	CountSinceFn      func(ctx context.Context, since time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.LoanPayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) SumByProfile(ctx context.Context, loanProfileID uint64) (decimal.Decimal, error) {
	if m.SumByProfileFn != nil {
		return m.SumByProfileFn(ctx, loanProfileID)
	}
	return decimal.Zero, errUnimplemented
}

func (m *Repo) ListByProfile(ctx context.Context, loanProfileID uint64) ([]domain.LoanPayment, error) {
	if m.ListByProfileFn != nil {
		return m.ListByProfileFn(ctx, loanProfileID)
	}
	return nil, errUnimplemented
}

func (m *Repo) DeleteByProfile(ctx context.Context, loanProfileID uint64) error {
	if m.DeleteByProfileFn != nil {
		return m.DeleteByProfileFn(ctx, loanProfileID)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, errUnimplemented
}

func (m *Repo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountSinceFn != nil {
		return m.CountSinceFn(ctx, since)
	}
	return 0, errUnimplemented
}
