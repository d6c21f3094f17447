package uowmock

import (
	"context"
	"errors"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinProfileTxFn func(ctx context.Context, profileID string, fn func(r uow.Repos, p *loan.LoanProfile) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinProfileTx(fn func(context.Context, string, func(uow.Repos, *loan.LoanProfile) error) error) *UoW {
	m.WithinProfileTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinProfileTx(ctx context.Context, profileID string, fn func(r uow.Repos, p *loan.LoanProfile) error) error {
	if m.WithinProfileTxFn != nil {
		return m.WithinProfileTxFn(ctx, profileID, fn)
	}
	return errUnimplemented
}
