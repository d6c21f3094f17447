package mysql

import (
	"context"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Profiles: &LoanRepository{db: tx},
			Payments: &PaymentRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinProfileTx(ctx context.Context, profileID string, fn func(r uow.Repos, p *loan.LoanProfile) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Profiles: &LoanRepository{db: tx},
			Payments: &PaymentRepository{db: tx},
		}
		// lock the profile row up-front so concurrent payments serialize
		p, err := r.Profiles.GetByProfileIDForUpdate(ctx, profileID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
