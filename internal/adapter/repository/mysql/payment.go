package mysql

import (
	"context"
	"time"

	paymentDomain "loanbook-backend/internal/domain/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.LoanPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) SumByProfile(ctx context.Context, loanProfileID uint64) (decimal.Decimal, error) {
	var agg struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("loan_payments").
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("loan_profile_id = ?", loanProfileID).
		Scan(&agg).Error
	return agg.Total, err
}

func (r *PaymentRepository) ListByProfile(ctx context.Context, loanProfileID uint64) ([]paymentDomain.LoanPayment, error) {
	var out []paymentDomain.LoanPayment
	res := r.db.WithContext(ctx).
		Where("loan_profile_id = ?", loanProfileID).
		Order("payment_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) DeleteByProfile(ctx context.Context, loanProfileID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_profile_id = ?", loanProfileID).
		Delete(&paymentDomain.LoanPayment{}).Error
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&paymentDomain.LoanPayment{}).Count(&n).Error
	return n, err
}

func (r *PaymentRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&paymentDomain.LoanPayment{}).
		Where("payment_date >= ?", since).
		Count(&n).Error
	return n, err
}
