package mysql

import (
	"context"
	"strings"
	"time"

	loanDomain "loanbook-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, p *loanDomain.LoanProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *LoanRepository) Save(ctx context.Context, p *loanDomain.LoanProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *LoanRepository) Delete(ctx context.Context, p *loanDomain.LoanProfile) error {
	return r.db.WithContext(ctx).Delete(&loanDomain.LoanProfile{}, p.ID).Error
}

func (r *LoanRepository) GetByProfileID(ctx context.Context, profileID string) (*loanDomain.LoanProfile, error) {
	var out loanDomain.LoanProfile
	res := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByProfileIDForUpdate(ctx context.Context, profileID string) (*loanDomain.LoanProfile, error) {
	var out loanDomain.LoanProfile
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("profile_id = ?", profileID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, nameFilter string) ([]loanDomain.LoanProfile, error) {
	var out []loanDomain.LoanProfile
	q := r.db.WithContext(ctx).Order("id")
	if nameFilter != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(nameFilter))
	}
	res := q.Find(&out)
	return out, res.Error
}

// balanceRow is the scan target for the annotated listing queries.
type balanceRow struct {
	ID            uint64
	ProfileID     string
	Name          string
	TotalAmount   decimal.Decimal
	LoanEntryDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PaidSum       decimal.Decimal
}

const balanceSelect = "lp.id, lp.profile_id, lp.name, lp.total_amount, lp.loan_entry_date, " +
	"lp.created_at, lp.updated_at, COALESCE(SUM(p.amount), 0) AS paid_sum"

const balanceGroup = "lp.id, lp.profile_id, lp.name, lp.total_amount, lp.loan_entry_date, lp.created_at, lp.updated_at"

func (r *LoanRepository) balanceQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("loan_profiles lp").
		Select(balanceSelect).
		Joins("LEFT JOIN loan_payments p ON p.loan_profile_id = lp.id").
		Group(balanceGroup).
		Order("lp.id")
}

func (r *LoanRepository) ListWithBalances(ctx context.Context, nameFilter string) ([]loanDomain.ProfileBalance, error) {
	q := r.balanceQuery(ctx)
	if nameFilter != "" {
		q = q.Where("LOWER(lp.name) LIKE ?", likePattern(nameFilter))
	}
	var rows []balanceRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toBalances(rows), nil
}

func (r *LoanRepository) ListOutstanding(ctx context.Context) ([]loanDomain.ProfileBalance, error) {
	var rows []balanceRow
	err := r.balanceQuery(ctx).
		Having("COALESCE(SUM(p.amount), 0) < lp.total_amount").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toBalances(rows), nil
}

func (r *LoanRepository) Totals(ctx context.Context) (*loanDomain.Totals, error) {
	var profileAgg struct {
		Total decimal.Decimal
		Count int64
	}
	err := r.db.WithContext(ctx).
		Table("loan_profiles").
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Scan(&profileAgg).Error
	if err != nil {
		return nil, err
	}

	var paymentAgg struct {
		Total decimal.Decimal
	}
	err = r.db.WithContext(ctx).
		Table("loan_payments").
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&paymentAgg).Error
	if err != nil {
		return nil, err
	}

	return &loanDomain.Totals{
		TotalAmount:    profileAgg.Total,
		TotalPaid:      paymentAgg.Total,
		TotalRemaining: profileAgg.Total.Sub(paymentAgg.Total),
		ProfileCount:   profileAgg.Count,
	}, nil
}

func likePattern(filter string) string {
	return "%" + strings.ToLower(filter) + "%"
}

func toBalances(rows []balanceRow) []loanDomain.ProfileBalance {
	out := make([]loanDomain.ProfileBalance, 0, len(rows))
	for _, row := range rows {
		p := loanDomain.LoanProfile{
			ID:            row.ID,
			ProfileID:     row.ProfileID,
			Name:          row.Name,
			TotalAmount:   row.TotalAmount,
			LoanEntryDate: row.LoanEntryDate,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}
		out = append(out, p.BalanceWith(row.PaidSum))
	}
	return out
}
