package report

import (
	"context"
	"strings"
	"time"

	loanDomain "loanbook-backend/internal/domain/loan"
	paymentDomain "loanbook-backend/internal/domain/payment"
	ucLoan "loanbook-backend/internal/usecase/loan"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	profiles loanDomain.Repository
	payments paymentDomain.Repository
}

func NewUsecase(profiles loanDomain.Repository, payments paymentDomain.Repository) *Usecase {
	return &Usecase{profiles: profiles, payments: payments}
}

type OverviewDTO struct {
	TotalLoanAmount      decimal.Decimal `json:"total_loan_amount"`
	TotalPaidAmount      decimal.Decimal `json:"total_paid_amount"`
	TotalRemainingAmount decimal.Decimal `json:"total_remaining_amount"`
	LoanCount            int64           `json:"loan_count"`
}

func (u *Usecase) Overview(ctx context.Context) (*OverviewDTO, error) {
	t, err := u.profiles.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &OverviewDTO{
		TotalLoanAmount:      t.TotalAmount,
		TotalPaidAmount:      t.TotalPaid,
		TotalRemainingAmount: t.TotalRemaining,
		LoanCount:            t.ProfileCount,
	}, nil
}

type PaymentEntry struct {
	PaymentID   string          `json:"payment_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	Notes       *string         `json:"notes,omitempty"`
}

type HistoryEntry struct {
	ProfileID       string          `json:"profile_id"`
	Name            string          `json:"name"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	FullyPaid       bool            `json:"is_fully_paid"`
	LoanEntryDate   string          `json:"loan_entry_date"`
	PaymentCount    int             `json:"payment_count"`
	Payments        []PaymentEntry  `json:"payments"`
}

type HistoryDTO struct {
	Loans         []HistoryEntry `json:"loans"`
	TotalProfiles int            `json:"total_profiles"`
	TotalPayments int64          `json:"total_payments"`
}

// History returns every (optionally name-filtered) profile with its derived
// totals and payments, newest payment first.
func (u *Usecase) History(ctx context.Context, search string) (*HistoryDTO, error) {
	balances, err := u.profiles.ListWithBalances(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(balances))
	for _, b := range balances {
		pays, err := u.payments.ListByProfile(ctx, b.Profile.ID)
		if err != nil {
			return nil, err
		}
		pe := make([]PaymentEntry, 0, len(pays))
		for _, p := range pays {
			pe = append(pe, PaymentEntry{
				PaymentID:   p.PaymentID,
				Amount:      p.Amount,
				PaymentDate: p.PaymentDate,
				Notes:       p.Notes,
			})
		}
		entries = append(entries, HistoryEntry{
			ProfileID:       b.Profile.ProfileID,
			Name:            b.Profile.Name,
			TotalAmount:     b.Profile.TotalAmount,
			PaidAmount:      b.Paid,
			RemainingAmount: b.Remaining,
			FullyPaid:       b.FullyPaid(),
			LoanEntryDate:   b.Profile.LoanEntryDate.Format(ucLoan.DateLayout),
			PaymentCount:    len(pays),
			Payments:        pe,
		})
	}

	totalPayments, err := u.payments.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &HistoryDTO{
		Loans:         entries,
		TotalProfiles: len(entries),
		TotalPayments: totalPayments,
	}, nil
}

type OutstandingDTO struct {
	Loans              []ucLoan.ProfileDTO `json:"loans"`
	TotalActiveBalance decimal.Decimal     `json:"total_active_balance"`
	TodayPayments      int64               `json:"today_payments"`
}

// Outstanding lists the profiles still carrying a balance, for the
// payment-entry selection, plus the day's activity counters.
func (u *Usecase) Outstanding(ctx context.Context) (*OutstandingDTO, error) {
	balances, err := u.profiles.ListOutstanding(ctx)
	if err != nil {
		return nil, err
	}
	loans := make([]ucLoan.ProfileDTO, 0, len(balances))
	for _, b := range balances {
		loans = append(loans, ucLoan.ProfileDTOFromBalance(b))
	}

	t, err := u.profiles.Totals(ctx)
	if err != nil {
		return nil, err
	}

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	today, err := u.payments.CountSince(ctx, midnight)
	if err != nil {
		return nil, err
	}

	return &OutstandingDTO{
		Loans:              loans,
		TotalActiveBalance: t.TotalRemaining,
		TodayPayments:      today,
	}, nil
}
