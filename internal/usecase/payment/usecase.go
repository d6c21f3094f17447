package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	loanDomain "loanbook-backend/internal/domain/loan"
	domain "loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type RecordInput struct {
	ProfileID string          `json:"profile_id"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes"`
}

type PaymentDTO struct {
	PaymentID       string          `json:"payment_id"`
	ProfileID       string          `json:"profile_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	Notes           *string         `json:"notes,omitempty"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	FullyPaid       bool            `json:"is_fully_paid"`
}

// Record validates and persists one payment. The overpayment check runs
// inside WithinProfileTx: the profile row is locked, the paid sum is
// recomputed under that lock, and the insert happens in the same
// transaction. Two concurrent payments against one profile serialize,
// and the second sees the first's sum.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*PaymentDTO, error) {
	if in.Amount.Sign() <= 0 {
		return nil, &loanDomain.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	var dto *PaymentDTO
	err := u.uow.WithinProfileTx(ctx, in.ProfileID, func(r uow.Repos, p *loanDomain.LoanProfile) error {
		paid, err := r.Payments.SumByProfile(ctx, p.ID)
		if err != nil {
			return err
		}
		bal := p.BalanceWith(paid)
		if in.Amount.GreaterThan(bal.Remaining) {
			return &domain.OverpaymentError{Remaining: bal.Remaining}
		}

		pay := &domain.LoanPayment{
			PaymentID:     id.NewID32(),
			LoanProfileID: p.ID,
			Amount:        in.Amount,
			PaymentDate:   time.Now().UTC(),
		}
		if notes := strings.TrimSpace(in.Notes); notes != "" {
			pay.Notes = &notes
		}
		if err := r.Payments.Create(ctx, pay); err != nil {
			return err
		}

		remaining := bal.Remaining.Sub(in.Amount)
		dto = &PaymentDTO{
			PaymentID:       pay.PaymentID,
			ProfileID:       p.ProfileID,
			Amount:          pay.Amount,
			PaymentDate:     pay.PaymentDate,
			Notes:           pay.Notes,
			RemainingAmount: remaining,
			FullyPaid:       remaining.Sign() <= 0,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}
