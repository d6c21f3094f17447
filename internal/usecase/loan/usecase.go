package loan

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "loanbook-backend/internal/domain/loan"
	paymentDomain "loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateLayout is the wire format for loan_entry_date.
const DateLayout = "2006-01-02"

type Usecase struct {
	repo     domain.Repository
	payments paymentDomain.Repository
	uow      uow.UnitOfWork
}

// NewUsecase: pass both repos and a UoW for the tx flows.
func NewUsecase(profiles domain.Repository, payments paymentDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: profiles, payments: payments, uow: tx}
}

type ProfileInput struct {
	Name        string          `json:"name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	// Optional; defaults to today when empty.
	LoanEntryDate string `json:"loan_entry_date"`
}

type ProfileDTO struct {
	ProfileID       string          `json:"profile_id"`
	Name            string          `json:"name"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	LoanEntryDate   string          `json:"loan_entry_date"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	FullyPaid       bool            `json:"is_fully_paid"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProfileDTOFromBalance is shared with the report usecase, which annotates
// its listings with the same derived fields.
func ProfileDTOFromBalance(b domain.ProfileBalance) ProfileDTO { return toDTO(b) }

func toDTO(b domain.ProfileBalance) ProfileDTO {
	return ProfileDTO{
		ProfileID:       b.Profile.ProfileID,
		Name:            b.Profile.Name,
		TotalAmount:     b.Profile.TotalAmount,
		LoanEntryDate:   b.Profile.LoanEntryDate.Format(DateLayout),
		PaidAmount:      b.Paid,
		RemainingAmount: b.Remaining,
		FullyPaid:       b.FullyPaid(),
		CreatedAt:       b.Profile.CreatedAt,
		UpdatedAt:       b.Profile.UpdatedAt,
	}
}

// checkInput applies the write-side field rules shared by Create and Update.
func checkInput(in ProfileInput) (entryDate time.Time, err error) {
	if strings.TrimSpace(in.Name) == "" {
		return time.Time{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.TotalAmount.Sign() < 0 {
		return time.Time{}, &domain.ValidationError{Field: "total_amount", Reason: "must not be negative"}
	}
	if in.LoanEntryDate == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	entryDate, err = time.Parse(DateLayout, in.LoanEntryDate)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: "loan_entry_date", Reason: "must be a YYYY-MM-DD date"}
	}
	return entryDate, nil
}

func (u *Usecase) Create(ctx context.Context, in ProfileInput) (*ProfileDTO, error) {
	entryDate, err := checkInput(in)
	if err != nil {
		return nil, err
	}

	p := &domain.LoanProfile{
		ProfileID:     id.NewID32(),
		Name:          strings.TrimSpace(in.Name),
		TotalAmount:   in.TotalAmount,
		LoanEntryDate: entryDate,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	dto := toDTO(p.BalanceWith(decimal.Zero))
	return &dto, nil
}

func (u *Usecase) Update(ctx context.Context, profileID string, in ProfileInput) (*ProfileDTO, error) {
	entryDate, err := checkInput(in)
	if err != nil {
		return nil, err
	}

	var dto *ProfileDTO
	err = u.uow.WithinProfileTx(ctx, profileID, func(r uow.Repos, p *domain.LoanProfile) error {
		p.Name = strings.TrimSpace(in.Name)
		p.TotalAmount = in.TotalAmount
		p.LoanEntryDate = entryDate
		if err := r.Profiles.Save(ctx, p); err != nil {
			return err
		}

		paid, err := r.Payments.SumByProfile(ctx, p.ID)
		if err != nil {
			return err
		}
		d := toDTO(p.BalanceWith(paid))
		dto = &d
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// Delete removes the profile and all its payments in one transaction.
func (u *Usecase) Delete(ctx context.Context, profileID string) error {
	err := u.uow.WithinProfileTx(ctx, profileID, func(r uow.Repos, p *domain.LoanProfile) error {
		if err := r.Payments.DeleteByProfile(ctx, p.ID); err != nil {
			return err
		}
		return r.Profiles.Delete(ctx, p)
	})
	return mapNotFound(err)
}

func (u *Usecase) List(ctx context.Context, search string) ([]ProfileDTO, error) {
	balances, err := u.repo.ListWithBalances(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]ProfileDTO, 0, len(balances))
	for _, b := range balances {
		out = append(out, toDTO(b))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, profileID string) (*ProfileDTO, error) {
	p, err := u.repo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	paid, err := u.payments.SumByProfile(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(p.BalanceWith(paid))
	return &dto, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
