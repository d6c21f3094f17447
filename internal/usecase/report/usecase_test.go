package report

import (
	"context"
	"testing"
	"time"

	loanDomain "loanbook-backend/internal/domain/loan"
	paymentDomain "loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/testutil/loanmock"
	"loanbook-backend/internal/testutil/paymentmock"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestOverview(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{
		TotalsFn: func(ctx context.Context) (*loanDomain.Totals, error) {
			return &loanDomain.Totals{
				TotalAmount:    dec(t, "1500.00"),
				TotalPaid:      dec(t, "250.00"),
				TotalRemaining: dec(t, "1250.00"),
				ProfileCount:   2,
			}, nil
		},
	}, &paymentmock.Repo{})

	got, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview err: %v", err)
	}
	if got.LoanCount != 2 ||
		!got.TotalLoanAmount.Equal(dec(t, "1500.00")) ||
		!got.TotalPaidAmount.Equal(dec(t, "250.00")) ||
		!got.TotalRemainingAmount.Equal(dec(t, "1250.00")) {
		t.Fatalf("overview = %+v", got)
	}
}

func TestHistory(t *testing.T) {
	anna := loanDomain.LoanProfile{
		ID:            1,
		ProfileID:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Name:          "Anna",
		TotalAmount:   dec(t, "1000.00"),
		LoanEntryDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	note := "cash"
	pays := []paymentDomain.LoanPayment{
		{PaymentID: "p2", LoanProfileID: 1, Amount: dec(t, "400.00"), PaymentDate: time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)},
		{PaymentID: "p1", LoanProfileID: 1, Amount: dec(t, "200.00"), PaymentDate: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC), Notes: &note},
	}

	var gotFilter string
	uc := NewUsecase(
		&loanmock.Repo{
			ListWithBalancesFn: func(ctx context.Context, f string) ([]loanDomain.ProfileBalance, error) {
				gotFilter = f
				return []loanDomain.ProfileBalance{anna.BalanceWith(dec(t, "600.00"))}, nil
			},
		},
		&paymentmock.Repo{
			ListByProfileFn: func(ctx context.Context, id uint64) ([]paymentDomain.LoanPayment, error) {
				if id != anna.ID {
					t.Fatalf("listed wrong profile: %d", id)
				}
				return pays, nil
			},
			CountFn: func(ctx context.Context) (int64, error) { return 2, nil },
		})

	got, err := uc.History(context.Background(), " an ")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if gotFilter != "an" {
		t.Fatalf("filter = %q", gotFilter)
	}
	if got.TotalProfiles != 1 || got.TotalPayments != 2 {
		t.Fatalf("counters = %d/%d", got.TotalProfiles, got.TotalPayments)
	}
	e := got.Loans[0]
	if e.PaymentCount != 2 || len(e.Payments) != 2 {
		t.Fatalf("entry = %+v", e)
	}
	// newest first, as the repository returns them
	if e.Payments[0].PaymentID != "p2" || e.Payments[1].PaymentID != "p1" {
		t.Fatalf("payment order = %s,%s", e.Payments[0].PaymentID, e.Payments[1].PaymentID)
	}
	if !e.RemainingAmount.Equal(dec(t, "400.00")) || e.FullyPaid {
		t.Fatalf("derived totals = %+v", e)
	}
	if e.Payments[1].Notes == nil || *e.Payments[1].Notes != "cash" {
		t.Fatalf("notes lost: %+v", e.Payments[1])
	}
}

func TestOutstanding(t *testing.T) {
	open := loanDomain.LoanProfile{
		ID:            1,
		ProfileID:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Name:          "Open",
		TotalAmount:   dec(t, "300.00"),
		LoanEntryDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	var sinceSeen time.Time
	uc := NewUsecase(
		&loanmock.Repo{
			ListOutstandingFn: func(ctx context.Context) ([]loanDomain.ProfileBalance, error) {
				return []loanDomain.ProfileBalance{open.BalanceWith(dec(t, "100.00"))}, nil
			},
			TotalsFn: func(ctx context.Context) (*loanDomain.Totals, error) {
				return &loanDomain.Totals{
					TotalAmount:    dec(t, "400.00"),
					TotalPaid:      dec(t, "200.00"),
					TotalRemaining: dec(t, "200.00"),
					ProfileCount:   2,
				}, nil
			},
		},
		&paymentmock.Repo{
			CountSinceFn: func(ctx context.Context, since time.Time) (int64, error) {
				sinceSeen = since
				return 3, nil
			},
		})

	got, err := uc.Outstanding(context.Background())
	if err != nil {
		t.Fatalf("Outstanding err: %v", err)
	}
	if len(got.Loans) != 1 || got.Loans[0].Name != "Open" {
		t.Fatalf("loans = %+v", got.Loans)
	}
	if !got.Loans[0].RemainingAmount.Equal(dec(t, "200.00")) {
		t.Fatalf("remaining = %s", got.Loans[0].RemainingAmount)
	}
	if !got.TotalActiveBalance.Equal(dec(t, "200.00")) || got.TodayPayments != 3 {
		t.Fatalf("counters = %+v", got)
	}
	// the today counter starts at UTC midnight
	wantMidnight := time.Now().UTC().Truncate(24 * time.Hour)
	if !sinceSeen.Equal(wantMidnight) {
		t.Fatalf("since = %s, want %s", sinceSeen, wantMidnight)
	}
}
