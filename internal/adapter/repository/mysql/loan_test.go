package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "loanbook-backend/internal/domain/loan"
	paymentDomain "loanbook-backend/internal/domain/payment"
	"loanbook-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with both tables. The domain
// models migrate cleanly on sqlite (no MySQL-only column types involved).
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanDomain.LoanProfile{}, &paymentDomain.LoanPayment{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func makeProfile(t *testing.T, name, total string) *loanDomain.LoanProfile {
	t.Helper()
	return &loanDomain.LoanProfile{
		ProfileID:     id.NewID32(),
		Name:          name,
		TotalAmount:   mustDec(t, total),
		LoanEntryDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newPayment(t *testing.T, profileNumericID uint64, amount string, at time.Time) *paymentDomain.LoanPayment {
	t.Helper()
	return &paymentDomain.LoanPayment{
		PaymentID:     id.NewID32(),
		LoanProfileID: profileNumericID,
		Amount:        mustDec(t, amount),
		PaymentDate:   at,
	}
}

func seedPayment(t *testing.T, db *gorm.DB, profileNumericID uint64, amount string, at time.Time) {
	t.Helper()
	repo := NewPaymentRepository(db)
	if err := repo.Create(context.Background(), newPayment(t, profileNumericID, amount, at)); err != nil {
		t.Fatalf("seed payment: %v", err)
	}
}

func TestLoanRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	p := makeProfile(t, "Anna", "1000.00")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetByProfileID(ctx, p.ProfileID)
	if err != nil {
		t.Fatalf("GetByProfileID: %v", err)
	}
	if got.Name != "Anna" || !got.TotalAmount.Equal(mustDec(t, "1000.00")) {
		t.Fatalf("got %q / %s", got.Name, got.TotalAmount)
	}

	if _, err := repo.GetByProfileID(ctx, id.NewID32()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown id err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestLoanRepository_List_CaseInsensitiveSubstring(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Anna", "Bob"} {
		if err := repo.Create(ctx, makeProfile(t, name, "500.00")); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	got, err := repo.List(ctx, "an")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Anna" {
		t.Fatalf("List(an) = %+v, want only Anna", got)
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List(\"\") len = %d, want 2", len(all))
	}
}

func TestLoanRepository_ListWithBalances(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	anna := makeProfile(t, "Anna", "1000.00")
	bob := makeProfile(t, "Bob", "200.00")
	for _, p := range []*loanDomain.LoanProfile{anna, bob} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	now := time.Now().UTC()
	seedPayment(t, db, anna.ID, "600.00", now)
	seedPayment(t, db, anna.ID, "150.00", now)

	got, err := repo.ListWithBalances(ctx, "")
	if err != nil {
		t.Fatalf("ListWithBalances: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	byName := map[string]loanDomain.ProfileBalance{}
	for _, b := range got {
		byName[b.Profile.Name] = b
	}
	if b := byName["Anna"]; !b.Paid.Equal(mustDec(t, "750.00")) || !b.Remaining.Equal(mustDec(t, "250.00")) {
		t.Fatalf("Anna paid=%s remaining=%s", b.Paid, b.Remaining)
	}
	// profile without payments sums to zero, not NULL
	if b := byName["Bob"]; !b.Paid.Equal(decimal.Zero) || !b.Remaining.Equal(mustDec(t, "200.00")) {
		t.Fatalf("Bob paid=%s remaining=%s", b.Paid, b.Remaining)
	}
}

func TestLoanRepository_ListOutstanding_ExcludesFullyPaid(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	open := makeProfile(t, "Open", "300.00")
	settled := makeProfile(t, "Settled", "100.00")
	for _, p := range []*loanDomain.LoanProfile{open, settled} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	now := time.Now().UTC()
	seedPayment(t, db, open.ID, "100.00", now)
	seedPayment(t, db, settled.ID, "100.00", now)

	got, err := repo.ListOutstanding(ctx)
	if err != nil {
		t.Fatalf("ListOutstanding: %v", err)
	}
	if len(got) != 1 || got[0].Profile.Name != "Open" {
		t.Fatalf("outstanding = %+v, want only Open", got)
	}
	if !got[0].Remaining.Equal(mustDec(t, "200.00")) {
		t.Fatalf("remaining = %s, want 200.00", got[0].Remaining)
	}
}

func TestLoanRepository_Totals(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	a := makeProfile(t, "A", "1000.00")
	b := makeProfile(t, "B", "500.00")
	for _, p := range []*loanDomain.LoanProfile{a, b} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	seedPayment(t, db, a.ID, "250.00", time.Now().UTC())

	got, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if got.ProfileCount != 2 {
		t.Fatalf("count = %d, want 2", got.ProfileCount)
	}
	if !got.TotalAmount.Equal(mustDec(t, "1500.00")) ||
		!got.TotalPaid.Equal(mustDec(t, "250.00")) ||
		!got.TotalRemaining.Equal(mustDec(t, "1250.00")) {
		t.Fatalf("totals = %+v", got)
	}
}

func TestLoanRepository_Totals_EmptyStore(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	got, err := repo.Totals(context.Background())
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if got.ProfileCount != 0 || !got.TotalAmount.Equal(decimal.Zero) || !got.TotalRemaining.Equal(decimal.Zero) {
		t.Fatalf("empty totals = %+v", got)
	}
}

func TestLoanRepository_SaveAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	p := makeProfile(t, "Before", "100.00")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	p.Name = "After"
	p.TotalAmount = mustDec(t, "350.00")
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByProfileID(ctx, p.ProfileID)
	if err != nil {
		t.Fatalf("GetByProfileID: %v", err)
	}
	if got.Name != "After" || !got.TotalAmount.Equal(mustDec(t, "350.00")) {
		t.Fatalf("after save: %q / %s", got.Name, got.TotalAmount)
	}

	if err := repo.Delete(ctx, p); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByProfileID(ctx, p.ProfileID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("after delete err = %v, want gorm.ErrRecordNotFound", err)
	}
}
