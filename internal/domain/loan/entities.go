package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanProfile struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ProfileID     string          `gorm:"column:profile_id;type:char(32);not null;uniqueIndex:ux_loan_profiles_profile_id" json:"profile_id"`
	Name          string          `gorm:"column:name;size:200;not null" json:"name"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null" json:"total_amount"`
	LoanEntryDate time.Time       `gorm:"column:loan_entry_date;type:date;not null" json:"loan_entry_date"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanProfile) TableName() string { return "loan_profiles" }

// ProfileBalance is a profile annotated with its derived amounts.
// Paid and Remaining are recomputed from loan_payments on every read;
// they are never persisted.
type ProfileBalance struct {
	Profile   LoanProfile
	Paid      decimal.Decimal
	Remaining decimal.Decimal
}

func (b ProfileBalance) FullyPaid() bool { return b.Remaining.Sign() <= 0 }

// Totals is the store-wide aggregate used by the overview report.
type Totals struct {
	TotalAmount    decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalRemaining decimal.Decimal
	ProfileCount   int64
}
