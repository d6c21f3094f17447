package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Table: loan_payments. Rows are immutable once written: there is no
// update or per-payment delete surface, payments only disappear when
// their profile is deleted.
type LoanPayment struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	PaymentID string `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_loan_payments_payment_id" json:"payment_id"`
	// FK to loan_profiles.id (numeric)
	LoanProfileID uint64          `gorm:"column:loan_profile_id;not null;index:idx_loan_payments_profile" json:"-"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	PaymentDate   time.Time       `gorm:"column:payment_date;autoCreateTime" json:"payment_date"`
	Notes         *string         `gorm:"column:notes;type:text" json:"notes,omitempty"`
}

func (LoanPayment) TableName() string { return "loan_payments" }

// OverpaymentError rejects a payment that would push the paid sum past the
// profile's total_amount. Remaining is the balance at the time of the check.
type OverpaymentError struct {
	Remaining decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment exceeds remaining balance (%s)", e.Remaining.StringFixed(2))
}
