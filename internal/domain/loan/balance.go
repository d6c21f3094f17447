package loan

import "github.com/shopspring/decimal"

// BalanceWith derives the running amounts for this profile from its payment
// sum. Pure: the same (profile, paid) pair always yields the same result, and
// nothing here touches the store.
func (p LoanProfile) BalanceWith(paid decimal.Decimal) ProfileBalance {
	return ProfileBalance{
		Profile:   p,
		Paid:      paid,
		Remaining: p.TotalAmount.Sub(paid),
	}
}
