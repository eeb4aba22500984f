package domain

import "github.com/shopspring/decimal"

// BankAccount is the player's savings account. Interest compounds daily;
// InterestCarry keeps the fractional remainder so no interest is ever lost
// to rounding. LastInterestDay is the last game day interest was processed
// for, which makes accrual idempotent within a day.
type BankAccount struct {
	Balance         int64
	RateAnnual      float64
	InterestCarry   decimal.Decimal
	LastInterestDay int
	Transactions    []BankTransaction
}
