package domain

import "github.com/shopspring/decimal"

// Loan is a single bank loan. Remaining includes the origination commission
// and all accrued interest; RepaidTotal accumulates every payment made.
// RateAnnual is fixed at issue time. InterestCarry holds the sub-unit
// interest fraction between daily accruals.
type Loan struct {
	ID            string
	Principal     int64
	Remaining     int64
	RepaidTotal   int64
	Repaid        bool
	DayTaken      int
	RateAnnual    float64
	InterestCarry decimal.Decimal
}
