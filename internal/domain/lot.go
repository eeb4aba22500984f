package domain

import "github.com/shopspring/decimal"

// PurchaseLot is one goods purchase tracked for FIFO cost-basis accounting.
// Quantity is what remains; InitialQuantity is what was bought and LostQuantity
// is the portion written off by loss events. Quantity + sold + LostQuantity
// always equals InitialQuantity.
type PurchaseLot struct {
	ID              string
	Good            string
	Quantity        int64
	UnitPrice       int64
	Day             int
	City            string
	InitialQuantity int64
	LostQuantity    int64
}

// InvestmentLot is one asset purchase tracked for FIFO cost-basis accounting.
// UnitPrice excludes trade commission. DaysHeld advances once per game day and
// gates dividend eligibility.
type InvestmentLot struct {
	ID              string
	Symbol          string
	Quantity        int64
	UnitPrice       decimal.Decimal
	Day             int
	DaysHeld        int
	InitialQuantity int64
	LostQuantity    int64
}
