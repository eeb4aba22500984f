package service

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
)

func newBankService(t *testing.T) *BankService {
	t.Helper()
	return NewBankService(config.Defaults().Bank, rand.New(rand.NewSource(42)), testLogger())
}

func TestDepositAndWithdraw(t *testing.T) {
	st := newTestState(1000, 10)
	svc := newBankService(t)

	_, err := svc.Deposit(st, 600)
	require.NoError(t, err)
	assert.Equal(t, int64(400), st.Cash)
	assert.Equal(t, int64(600), st.Bank.Balance)

	_, err = svc.Withdraw(st, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(600), st.Cash)
	assert.Equal(t, int64(400), st.Bank.Balance)

	require.Len(t, st.Bank.Transactions, 2)
	assert.Equal(t, domain.BankTxDeposit, st.Bank.Transactions[0].Type)
	assert.Equal(t, domain.BankTxWithdraw, st.Bank.Transactions[1].Type)
}

func TestDepositWithdrawValidation(t *testing.T) {
	st := newTestState(100, 10)
	svc := newBankService(t)

	_, err := svc.Deposit(st, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = svc.Deposit(st, 500)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	_, err = svc.Withdraw(st, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestAccrueBankInterestIsIdempotentPerDay(t *testing.T) {
	st := newTestState(0, 10)
	st.Bank.Balance = 365_000
	st.Bank.RateAnnual = 0.01 // exactly $10 per day
	st.Bank.LastInterestDay = 1
	st.Day = 3

	svc := newBankService(t)
	credited := svc.AccrueBankInterest(st)
	assert.Equal(t, int64(20), credited)
	assert.Equal(t, int64(365_020), st.Bank.Balance)
	assert.Equal(t, 3, st.Bank.LastInterestDay)

	// A second call on the same day credits nothing.
	assert.Equal(t, int64(0), svc.AccrueBankInterest(st))
	assert.Equal(t, int64(365_020), st.Bank.Balance)
}

func TestAccrueBankInterestCarriesFractions(t *testing.T) {
	st := newTestState(0, 10)
	st.Bank.Balance = 1000
	st.Bank.RateAnnual = 0.0365 // 10 cents per day
	st.Bank.LastInterestDay = 1

	svc := newBankService(t)
	for day := 2; day <= 10; day++ {
		st.Day = day
		assert.Equal(t, int64(0), svc.AccrueBankInterest(st))
	}
	st.Day = 11
	// Ten days of 0.1 finally make a whole unit.
	assert.Equal(t, int64(1), svc.AccrueBankInterest(st))
	assert.Equal(t, int64(1001), st.Bank.Balance)
	assert.True(t, st.Bank.InterestCarry.LessThan(decimal.NewFromInt(1)))
}

func TestAccrueLoanInterestPerLoan(t *testing.T) {
	st := newTestState(0, 10)
	st.Loans = []domain.Loan{
		{ID: "a", Principal: 365_000, Remaining: 365_000, RateAnnual: 0.10},
		{ID: "b", Principal: 100, Remaining: 100, RateAnnual: 0.10, Repaid: true},
	}
	svc := newBankService(t)

	svc.AccrueLoanInterest(st)

	assert.Equal(t, int64(365_100), st.Loans[0].Remaining)
	assert.Equal(t, int64(100), st.Loans[1].Remaining, "repaid loans stop accruing")
	assert.Equal(t, int64(365_100), st.Debt)
}

func TestWealthAppliesHaircuts(t *testing.T) {
	st := newTestState(1000, 10)
	st.Bank.Balance = 500
	st.Portfolio["GOOGL"] = 10
	book := NewPriceBook()
	book.Assets["GOOGL"] = decimal.NewFromInt(150)

	svc := newBankService(t)
	// cash 1000 x 0.1 + bank 500 + stock 1500 x 0.5 = 1350
	assert.Equal(t, int64(1350), svc.Wealth(st, book))
	// capacity = floor(1350 x 0.8) + 1000
	assert.Equal(t, int64(2080), svc.CreditCapacity(st, book))
}

func TestTakeLoanCommissionAddsToOwed(t *testing.T) {
	st := newTestState(5000, 10)
	st.LoanRateToday = 0.10
	book := NewPriceBook()
	svc := newBankService(t)

	_, err := svc.TakeLoan(st, book, 1000)
	require.NoError(t, err)

	require.Len(t, st.Loans, 1)
	loan := st.Loans[0]
	assert.Equal(t, int64(1000), loan.Principal)
	assert.Equal(t, int64(1100), loan.Remaining, "10% commission is owed, not deducted")
	assert.Equal(t, 0.10, loan.RateAnnual)
	assert.Equal(t, int64(6000), st.Cash, "full principal is paid out")
	assert.Equal(t, int64(1100), st.Debt)
}

func TestTakeLoanHighCommissionTier(t *testing.T) {
	st := newTestState(0, 10)
	st.Bank.Balance = 100_000
	st.LoanRateToday = 0.05
	for i := 0; i < 10; i++ {
		st.Loans = append(st.Loans, domain.Loan{ID: string(rune('a' + i)), Principal: 10, Remaining: 10})
	}
	st.RecomputeDebt()
	book := NewPriceBook()
	svc := newBankService(t)

	_, err := svc.TakeLoan(st, book, 1000)
	require.NoError(t, err)

	loan := st.Loans[len(st.Loans)-1]
	assert.Equal(t, int64(1300), loan.Remaining, "30% commission from the 10th unpaid loan")
}

func TestTakeLoanRespectsCapacity(t *testing.T) {
	st := newTestState(0, 10)
	book := NewPriceBook()
	svc := newBankService(t)

	// Broke player: capacity is just the base allowance of 1000.
	_, err := svc.TakeLoan(st, book, 1001)
	assert.ErrorIs(t, err, domain.ErrCreditCapacityExceeded)

	_, err = svc.TakeLoan(st, book, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = svc.TakeLoan(st, book, 2_000_000)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.TakeLoan(st, book, 1000)
	require.NoError(t, err)

	// Existing debt eats into the remaining capacity.
	_, err = svc.TakeLoan(st, book, 1000)
	assert.ErrorIs(t, err, domain.ErrCreditCapacityExceeded)
}

func TestRepayLoanClampsAndClears(t *testing.T) {
	st := newTestState(5000, 10)
	st.Loans = []domain.Loan{{ID: "loan-1", Principal: 1000, Remaining: 1100}}
	st.RecomputeDebt()
	svc := newBankService(t)

	_, err := svc.RepayLoan(st, "loan-1", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), st.Loans[0].Remaining)
	assert.Equal(t, int64(100), st.Loans[0].RepaidTotal)
	assert.Equal(t, int64(4900), st.Cash)

	// Overpayment clamps to the remaining balance.
	_, err = svc.RepayLoan(st, "loan-1", 99_999)
	require.NoError(t, err)
	assert.True(t, st.Loans[0].Repaid)
	assert.Equal(t, int64(0), st.Loans[0].Remaining)
	assert.Equal(t, int64(1100), st.Loans[0].RepaidTotal, "payments accumulate across repayments")
	assert.Equal(t, int64(3900), st.Cash)
	assert.Equal(t, int64(0), st.Debt)

	_, err = svc.RepayLoan(st, "loan-1", 100)
	assert.ErrorIs(t, err, domain.ErrNoActiveLoan)
	_, err = svc.RepayLoan(st, "no-such-loan", 100)
	assert.ErrorIs(t, err, domain.ErrNoActiveLoan)
}

func TestRandomizeRatesStaysInRange(t *testing.T) {
	st := newTestState(0, 10)
	svc := newBankService(t)

	for i := 0; i < 100; i++ {
		svc.RandomizeRates(st)
		assert.GreaterOrEqual(t, st.Bank.RateAnnual, 0.01)
		assert.LessOrEqual(t, st.Bank.RateAnnual, 0.03)
		assert.GreaterOrEqual(t, st.LoanRateToday, 0.01)
		assert.LessOrEqual(t, st.LoanRateToday, 0.20)
	}
}
