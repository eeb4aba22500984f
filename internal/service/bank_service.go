package service

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
)

var daysPerYear = decimal.NewFromInt(365)

// BankService implements the savings account and the multi-loan book:
// deposits, withdrawals, daily compounding with fractional carry, loan
// origination with commission tiers and credit-capacity checks, per-loan
// interest, and repayments.
type BankService struct {
	cfg    config.BankConfig
	rng    *rand.Rand
	logger *slog.Logger
}

// NewBankService creates a BankService.
func NewBankService(cfg config.BankConfig, rng *rand.Rand, logger *slog.Logger) *BankService {
	return &BankService{cfg: cfg, rng: rng, logger: logger}
}

// Deposit moves whole units from cash into the bank account.
func (s *BankService) Deposit(st *domain.GameState, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("bank_service: deposit $%d: %w", amount, domain.ErrInvalidAmount)
	}
	if amount > st.Cash {
		return "", fmt.Errorf("bank_service: deposit $%d with $%d cash: %w", amount, st.Cash, domain.ErrInsufficientFunds)
	}

	st.Cash -= amount
	st.Bank.Balance += amount
	st.Bank.Transactions = append(st.Bank.Transactions, domain.BankTransaction{
		Type:         domain.BankTxDeposit,
		Amount:       amount,
		BalanceAfter: st.Bank.Balance,
		Day:          st.Day,
		Title:        "Deposit",
	})
	return fmt.Sprintf("Deposited $%d (balance $%d)", amount, st.Bank.Balance), nil
}

// Withdraw moves whole units from the bank account back into cash.
func (s *BankService) Withdraw(st *domain.GameState, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("bank_service: withdraw $%d: %w", amount, domain.ErrInvalidAmount)
	}
	if amount > st.Bank.Balance {
		return "", fmt.Errorf("bank_service: withdraw $%d with $%d banked: %w", amount, st.Bank.Balance, domain.ErrInsufficientFunds)
	}

	st.Bank.Balance -= amount
	st.Cash += amount
	st.Bank.Transactions = append(st.Bank.Transactions, domain.BankTransaction{
		Type:         domain.BankTxWithdraw,
		Amount:       amount,
		BalanceAfter: st.Bank.Balance,
		Day:          st.Day,
		Title:        "Withdrawal",
	})
	return fmt.Sprintf("Withdrew $%d (balance $%d)", amount, st.Bank.Balance), nil
}

// Credit adds amount to the bank balance outside the deposit flow, recording
// it as interest. Used by gain events such as bank corrections.
func (s *BankService) Credit(st *domain.GameState, amount int64, title string) {
	if amount <= 0 {
		return
	}
	st.Bank.Balance += amount
	st.Bank.Transactions = append(st.Bank.Transactions, domain.BankTransaction{
		Type:         domain.BankTxInterest,
		Amount:       amount,
		BalanceAfter: st.Bank.Balance,
		Day:          st.Day,
		Title:        title,
	})
}

// AccrueBankInterest compounds the savings balance for every day elapsed
// since the last accrual. Each day adds balance x APR/365 to the fractional
// carry; the whole part is credited and the fraction kept, so rounding never
// loses interest. Calling twice on the same day is a no-op.
func (s *BankService) AccrueBankInterest(st *domain.GameState) int64 {
	days := st.Day - st.Bank.LastInterestDay
	if days <= 0 {
		return 0
	}

	var credited int64
	rate := decimal.NewFromFloat(st.Bank.RateAnnual).Div(daysPerYear)
	for i := 0; i < days; i++ {
		st.Bank.InterestCarry = st.Bank.InterestCarry.Add(decimal.NewFromInt(st.Bank.Balance).Mul(rate))
		whole := st.Bank.InterestCarry.Floor()
		if whole.IsPositive() {
			amount := whole.IntPart()
			st.Bank.Balance += amount
			st.Bank.InterestCarry = st.Bank.InterestCarry.Sub(whole)
			credited += amount
			st.Bank.Transactions = append(st.Bank.Transactions, domain.BankTransaction{
				Type:         domain.BankTxInterest,
				Amount:       amount,
				BalanceAfter: st.Bank.Balance,
				Day:          st.Bank.LastInterestDay + i + 1,
				Title:        "Daily interest",
			})
		}
	}
	st.Bank.LastInterestDay = st.Day

	if credited > 0 {
		s.logger.Info("bank_service: interest credited",
			slog.Int64("amount", credited),
			slog.Int("days", days),
		)
	}
	return credited
}

// AccrueLoanInterest adds one day of interest to every open loan at its own
// fixed APR, with per-loan fractional carry, then resyncs total debt.
func (s *BankService) AccrueLoanInterest(st *domain.GameState) {
	for i := range st.Loans {
		loan := &st.Loans[i]
		if loan.Repaid {
			continue
		}
		daily := decimal.NewFromInt(loan.Remaining).
			Mul(decimal.NewFromFloat(loan.RateAnnual)).
			Div(daysPerYear)
		loan.InterestCarry = loan.InterestCarry.Add(daily)
		whole := loan.InterestCarry.Floor()
		if whole.IsPositive() {
			loan.Remaining += whole.IntPart()
			loan.InterestCarry = loan.InterestCarry.Sub(whole)
		}
	}
	st.RecomputeDebt()
}

// RandomizeRates redraws the savings APR and today's loan APR within their
// configured ranges. Called on every day advance.
func (s *BankService) RandomizeRates(st *domain.GameState) {
	st.Bank.RateAnnual = s.cfg.APRMin + s.rng.Float64()*(s.cfg.APRMax-s.cfg.APRMin)
	st.LoanRateToday = s.cfg.LoanAPRMin + s.rng.Float64()*(s.cfg.LoanAPRMax-s.cfg.LoanAPRMin)
}

// Wealth estimates total player wealth for credit purposes: cash discounted
// by the cash haircut, the full bank balance, and the portfolio at current
// prices discounted per asset class.
func (s *BankService) Wealth(st *domain.GameState, book *PriceBook) int64 {
	wealth := decimal.NewFromInt(st.Cash).Mul(decimal.NewFromFloat(s.cfg.CashHaircut))
	wealth = wealth.Add(decimal.NewFromInt(st.Bank.Balance))

	for symbol, qty := range st.Portfolio {
		a, ok := catalog.AssetBySymbol(symbol)
		if !ok {
			continue
		}
		var haircut float64
		switch a.Class {
		case domain.AssetClassStock:
			haircut = s.cfg.StockHaircut
		case domain.AssetClassCommodity:
			haircut = s.cfg.CommodityHaircut
		case domain.AssetClassCrypto:
			haircut = s.cfg.CryptoHaircut
		}
		value := book.Assets[symbol].Mul(decimal.NewFromInt(qty))
		wealth = wealth.Add(value.Mul(decimal.NewFromFloat(haircut)))
	}
	return wealth.Floor().IntPart()
}

// CreditCapacity returns the maximum total debt the bank will extend:
// wealth x leverage plus the base allowance.
func (s *BankService) CreditCapacity(st *domain.GameState, book *PriceBook) int64 {
	w := decimal.NewFromInt(s.Wealth(st, book))
	return w.Mul(decimal.NewFromFloat(s.cfg.CreditLeverageFactor)).
		Floor().IntPart() + s.cfg.CreditBaseAllowance
}

// TakeLoan originates a new loan. Commission is the base rate, or the high
// rate once the number of unpaid loans reaches the threshold; it is added to
// the amount owed, not deducted from the payout. The loan's APR is today's
// offered rate, fixed for the loan's life.
func (s *BankService) TakeLoan(st *domain.GameState, book *PriceBook, amount int64) (string, error) {
	if amount <= 0 || amount > s.cfg.MaxLoanAmount {
		return "", fmt.Errorf("bank_service: take loan $%d (cap $%d): %w", amount, s.cfg.MaxLoanAmount, domain.ErrInvalidAmount)
	}

	capacity := s.CreditCapacity(st, book)
	if amount > capacity-st.Debt {
		return "", fmt.Errorf("bank_service: take loan $%d with $%d debt against $%d capacity: %w",
			amount, st.Debt, capacity, domain.ErrCreditCapacityExceeded)
	}

	rate := s.cfg.LoanBaseCommissionRate
	if st.OpenLoans() >= s.cfg.HighCommissionThreshold {
		rate = s.cfg.LoanHighCommissionRate
	}
	fee := decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(rate)).Floor().IntPart()
	remaining := amount + fee

	loan := domain.Loan{
		ID:         uuid.NewString(),
		Principal:  amount,
		Remaining:  remaining,
		DayTaken:   st.Day,
		RateAnnual: st.LoanRateToday,
	}
	st.Loans = append(st.Loans, loan)
	st.Cash += amount
	st.RecomputeDebt()

	s.logger.Info("bank_service: loan taken",
		slog.String("loan_id", loan.ID),
		slog.Int64("amount", amount),
		slog.Int64("fee", fee),
		slog.Float64("apr", loan.RateAnnual),
	)
	return fmt.Sprintf("Loan of $%d taken (fee $%d, owing $%d)", amount, fee, remaining), nil
}

// RepayLoan pays down one loan, clamping the payment to the remaining
// balance. A loan paid to zero is marked repaid.
func (s *BankService) RepayLoan(st *domain.GameState, loanID string, amount int64) (string, error) {
	var loan *domain.Loan
	for i := range st.Loans {
		if st.Loans[i].ID == loanID {
			loan = &st.Loans[i]
			break
		}
	}
	if loan == nil || loan.Repaid {
		return "", fmt.Errorf("bank_service: repay loan %q: %w", loanID, domain.ErrNoActiveLoan)
	}
	if amount <= 0 {
		return "", fmt.Errorf("bank_service: repay $%d: %w", amount, domain.ErrInvalidAmount)
	}
	if amount > loan.Remaining {
		amount = loan.Remaining
	}
	if amount > st.Cash {
		return "", fmt.Errorf("bank_service: repay $%d with $%d cash: %w", amount, st.Cash, domain.ErrInsufficientFunds)
	}

	st.Cash -= amount
	loan.Remaining -= amount
	loan.RepaidTotal += amount
	if loan.Remaining == 0 {
		loan.Repaid = true
	}
	st.RecomputeDebt()

	s.logger.Info("bank_service: loan repaid",
		slog.String("loan_id", loanID),
		slog.Int64("amount", amount),
		slog.Int64("remaining", loan.Remaining),
	)
	if loan.Repaid {
		return fmt.Sprintf("Repaid $%d; loan cleared", amount), nil
	}
	return fmt.Sprintf("Repaid $%d; $%d remaining", amount, loan.Remaining), nil
}
