package service

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
)

// InvestmentsService implements the FIFO investment ledger: buying and
// selling assets with commission, loss write-offs, holding-day tracking, and
// scheduled dividends. Commission never enters a lot's cost basis.
type InvestmentsService struct {
	cfg    config.InvestmentsConfig
	logger *slog.Logger
}

// NewInvestmentsService creates an InvestmentsService.
func NewInvestmentsService(cfg config.InvestmentsConfig, logger *slog.Logger) *InvestmentsService {
	return &InvestmentsService{cfg: cfg, logger: logger}
}

// fee returns max(amount x rate, min fee).
func (s *InvestmentsService) fee(amount decimal.Decimal, rate float64) decimal.Decimal {
	f := amount.Mul(decimal.NewFromFloat(rate))
	min := decimal.NewFromInt(s.cfg.MinFee)
	if f.LessThan(min) {
		return min
	}
	return f
}

// BuyAsset buys quantity units of an asset at the current price. The debit is
// cost plus commission, rounded up to a whole unit; the new lot's cost basis
// is the raw price without commission.
func (s *InvestmentsService) BuyAsset(st *domain.GameState, book *PriceBook, symbol string, quantity int64) (string, error) {
	if _, ok := catalog.AssetBySymbol(symbol); !ok {
		return "", fmt.Errorf("investments_service: buy %q: %w", symbol, domain.ErrUnknownAsset)
	}
	if quantity <= 0 {
		return "", fmt.Errorf("investments_service: buy %q: %w", symbol, domain.ErrInvalidAmount)
	}

	price := book.Assets[symbol]
	cost := price.Mul(decimal.NewFromInt(quantity))
	commission := s.fee(cost, s.cfg.BuyFeeRate)
	debit := cost.Add(commission).Ceil().IntPart()

	if debit > st.Cash {
		return "", fmt.Errorf("investments_service: buy %dx %s for $%d with $%d cash: %w",
			quantity, symbol, debit, st.Cash, domain.ErrInsufficientFunds)
	}

	st.Cash -= debit
	st.Portfolio[symbol] += quantity
	st.InvestmentLots = append(st.InvestmentLots, domain.InvestmentLot{
		ID:              uuid.NewString(),
		Symbol:          symbol,
		Quantity:        quantity,
		UnitPrice:       price,
		Day:             st.Day,
		InitialQuantity: quantity,
	})
	city, _ := catalog.CityAt(st.CurrentCity)
	st.Transactions = append(st.Transactions, domain.Transaction{
		ID:           uuid.NewString(),
		Type:         domain.TransactionInvestBuy,
		Good:         symbol,
		Quantity:     quantity,
		PricePerUnit: price.Round(0).IntPart(),
		Total:        debit,
		Day:          st.Day,
		City:         city.Name,
	})

	s.logger.Info("investments_service: asset bought",
		slog.String("symbol", symbol),
		slog.Int64("quantity", quantity),
		slog.String("price", price.String()),
		slog.String("commission", commission.String()),
	)
	return fmt.Sprintf("Bought %dx %s at %s (fee %s)", quantity, symbol, price.StringFixed(2), commission.StringFixed(2)), nil
}

// SellAsset sells quantity units of an asset FIFO across lots. The credit is
// gross proceeds minus commission, rounded down to a whole unit.
func (s *InvestmentsService) SellAsset(st *domain.GameState, book *PriceBook, symbol string, quantity int64) (string, error) {
	if _, ok := catalog.AssetBySymbol(symbol); !ok {
		return "", fmt.Errorf("investments_service: sell %q: %w", symbol, domain.ErrUnknownAsset)
	}
	if quantity <= 0 {
		return "", fmt.Errorf("investments_service: sell %q: %w", symbol, domain.ErrInvalidAmount)
	}
	if st.Portfolio[symbol] < quantity {
		return "", fmt.Errorf("investments_service: sell %dx %s with %d held: %w",
			quantity, symbol, st.Portfolio[symbol], domain.ErrInsufficientQuantity)
	}

	s.consumeAssetLots(st, symbol, quantity, LossFIFO)
	return s.creditAssetSale(st, book, symbol, quantity)
}

// SellAssetLot sells quantity units out of one specific investment lot.
func (s *InvestmentsService) SellAssetLot(st *domain.GameState, book *PriceBook, lotID string, quantity int64) (string, error) {
	idx := -1
	for i := range st.InvestmentLots {
		if st.InvestmentLots[i].ID == lotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("investments_service: sell lot %q: %w", lotID, domain.ErrUnknownLot)
	}
	lot := &st.InvestmentLots[idx]
	if quantity <= 0 {
		return "", fmt.Errorf("investments_service: sell lot %q: %w", lotID, domain.ErrInvalidAmount)
	}
	if lot.Quantity < quantity {
		return "", fmt.Errorf("investments_service: sell %d from lot %q holding %d: %w",
			quantity, lotID, lot.Quantity, domain.ErrInsufficientQuantity)
	}

	symbol := lot.Symbol
	lot.Quantity -= quantity
	if lot.Quantity == 0 {
		st.InvestmentLots = append(st.InvestmentLots[:idx], st.InvestmentLots[idx+1:]...)
	}
	return s.creditAssetSale(st, book, symbol, quantity)
}

// creditAssetSale applies proceeds minus commission after lots have been
// consumed.
func (s *InvestmentsService) creditAssetSale(st *domain.GameState, book *PriceBook, symbol string, quantity int64) (string, error) {
	price := book.Assets[symbol]
	gross := price.Mul(decimal.NewFromInt(quantity))
	commission := s.fee(gross, s.cfg.SellFeeRate)
	credit := gross.Sub(commission).Floor().IntPart()
	if credit < 0 {
		credit = 0
	}

	st.Cash += credit
	st.Portfolio[symbol] -= quantity
	if st.Portfolio[symbol] == 0 {
		delete(st.Portfolio, symbol)
	}
	city, _ := catalog.CityAt(st.CurrentCity)
	st.Transactions = append(st.Transactions, domain.Transaction{
		ID:           uuid.NewString(),
		Type:         domain.TransactionInvestSell,
		Good:         symbol,
		Quantity:     quantity,
		PricePerUnit: price.Round(0).IntPart(),
		Total:        credit,
		Day:          st.Day,
		City:         city.Name,
	})

	s.logger.Info("investments_service: asset sold",
		slog.String("symbol", symbol),
		slog.Int64("quantity", quantity),
		slog.Int64("credit", credit),
	)
	return fmt.Sprintf("Sold %dx %s at %s for $%d (fee %s)",
		quantity, symbol, price.StringFixed(2), credit, commission.StringFixed(2)), nil
}

// RecordLoss writes off up to quantity units of an asset per the policy,
// tagging each consumed lot's lost quantity. Returns the quantity written off
// and its cost-basis value in whole units.
func (s *InvestmentsService) RecordLoss(st *domain.GameState, symbol string, quantity int64, policy LossPolicy) (lostQty int64, lostValue int64) {
	held := st.Portfolio[symbol]
	if quantity > held {
		quantity = held
	}
	if quantity <= 0 {
		return 0, 0
	}

	var indices []int
	for i := range st.InvestmentLots {
		if st.InvestmentLots[i].Symbol == symbol {
			indices = append(indices, i)
		}
	}
	if policy == LossFromLast {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	value := decimal.Zero
	remaining := quantity
	var remove []int
	for _, i := range indices {
		if remaining == 0 {
			break
		}
		lot := &st.InvestmentLots[i]
		take := lot.Quantity
		if take > remaining {
			take = remaining
		}
		lot.Quantity -= take
		lot.LostQuantity += take
		remaining -= take
		lostQty += take
		value = value.Add(lot.UnitPrice.Mul(decimal.NewFromInt(take)))
		if lot.Quantity == 0 {
			remove = append(remove, i)
		}
	}
	sort.Ints(remove)
	for i := len(remove) - 1; i >= 0; i-- {
		idx := remove[i]
		st.InvestmentLots = append(st.InvestmentLots[:idx], st.InvestmentLots[idx+1:]...)
	}

	st.Portfolio[symbol] -= lostQty
	if st.Portfolio[symbol] == 0 {
		delete(st.Portfolio, symbol)
	}

	s.logger.Info("investments_service: loss recorded",
		slog.String("symbol", symbol),
		slog.Int64("quantity", lostQty),
	)
	return lostQty, value.Round(0).IntPart()
}

// consumeAssetLots removes quantity units from the symbol's lots in policy
// order. Callers have validated that enough units are held.
func (s *InvestmentsService) consumeAssetLots(st *domain.GameState, symbol string, quantity int64, policy LossPolicy) {
	var indices []int
	for i := range st.InvestmentLots {
		if st.InvestmentLots[i].Symbol == symbol {
			indices = append(indices, i)
		}
	}
	if policy == LossFromLast {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	remaining := quantity
	var remove []int
	for _, i := range indices {
		if remaining == 0 {
			break
		}
		lot := &st.InvestmentLots[i]
		if lot.Quantity <= remaining {
			remaining -= lot.Quantity
			lot.Quantity = 0
			remove = append(remove, i)
		} else {
			lot.Quantity -= remaining
			remaining = 0
		}
	}
	sort.Ints(remove)
	for i := len(remove) - 1; i >= 0; i-- {
		idx := remove[i]
		st.InvestmentLots = append(st.InvestmentLots[:idx], st.InvestmentLots[idx+1:]...)
	}
}

// IncrementHoldingDays advances every lot's holding counter by one day.
func (s *InvestmentsService) IncrementHoldingDays(st *domain.GameState) {
	for i := range st.InvestmentLots {
		st.InvestmentLots[i].DaysHeld++
	}
}

// PayDividends pays the configured rate on every lot held at least the
// minimum holding period, crediting the bank account. It only runs on
// dividend days (day divisible by the interval) and returns the total paid.
func (s *InvestmentsService) PayDividends(st *domain.GameState, book *PriceBook) int64 {
	if s.cfg.DividendRate <= 0 || st.Day%s.cfg.DividendIntervalDays != 0 {
		return 0
	}

	total := decimal.Zero
	rate := decimal.NewFromFloat(s.cfg.DividendRate)
	for _, lot := range st.InvestmentLots {
		if lot.DaysHeld < s.cfg.DividendMinHoldingDays {
			continue
		}
		a, ok := catalog.AssetBySymbol(lot.Symbol)
		if !ok || a.Class != domain.AssetClassStock {
			continue
		}
		price := book.Assets[lot.Symbol]
		total = total.Add(price.Mul(decimal.NewFromInt(lot.Quantity)).Mul(rate))
	}

	paid := total.Floor().IntPart()
	if paid <= 0 {
		return 0
	}
	st.Bank.Balance += paid
	st.Bank.Transactions = append(st.Bank.Transactions, domain.BankTransaction{
		Type:         domain.BankTxDividend,
		Amount:       paid,
		BalanceAfter: st.Bank.Balance,
		Day:          st.Day,
		Title:        "Dividend payout",
	})

	s.logger.Info("investments_service: dividends paid", slog.Int64("amount", paid))
	return paid
}

// PortfolioValue returns the market value of all holdings at current prices.
func PortfolioValue(st *domain.GameState, book *PriceBook) decimal.Decimal {
	total := decimal.Zero
	for symbol, qty := range st.Portfolio {
		total = total.Add(book.Assets[symbol].Mul(decimal.NewFromInt(qty)))
	}
	return total
}
