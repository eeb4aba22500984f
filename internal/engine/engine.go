// Package engine wires the game services together and exposes the player
// operations. The engine owns the game state, the price book, and the RNG;
// everything runs on the caller's goroutine.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
	"github.com/mercatorgames/tycoon/internal/event"
	"github.com/mercatorgames/tycoon/internal/savegame"
	"github.com/mercatorgames/tycoon/internal/service"
)

// Engine is the single-goroutine game core.
type Engine struct {
	cfg    config.Config
	logger *slog.Logger
	rng    *rand.Rand

	state *domain.GameState
	book  *service.PriceBook

	goods    *service.GoodsService
	cargo    *service.CargoService
	invest   *service.InvestmentsService
	bank     *service.BankService
	pricing  *service.PricingService
	lotto    *service.LottoService
	registry *event.Registry
	saves    *savegame.Service
}

// New builds an Engine for a fresh game at the configured difficulty. A seed
// of 0 seeds the RNG from the wall clock.
func New(cfg config.Config, logger *slog.Logger) (*Engine, error) {
	diff, ok := catalog.DifficultyByName(cfg.Game.Difficulty)
	if !ok {
		return nil, fmt.Errorf("engine: unknown difficulty %q", cfg.Game.Difficulty)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	e := &Engine{
		cfg:      cfg,
		logger:   logger,
		rng:      rng,
		state:    domain.NewGameState(diff),
		book:     service.NewPriceBook(),
		goods:    service.NewGoodsService(logger),
		cargo:    service.NewCargoService(cfg.Cargo, logger),
		invest:   service.NewInvestmentsService(cfg.Investments, logger),
		bank:     service.NewBankService(cfg.Bank, rng, logger),
		pricing:  service.NewPricingService(cfg.Pricing, rng, logger),
		lotto:    service.NewLottoService(cfg.Lotto, rng, logger),
		registry: event.NewRegistry(logger),
		saves:    savegame.NewService(cfg.Save.Path, cfg.Bank, logger),
	}
	event.RegisterAll(e.registry)

	e.bank.RandomizeRates(e.state)
	e.regeneratePrices()

	logger.Info("engine: new game",
		slog.String("difficulty", diff.Name),
		slog.Int64("seed", seed),
	)
	return e, nil
}

// State exposes the live game state for read-only presentation.
func (e *Engine) State() *domain.GameState { return e.state }

// Book exposes the live price book for read-only presentation.
func (e *Engine) Book() *service.PriceBook { return e.book }

// CurrentCity returns the city the player is in.
func (e *Engine) CurrentCity() domain.City {
	city, _ := catalog.CityAt(e.state.CurrentCity)
	return city
}

// CargoUsed reports the occupied cargo space.
func (e *Engine) CargoUsed() int64 { return service.CargoUsed(e.state) }

// NextCargoExtensionCost prices the next capacity extension.
func (e *Engine) NextCargoExtensionCost() int64 { return e.cargo.NextExtensionCost(e.state) }

// CreditCapacity reports the current borrowing limit.
func (e *Engine) CreditCapacity() int64 { return e.bank.CreditCapacity(e.state, e.book) }

// Wealth reports total net worth as the bank values it.
func (e *Engine) Wealth() int64 { return e.bank.Wealth(e.state, e.book) }

// Buy purchases a quantity of a good at today's local price.
func (e *Engine) Buy(good string, quantity int64) (string, error) {
	return e.goods.Buy(e.state, e.book, good, quantity)
}

// Sell sells a quantity of a good, consuming lots oldest first.
func (e *Engine) Sell(good string, quantity int64) (string, error) {
	return e.goods.Sell(e.state, e.book, good, quantity)
}

// SellLot sells from one specific purchase lot.
func (e *Engine) SellLot(lotID string, quantity int64) (string, error) {
	return e.goods.SellLot(e.state, e.book, lotID, quantity)
}

// BuyAsset buys shares of a tradable asset, fee on top.
func (e *Engine) BuyAsset(symbol string, quantity int64) (string, error) {
	return e.invest.BuyAsset(e.state, e.book, symbol, quantity)
}

// SellAsset sells shares oldest lots first, fee deducted from proceeds.
func (e *Engine) SellAsset(symbol string, quantity int64) (string, error) {
	return e.invest.SellAsset(e.state, e.book, symbol, quantity)
}

// SellAssetLot sells from one specific investment lot.
func (e *Engine) SellAssetLot(lotID string, quantity int64) (string, error) {
	return e.invest.SellAssetLot(e.state, e.book, lotID, quantity)
}

// Deposit moves cash into the bank account.
func (e *Engine) Deposit(amount int64) (string, error) {
	return e.bank.Deposit(e.state, amount)
}

// Withdraw moves bank balance back to cash.
func (e *Engine) Withdraw(amount int64) (string, error) {
	return e.bank.Withdraw(e.state, amount)
}

// TakeLoan borrows against the player's credit capacity.
func (e *Engine) TakeLoan(amount int64) (string, error) {
	return e.bank.TakeLoan(e.state, e.book, amount)
}

// RepayLoan pays down one loan, clamped to its remaining balance.
func (e *Engine) RepayLoan(loanID string, amount int64) (string, error) {
	return e.bank.RepayLoan(e.state, loanID, amount)
}

// ExtendCargo buys extra cargo capacity.
func (e *Engine) ExtendCargo(count int) (string, error) {
	return e.cargo.ExtendCapacity(e.state, count)
}

// BuyLottoTicket buys one ticket for tomorrow's draw.
func (e *Engine) BuyLottoTicket() (string, error) {
	return e.lotto.BuyTicket(e.state)
}

// TravelFee prices a trip at the current cargo load.
func (e *Engine) TravelFee() int64 {
	return e.cfg.Travel.BaseFee + e.cfg.Travel.FeePerCargoUnit*service.CargoUsed(e.state)
}

// Travel moves the player to another city and advances the day: rates are
// redrawn, interest accrues, holdings age, travel events roll, prices
// regenerate, dividends pay out, and pending lotto tickets settle.
func (e *Engine) Travel(cityIndex int) (string, error) {
	dest, ok := catalog.CityAt(cityIndex)
	if !ok {
		return "", fmt.Errorf("engine: travel: city %d: %w", cityIndex, domain.ErrUnknownCity)
	}
	if cityIndex == e.state.CurrentCity {
		return "", fmt.Errorf("engine: travel: already in %s: %w", dest.Name, domain.ErrSameCity)
	}

	fee := e.TravelFee()
	if e.state.Cash < fee {
		return "", fmt.Errorf("engine: travel: fee $%d: %w", fee, domain.ErrInsufficientFunds)
	}
	e.state.Cash -= fee

	e.state.CurrentCity = cityIndex
	e.state.Day++

	e.bank.RandomizeRates(e.state)
	if credited := e.bank.AccrueBankInterest(e.state); credited > 0 {
		e.state.AddMessage(fmt.Sprintf("Bank interest credited: $%d.", credited),
			domain.MessageInfo, "bank", e.cfg.Messages.MaxLog)
	}
	e.bank.AccrueLoanInterest(e.state)
	e.invest.IncrementHoldingDays(e.state)

	for _, out := range e.registry.Run(e.eventContext(), dest.Events) {
		e.state.AddMessage(out.Message, out.Level, out.Type, e.cfg.Messages.MaxLog)
	}

	e.regeneratePrices()

	if paid := e.invest.PayDividends(e.state, e.book); paid > 0 {
		e.state.AddMessage(fmt.Sprintf("Dividends paid to your bank account: $%d.", paid),
			domain.MessageInfo, "dividends", e.cfg.Messages.MaxLog)
	}
	if won := e.lotto.DailyDraw(e.state); won > 0 {
		e.state.AddMessage(fmt.Sprintf("Lotto win: $%d!", won),
			domain.MessageSuccess, "lotto", e.cfg.Messages.MaxLog)
	}

	e.logger.Info("engine: traveled",
		slog.String("city", dest.Name),
		slog.Int("day", e.state.Day),
		slog.Int64("fee", fee),
	)
	return fmt.Sprintf("Arrived in %s on day %d (travel fee $%d).", dest.Name, e.state.Day, fee), nil
}

// Save writes the current game to the configured save path.
func (e *Engine) Save() (string, error) {
	if err := e.saves.Save(e.state, e.book); err != nil {
		return "", err
	}
	return fmt.Sprintf("Game saved to %s.", e.saves.Path()), nil
}

// Load replaces the running game with the saved one. On failure the running
// game is left untouched. Bank interest missed since the save catches up
// immediately.
func (e *Engine) Load() (string, error) {
	st, book, err := e.saves.Load()
	if err != nil {
		return "", err
	}
	e.state = st
	e.book = book
	e.bank.AccrueBankInterest(e.state)
	return fmt.Sprintf("Game loaded from %s (day %d).", e.saves.Path(), e.state.Day), nil
}

func (e *Engine) eventContext() *event.Context {
	return &event.Context{
		State:   e.state,
		Book:    e.book,
		Goods:   e.goods,
		Invest:  e.invest,
		Bank:    e.bank,
		Pricing: e.pricing,
		Rng:     e.rng,
		Weights: e.cfg.Events.Weights,
	}
}

// regeneratePrices rolls fresh goods prices for the current city, consuming
// any one-day modifiers, and fresh asset prices.
func (e *Engine) regeneratePrices() {
	city, _ := catalog.CityAt(e.state.CurrentCity)
	e.pricing.GenerateGoodsPrices(e.book, city, e.state.PriceModifiers)
	e.pricing.GenerateAssetPrices(e.book)
}
