// Package config defines the top-level configuration for the merchant game
// engine and provides validation helpers.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure. Fields are populated from a TOML
// file and then optionally overridden by TYCOON_* environment variables.
type Config struct {
	Game        GameConfig        `toml:"game"`
	Pricing     PricingConfig     `toml:"pricing"`
	Cargo       CargoConfig       `toml:"cargo"`
	Bank        BankConfig        `toml:"bank"`
	Investments InvestmentsConfig `toml:"investments"`
	Travel      TravelConfig      `toml:"travel"`
	Events      EventsConfig      `toml:"events"`
	Lotto       LottoConfig       `toml:"lotto"`
	Save        SaveConfig        `toml:"save"`
	Messages    MessagesConfig    `toml:"messages"`
	LogLevel    string            `toml:"log_level"`
}

// GameConfig holds new-game parameters.
type GameConfig struct {
	Difficulty string `toml:"difficulty"`
	// Seed feeds the engine RNG; 0 means seed from the wall clock.
	Seed int64 `toml:"seed"`
}

// PricingConfig holds price-generation parameters.
type PricingConfig struct {
	MinUnitPrice       int64   `toml:"min_unit_price"`
	HistoryWindow      int     `toml:"history_window"`
	AssetVarianceScale float64 `toml:"asset_variance_scale"`
}

// CargoConfig holds cargo capacity extension pricing.
type CargoConfig struct {
	ExtendBaseCost int64   `toml:"extend_base_cost"`
	ExtendStep     int64   `toml:"extend_step"`
	ExtendMode     string  `toml:"extend_mode"` // "linear" or "exponential"
	ExtendFactor   float64 `toml:"extend_factor"`
}

// BankConfig holds savings and loan parameters.
type BankConfig struct {
	APRMin                  float64 `toml:"apr_min"`
	APRMax                  float64 `toml:"apr_max"`
	LoanAPRMin              float64 `toml:"loan_apr_min"`
	LoanAPRMax              float64 `toml:"loan_apr_max"`
	LoanBaseCommissionRate  float64 `toml:"loan_base_commission_rate"`
	LoanHighCommissionRate  float64 `toml:"loan_high_commission_rate"`
	HighCommissionThreshold int     `toml:"high_commission_threshold"`
	CreditLeverageFactor    float64 `toml:"credit_leverage_factor"`
	CreditBaseAllowance     int64   `toml:"credit_base_allowance"`
	MaxLoanAmount           int64   `toml:"max_loan_amount"`
	CashHaircut             float64 `toml:"cash_haircut"`
	StockHaircut            float64 `toml:"stock_haircut"`
	CommodityHaircut        float64 `toml:"commodity_haircut"`
	CryptoHaircut           float64 `toml:"crypto_haircut"`
}

// InvestmentsConfig holds asset-trading fees and dividend scheduling.
type InvestmentsConfig struct {
	BuyFeeRate             float64 `toml:"buy_fee_rate"`
	SellFeeRate            float64 `toml:"sell_fee_rate"`
	MinFee                 int64   `toml:"min_fee"`
	DividendIntervalDays   int     `toml:"dividend_interval_days"`
	DividendMinHoldingDays int     `toml:"dividend_min_holding_days"`
	DividendRate           float64 `toml:"dividend_rate"`
}

// TravelConfig holds travel fee parameters.
type TravelConfig struct {
	BaseFee         int64 `toml:"base_fee"`
	FeePerCargoUnit int64 `toml:"fee_per_cargo_unit"`
}

// EventsConfig holds per-event selection weights keyed by event type name.
// Unknown keys are ignored; a weight of 0 disables the event.
type EventsConfig struct {
	Weights map[string]int `toml:"weights"`
}

// LottoConfig holds lottery parameters.
type LottoConfig struct {
	TicketPrice      int64 `toml:"ticket_price"`
	MaxNumber        int   `toml:"max_number"`
	NumbersPerTicket int   `toml:"numbers_per_ticket"`
	Prize3           int64 `toml:"prize_3"`
	Prize4           int64 `toml:"prize_4"`
	Prize5           int64 `toml:"prize_5"`
	Prize6           int64 `toml:"prize_6"`
}

// SaveConfig holds savegame location.
type SaveConfig struct {
	Path string `toml:"path"`
}

// MessagesConfig bounds the in-game message log.
type MessagesConfig struct {
	MaxLog int `toml:"max_log"`
}

// Defaults returns a Config populated with the standard game balance.
func Defaults() Config {
	return Config{
		Game: GameConfig{
			Difficulty: "normal",
			Seed:       0,
		},
		Pricing: PricingConfig{
			MinUnitPrice:       1,
			HistoryWindow:      10,
			AssetVarianceScale: 1.0,
		},
		Cargo: CargoConfig{
			ExtendBaseCost: 10_000,
			ExtendStep:     10,
			ExtendMode:     "linear",
			ExtendFactor:   2.0,
		},
		Bank: BankConfig{
			APRMin:                  0.01,
			APRMax:                  0.03,
			LoanAPRMin:              0.01,
			LoanAPRMax:              0.20,
			LoanBaseCommissionRate:  0.10,
			LoanHighCommissionRate:  0.30,
			HighCommissionThreshold: 10,
			CreditLeverageFactor:    0.8,
			CreditBaseAllowance:     1000,
			MaxLoanAmount:           1_000_000,
			CashHaircut:             0.1,
			StockHaircut:            0.5,
			CommodityHaircut:        0.7,
			CryptoHaircut:           0.2,
		},
		Investments: InvestmentsConfig{
			BuyFeeRate:             0.001,
			SellFeeRate:            0.003,
			MinFee:                 1,
			DividendIntervalDays:   11,
			DividendMinHoldingDays: 10,
			DividendRate:           0.01,
		},
		Travel: TravelConfig{
			BaseFee:         100,
			FeePerCargoUnit: 1,
		},
		Events: EventsConfig{
			Weights: map[string]int{
				"robbery":           8,
				"fire":              5,
				"flood":             4,
				"defective_batch":   5,
				"customs_duty":      6,
				"stolen_goods":      5,
				"cash_damage":       4,
				"portfolio_crash":   3,
				"fbi_confiscation":  2,
				"contraband_scam":   6,
				"lotto_ticket_lost": 4,
				"contest_win":       3,
				"dividend_bonus":    6,
				"bank_correction":   4,
				"portfolio_boom":    3,
				"lottery":           3,
				"promo_campaign":    5,
				"oversupply":        4,
				"shortage":          4,
				"loyal_discount":    1,
				"market_boom":       8,
				"market_crash":      8,
			},
		},
		Lotto: LottoConfig{
			TicketPrice:      50,
			MaxNumber:        49,
			NumbersPerTicket: 6,
			Prize3:           500,
			Prize4:           5_000,
			Prize5:           100_000,
			Prize6:           2_000_000,
		},
		Save: SaveConfig{
			Path: "savegame.tyc",
		},
		Messages: MessagesConfig{
			MaxLog: 200,
		},
		LogLevel: "info",
	}
}

// validDifficulties enumerates the accepted values for Game.Difficulty.
var validDifficulties = map[string]bool{
	"playground": true,
	"easy":       true,
	"normal":     true,
	"hard":       true,
	"insane":     true,
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid or missing values and returns a
// combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	// Game
	if !validDifficulties[strings.ToLower(c.Game.Difficulty)] {
		errs = append(errs, fmt.Sprintf("game: unknown difficulty %q (valid: playground, easy, normal, hard, insane)", c.Game.Difficulty))
	}

	// LogLevel
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	// Pricing
	if c.Pricing.MinUnitPrice < 1 {
		errs = append(errs, "pricing: min_unit_price must be >= 1")
	}
	if c.Pricing.HistoryWindow < 1 {
		errs = append(errs, "pricing: history_window must be >= 1")
	}
	if c.Pricing.AssetVarianceScale <= 0 {
		errs = append(errs, "pricing: asset_variance_scale must be > 0")
	}

	// Cargo
	if c.Cargo.ExtendMode != "linear" && c.Cargo.ExtendMode != "exponential" {
		errs = append(errs, fmt.Sprintf("cargo: extend_mode must be \"linear\" or \"exponential\", got %q", c.Cargo.ExtendMode))
	}
	if c.Cargo.ExtendBaseCost <= 0 {
		errs = append(errs, "cargo: extend_base_cost must be > 0")
	}
	if c.Cargo.ExtendMode == "exponential" && c.Cargo.ExtendFactor <= 1 {
		errs = append(errs, "cargo: extend_factor must be > 1 for exponential mode")
	}

	// Bank
	if c.Bank.APRMin < 0 || c.Bank.APRMax < c.Bank.APRMin {
		errs = append(errs, "bank: apr_min/apr_max must satisfy 0 <= apr_min <= apr_max")
	}
	if c.Bank.LoanAPRMin < 0 || c.Bank.LoanAPRMax < c.Bank.LoanAPRMin {
		errs = append(errs, "bank: loan_apr_min/loan_apr_max must satisfy 0 <= loan_apr_min <= loan_apr_max")
	}
	if c.Bank.LoanBaseCommissionRate < 0 || c.Bank.LoanBaseCommissionRate >= 1 {
		errs = append(errs, "bank: loan_base_commission_rate must be in [0, 1)")
	}
	if c.Bank.LoanHighCommissionRate < c.Bank.LoanBaseCommissionRate {
		errs = append(errs, "bank: loan_high_commission_rate must be >= loan_base_commission_rate")
	}
	if c.Bank.HighCommissionThreshold < 1 {
		errs = append(errs, "bank: high_commission_threshold must be >= 1")
	}
	if c.Bank.CreditLeverageFactor <= 0 {
		errs = append(errs, "bank: credit_leverage_factor must be > 0")
	}
	if c.Bank.MaxLoanAmount <= 0 {
		errs = append(errs, "bank: max_loan_amount must be > 0")
	}
	for _, h := range []struct {
		name string
		v    float64
	}{
		{"cash_haircut", c.Bank.CashHaircut},
		{"stock_haircut", c.Bank.StockHaircut},
		{"commodity_haircut", c.Bank.CommodityHaircut},
		{"crypto_haircut", c.Bank.CryptoHaircut},
	} {
		if h.v < 0 || h.v > 1 {
			errs = append(errs, fmt.Sprintf("bank: %s must be in [0, 1], got %v", h.name, h.v))
		}
	}

	// Investments
	if c.Investments.BuyFeeRate < 0 || c.Investments.BuyFeeRate >= 1 {
		errs = append(errs, "investments: buy_fee_rate must be in [0, 1)")
	}
	if c.Investments.SellFeeRate < 0 || c.Investments.SellFeeRate >= 1 {
		errs = append(errs, "investments: sell_fee_rate must be in [0, 1)")
	}
	if c.Investments.MinFee < 0 {
		errs = append(errs, "investments: min_fee must be >= 0")
	}
	if c.Investments.DividendIntervalDays < 1 {
		errs = append(errs, "investments: dividend_interval_days must be >= 1")
	}
	if c.Investments.DividendRate < 0 {
		errs = append(errs, "investments: dividend_rate must be >= 0")
	}

	// Travel
	if c.Travel.BaseFee < 0 {
		errs = append(errs, "travel: base_fee must be >= 0")
	}
	if c.Travel.FeePerCargoUnit < 0 {
		errs = append(errs, "travel: fee_per_cargo_unit must be >= 0")
	}

	// Events
	for name, w := range c.Events.Weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("events: weight for %q must be >= 0, got %d", name, w))
		}
	}

	// Lotto
	if c.Lotto.TicketPrice <= 0 {
		errs = append(errs, "lotto: ticket_price must be > 0")
	}
	if c.Lotto.NumbersPerTicket < 1 || c.Lotto.NumbersPerTicket > c.Lotto.MaxNumber {
		errs = append(errs, "lotto: numbers_per_ticket must be in [1, max_number]")
	}

	// Save
	if strings.TrimSpace(c.Save.Path) == "" {
		errs = append(errs, "save: path must not be empty")
	}

	// Messages
	if c.Messages.MaxLog < 1 {
		errs = append(errs, "messages: max_log must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
