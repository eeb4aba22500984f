package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies TYCOON_* environment variable overrides, and
// returns the final Config. A missing file is not an error; the defaults are
// used as-is. The returned Config has NOT been validated; the caller should
// invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known TYCOON_* environment variables and
// overwrites the corresponding Config fields when a variable is set (i.e. not
// empty). This lets testers change game balance without touching the TOML
// file.
func applyEnvOverrides(cfg *Config) {
	// ── Game ──
	setStr(&cfg.Game.Difficulty, "TYCOON_GAME_DIFFICULTY")
	setInt64(&cfg.Game.Seed, "TYCOON_GAME_SEED")

	// ── Pricing ──
	setInt64(&cfg.Pricing.MinUnitPrice, "TYCOON_PRICING_MIN_UNIT_PRICE")
	setInt(&cfg.Pricing.HistoryWindow, "TYCOON_PRICING_HISTORY_WINDOW")
	setFloat64(&cfg.Pricing.AssetVarianceScale, "TYCOON_PRICING_ASSET_VARIANCE_SCALE")

	// ── Cargo ──
	setInt64(&cfg.Cargo.ExtendBaseCost, "TYCOON_CARGO_EXTEND_BASE_COST")
	setInt64(&cfg.Cargo.ExtendStep, "TYCOON_CARGO_EXTEND_STEP")
	setStr(&cfg.Cargo.ExtendMode, "TYCOON_CARGO_EXTEND_MODE")
	setFloat64(&cfg.Cargo.ExtendFactor, "TYCOON_CARGO_EXTEND_FACTOR")

	// ── Bank ──
	setFloat64(&cfg.Bank.APRMin, "TYCOON_BANK_APR_MIN")
	setFloat64(&cfg.Bank.APRMax, "TYCOON_BANK_APR_MAX")
	setFloat64(&cfg.Bank.LoanAPRMin, "TYCOON_BANK_LOAN_APR_MIN")
	setFloat64(&cfg.Bank.LoanAPRMax, "TYCOON_BANK_LOAN_APR_MAX")
	setFloat64(&cfg.Bank.LoanBaseCommissionRate, "TYCOON_BANK_LOAN_BASE_COMMISSION_RATE")
	setFloat64(&cfg.Bank.LoanHighCommissionRate, "TYCOON_BANK_LOAN_HIGH_COMMISSION_RATE")
	setInt(&cfg.Bank.HighCommissionThreshold, "TYCOON_BANK_HIGH_COMMISSION_THRESHOLD")
	setFloat64(&cfg.Bank.CreditLeverageFactor, "TYCOON_BANK_CREDIT_LEVERAGE_FACTOR")
	setInt64(&cfg.Bank.CreditBaseAllowance, "TYCOON_BANK_CREDIT_BASE_ALLOWANCE")
	setInt64(&cfg.Bank.MaxLoanAmount, "TYCOON_BANK_MAX_LOAN_AMOUNT")

	// ── Investments ──
	setFloat64(&cfg.Investments.BuyFeeRate, "TYCOON_INVESTMENTS_BUY_FEE_RATE")
	setFloat64(&cfg.Investments.SellFeeRate, "TYCOON_INVESTMENTS_SELL_FEE_RATE")
	setInt64(&cfg.Investments.MinFee, "TYCOON_INVESTMENTS_MIN_FEE")
	setInt(&cfg.Investments.DividendIntervalDays, "TYCOON_INVESTMENTS_DIVIDEND_INTERVAL_DAYS")
	setInt(&cfg.Investments.DividendMinHoldingDays, "TYCOON_INVESTMENTS_DIVIDEND_MIN_HOLDING_DAYS")
	setFloat64(&cfg.Investments.DividendRate, "TYCOON_INVESTMENTS_DIVIDEND_RATE")

	// ── Travel ──
	setInt64(&cfg.Travel.BaseFee, "TYCOON_TRAVEL_BASE_FEE")
	setInt64(&cfg.Travel.FeePerCargoUnit, "TYCOON_TRAVEL_FEE_PER_CARGO_UNIT")

	// ── Lotto ──
	setInt64(&cfg.Lotto.TicketPrice, "TYCOON_LOTTO_TICKET_PRICE")
	setInt(&cfg.Lotto.MaxNumber, "TYCOON_LOTTO_MAX_NUMBER")

	// ── Save ──
	setStr(&cfg.Save.Path, "TYCOON_SAVE_PATH")

	// ── Messages ──
	setInt(&cfg.Messages.MaxLog, "TYCOON_MESSAGES_MAX_LOG")

	// ── Top-level ──
	setStr(&cfg.LogLevel, "TYCOON_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
