package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Game.Difficulty = "nightmare"
	cfg.LogLevel = "loud"
	cfg.Pricing.MinUnitPrice = 0
	cfg.Cargo.ExtendMode = "quadratic"
	cfg.Bank.LoanAPRMax = -1
	cfg.Lotto.TicketPrice = 0

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "unknown difficulty")
	assert.Contains(t, msg, "unknown log_level")
	assert.Contains(t, msg, "min_unit_price")
	assert.Contains(t, msg, "extend_mode")
	assert.Contains(t, msg, "loan_apr_min/loan_apr_max")
	assert.Contains(t, msg, "ticket_price")
}

func TestValidateExponentialNeedsFactor(t *testing.T) {
	cfg := Defaults()
	cfg.Cargo.ExtendMode = "exponential"
	cfg.Cargo.ExtendFactor = 1.0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extend_factor")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Bank, cfg.Bank)
	assert.Equal(t, "normal", cfg.Game.Difficulty)
}

func TestLoadMergesTOMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
log_level = "debug"

[game]
difficulty = "hard"
seed = 1234

[bank]
apr_max = 0.05
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "hard", cfg.Game.Difficulty)
	assert.Equal(t, int64(1234), cfg.Game.Seed)
	assert.Equal(t, 0.05, cfg.Bank.APRMax)
	// Untouched fields keep their defaults.
	assert.Equal(t, 0.01, cfg.Bank.APRMin)
	assert.Equal(t, int64(50), cfg.Lotto.TicketPrice)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("TYCOON_GAME_DIFFICULTY", "insane")
	t.Setenv("TYCOON_GAME_SEED", "99")
	t.Setenv("TYCOON_BANK_MAX_LOAN_AMOUNT", "5000")
	t.Setenv("TYCOON_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "insane", cfg.Game.Difficulty)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, int64(5000), cfg.Bank.MaxLoanAmount)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestEnvOverrideIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("TYCOON_GAME_SEED", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Game.Seed)
}
