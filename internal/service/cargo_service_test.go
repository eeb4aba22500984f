package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
)

func TestNextExtensionCostLinear(t *testing.T) {
	svc := NewCargoService(config.Defaults().Cargo, testLogger())
	st := newTestState(0, 10)

	assert.Equal(t, int64(10_000), svc.NextExtensionCost(st))
	st.CargoExtensions = 1
	assert.Equal(t, int64(10_010), svc.NextExtensionCost(st))
	st.CargoExtensions = 5
	assert.Equal(t, int64(10_050), svc.NextExtensionCost(st))
}

func TestNextExtensionCostExponential(t *testing.T) {
	cfg := config.Defaults().Cargo
	cfg.ExtendMode = "exponential"
	svc := NewCargoService(cfg, testLogger())
	st := newTestState(0, 10)

	assert.Equal(t, int64(10_000), svc.NextExtensionCost(st))
	st.CargoExtensions = 1
	assert.Equal(t, int64(20_000), svc.NextExtensionCost(st))
	st.CargoExtensions = 2
	assert.Equal(t, int64(40_000), svc.NextExtensionCost(st))
}

func TestExtendCapacity(t *testing.T) {
	svc := NewCargoService(config.Defaults().Cargo, testLogger())
	st := newTestState(20_100, 10)

	_, err := svc.ExtendCapacity(st, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, st.MaxCargo)
	assert.Equal(t, 2, st.CargoExtensions)
	assert.Equal(t, int64(90), st.Cash)

	_, err = svc.ExtendCapacity(st, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	_, err = svc.ExtendCapacity(st, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestExtendCapacityRejectsUnaffordableBundleWhole(t *testing.T) {
	svc := NewCargoService(config.Defaults().Cargo, testLogger())
	// Enough for the first slot ($10,000) but not the pair ($20,010).
	st := newTestState(15_000, 10)

	_, err := svc.ExtendCapacity(st, 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(15_000), st.Cash)
	assert.Equal(t, 10, st.MaxCargo)
	assert.Equal(t, 0, st.CargoExtensions)
}
