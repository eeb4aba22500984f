package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercatorgames/tycoon/internal/domain"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, Goods, 31)
	assert.Len(t, Assets, 20)
	assert.Len(t, Cities, 11)
	assert.Len(t, Difficulties, 5)
}

func TestLookups(t *testing.T) {
	g, ok := GoodByName("TV")
	require.True(t, ok)
	assert.Equal(t, int64(800), g.BasePrice)
	_, ok = GoodByName("Hoverboard")
	assert.False(t, ok)

	a, ok := AssetBySymbol("BTC")
	require.True(t, ok)
	assert.Equal(t, domain.AssetClassCrypto, a.Class)
	_, ok = AssetBySymbol("WAT")
	assert.False(t, ok)

	d, ok := DifficultyByName("playground")
	require.True(t, ok)
	assert.Equal(t, int64(1_000_000), d.StartCash)
	_, ok = DifficultyByName("nightmare")
	assert.False(t, ok)
}

func TestCityAtBounds(t *testing.T) {
	_, ok := CityAt(-1)
	assert.False(t, ok)
	_, ok = CityAt(len(Cities))
	assert.False(t, ok)
	c, ok := CityAt(0)
	require.True(t, ok)
	assert.NotEmpty(t, c.Name)
}

func TestCityMultiplierDefaultsToOne(t *testing.T) {
	c := Cities[0]
	assert.Equal(t, 1.0, c.Multiplier("definitely-not-a-good"))
}

func TestEveryCityHasSaneEventConfig(t *testing.T) {
	for _, c := range Cities {
		assert.GreaterOrEqual(t, c.Events.Probability, 0.0, c.Name)
		assert.LessOrEqual(t, c.Events.Probability, 1.0, c.Name)
		assert.LessOrEqual(t, c.Events.LossMin, c.Events.LossMax, c.Name)
		assert.LessOrEqual(t, c.Events.GainMin, c.Events.GainMax, c.Name)
		assert.LessOrEqual(t, c.Events.NeutralMin, c.Events.NeutralMax, c.Name)
	}
}

func TestFiltersByKindAndClass(t *testing.T) {
	contraband := GoodsByKind(domain.GoodKindContraband)
	assert.NotEmpty(t, contraband)
	for _, g := range contraband {
		assert.Equal(t, domain.GoodKindContraband, g.Kind)
	}

	stocks := AssetsByClass(domain.AssetClassStock)
	assert.Len(t, stocks, 12)
}
