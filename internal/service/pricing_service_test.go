package service

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
)

func newPricingService(seed int64) *PricingService {
	return NewPricingService(config.Defaults().Pricing, rand.New(rand.NewSource(seed)), testLogger())
}

func TestGenerateGoodsPricesStaysInBounds(t *testing.T) {
	svc := newPricingService(1)
	book := NewPriceBook()
	city := catalog.Cities[0]

	svc.GenerateGoodsPrices(book, city, nil)

	require.Len(t, book.Goods, len(catalog.Goods))
	for _, g := range catalog.Goods {
		price := book.Goods[g.Name]
		lo := math.Round(float64(g.BasePrice) * city.Multiplier(g.Name) * (1 - g.Variance))
		hi := math.Round(float64(g.BasePrice) * city.Multiplier(g.Name) * (1 + g.Variance))
		assert.GreaterOrEqual(t, price, int64(1), g.Name)
		assert.GreaterOrEqual(t, float64(price), math.Max(lo, 1), g.Name)
		assert.LessOrEqual(t, float64(price), hi, g.Name)
	}
}

func TestGenerateGoodsPricesConsumesModifiers(t *testing.T) {
	svc := newPricingService(1)
	book := NewPriceBook()
	city := catalog.Cities[0]

	// A near-zero modifier drives the price to the floor on this pass only.
	modifiers := map[string]float64{"TV": 0.00001}
	svc.GenerateGoodsPrices(book, city, modifiers)
	assert.Equal(t, int64(1), book.Goods["TV"])
	assert.Empty(t, modifiers, "modifiers apply to exactly one pass")

	svc.GenerateGoodsPrices(book, city, modifiers)
	assert.Greater(t, book.Goods["TV"], int64(1))
}

func TestGenerateGoodsPricesTracksPrevAndHistory(t *testing.T) {
	svc := newPricingService(7)
	book := NewPriceBook()
	city := catalog.Cities[0]

	svc.GenerateGoodsPrices(book, city, nil)
	first := book.Goods["TV"]
	assert.NotContains(t, book.GoodsPrev, "TV")

	svc.GenerateGoodsPrices(book, city, nil)
	assert.Equal(t, first, book.GoodsPrev["TV"])

	for i := 0; i < 15; i++ {
		svc.GenerateGoodsPrices(book, city, nil)
	}
	window := config.Defaults().Pricing.HistoryWindow
	assert.Len(t, book.GoodsHistory["TV"], window)
	assert.Equal(t, book.Goods["TV"], book.GoodsHistory["TV"][window-1],
		"history ends with the current price")
}

func TestGenerateAssetPricesStaysInBounds(t *testing.T) {
	svc := newPricingService(3)
	book := NewPriceBook()

	svc.GenerateAssetPrices(book)

	require.Len(t, book.Assets, len(catalog.Assets))
	for _, a := range catalog.Assets {
		price := book.Assets[a.Symbol]
		hi := a.BasePrice.Mul(decimal.NewFromFloat(1 + a.Variance))
		assert.True(t, price.GreaterThan(decimal.Zero), a.Symbol)
		assert.True(t, price.LessThanOrEqual(hi.Add(decimal.NewFromFloat(0.01))), a.Symbol)
	}
}

func TestGenerateAssetPricesTracksPrevAndHistory(t *testing.T) {
	svc := newPricingService(7)
	book := NewPriceBook()

	svc.GenerateAssetPrices(book)
	first := book.Assets["GOOGL"]
	assert.NotContains(t, book.AssetsPrev, "GOOGL")

	svc.GenerateAssetPrices(book)
	assert.True(t, first.Equal(book.AssetsPrev["GOOGL"]))

	for i := 0; i < 15; i++ {
		svc.GenerateAssetPrices(book)
	}
	window := config.Defaults().Pricing.HistoryWindow
	require.Len(t, book.AssetsHistory["GOOGL"], window)
	assert.True(t, book.Assets["GOOGL"].Equal(book.AssetsHistory["GOOGL"][window-1]),
		"history ends with the current price")
}

func TestScaleAssetPriceKeepsFloor(t *testing.T) {
	svc := newPricingService(3)
	book := NewPriceBook()
	book.Assets["GOOGL"] = decimal.NewFromInt(150)
	book.Assets["DOGE"] = decimal.NewFromInt(5)

	svc.ScaleAssetPrice(book, "GOOGL", 0.000001)
	svc.ScaleAssetPrice(book, "DOGE", 0.000001)

	// Whole-unit instruments floor at 1; cheap ones keep sub-unit precision.
	assert.True(t, book.Assets["GOOGL"].Equal(decimal.NewFromInt(1)))
	assert.True(t, book.Assets["DOGE"].Equal(decimal.NewFromFloat(0.01)))
}

func TestScaleAssetPricesTouchesOnlyTheClass(t *testing.T) {
	svc := newPricingService(3)
	book := NewPriceBook()
	book.Assets["BTC"] = decimal.NewFromInt(35_000)
	book.Assets["GOOGL"] = decimal.NewFromInt(150)

	svc.ScaleAssetPrices(book, domain.AssetClassCrypto, 2.0)

	assert.True(t, book.Assets["BTC"].Equal(decimal.NewFromInt(70_000)))
	assert.True(t, book.Assets["GOOGL"].Equal(decimal.NewFromInt(150)))
}
