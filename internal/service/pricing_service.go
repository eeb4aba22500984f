// Package service implements the game rules on top of the domain types:
// pricing, goods and investment ledgers, cargo, banking, travel, and the
// lottery. Services are stateless beyond their configuration; the mutable
// game state is passed in by the engine.
package service

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
)

// PriceBook holds the current market prices, the previous day's prices, and a
// bounded per-instrument price history. It is regenerated on every day advance
// and persisted with the game.
type PriceBook struct {
	Goods         map[string]int64
	GoodsPrev     map[string]int64
	Assets        map[string]decimal.Decimal
	AssetsPrev    map[string]decimal.Decimal
	GoodsHistory  map[string][]int64
	AssetsHistory map[string][]decimal.Decimal
}

// NewPriceBook returns an empty, ready-to-fill PriceBook.
func NewPriceBook() *PriceBook {
	return &PriceBook{
		Goods:         make(map[string]int64),
		GoodsPrev:     make(map[string]int64),
		Assets:        make(map[string]decimal.Decimal),
		AssetsPrev:    make(map[string]decimal.Decimal),
		GoodsHistory:  make(map[string][]int64),
		AssetsHistory: make(map[string][]decimal.Decimal),
	}
}

// PricingService generates daily market prices for goods and assets.
type PricingService struct {
	cfg    config.PricingConfig
	rng    *rand.Rand
	logger *slog.Logger
}

// NewPricingService creates a PricingService.
func NewPricingService(cfg config.PricingConfig, rng *rand.Rand, logger *slog.Logger) *PricingService {
	return &PricingService{cfg: cfg, rng: rng, logger: logger}
}

// uniform draws from [lo, hi).
func (s *PricingService) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// GenerateGoodsPrices rolls a fresh goods price for the given city:
// base price x city multiplier x uniform variance x one-day modifier, rounded
// and floored at the minimum unit price. One-day modifiers are consumed by
// this pass. Each good's rolling history is capped at the configured window.
func (s *PricingService) GenerateGoodsPrices(book *PriceBook, city domain.City, modifiers map[string]float64) {
	for _, g := range catalog.Goods {
		raw := float64(g.BasePrice) * city.Multiplier(g.Name) * s.uniform(1-g.Variance, 1+g.Variance)
		if m, ok := modifiers[g.Name]; ok {
			raw *= m
		}
		price := int64(math.Round(raw))
		if price < s.cfg.MinUnitPrice {
			price = s.cfg.MinUnitPrice
		}

		if prev, ok := book.Goods[g.Name]; ok {
			book.GoodsPrev[g.Name] = prev
		}
		book.Goods[g.Name] = price

		hist := append(book.GoodsHistory[g.Name], price)
		if len(hist) > s.cfg.HistoryWindow {
			hist = hist[len(hist)-s.cfg.HistoryWindow:]
		}
		book.GoodsHistory[g.Name] = hist
	}

	// Modifiers apply to exactly one pricing pass.
	for k := range modifiers {
		delete(modifiers, k)
	}

	s.logger.Debug("pricing_service: goods prices generated",
		slog.String("city", city.Name),
		slog.Int("goods", len(book.Goods)),
	)
}

// GenerateAssetPrices rolls fresh asset prices: base price x uniform variance
// scaled by the configured factor, kept at two decimal places. Whole-unit
// instruments floor at 1; low-value instruments keep sub-unit precision. Each
// symbol's rolling history is capped at the configured window.
func (s *PricingService) GenerateAssetPrices(book *PriceBook) {
	for _, a := range catalog.Assets {
		v := a.Variance * s.cfg.AssetVarianceScale
		raw := a.BasePrice.Mul(decimal.NewFromFloat(s.uniform(1-v, 1+v))).Round(2)

		if prev, ok := book.Assets[a.Symbol]; ok {
			book.AssetsPrev[a.Symbol] = prev
		}
		price := clampAssetPrice(a, raw)
		book.Assets[a.Symbol] = price

		hist := append(book.AssetsHistory[a.Symbol], price)
		if len(hist) > s.cfg.HistoryWindow {
			hist = hist[len(hist)-s.cfg.HistoryWindow:]
		}
		book.AssetsHistory[a.Symbol] = hist
	}
}

// ScaleAssetPrices multiplies the live price of every asset in the given
// class by factor, keeping the price floor. Used by market boom and crash
// events.
func (s *PricingService) ScaleAssetPrices(book *PriceBook, class domain.AssetClass, factor float64) {
	f := decimal.NewFromFloat(factor)
	for _, a := range catalog.AssetsByClass(class) {
		if p, ok := book.Assets[a.Symbol]; ok {
			book.Assets[a.Symbol] = clampAssetPrice(a, p.Mul(f).Round(2))
		}
	}
}

// ScaleAssetPrice multiplies one asset's live price by factor.
func (s *PricingService) ScaleAssetPrice(book *PriceBook, symbol string, factor float64) {
	a, ok := catalog.AssetBySymbol(symbol)
	if !ok {
		return
	}
	if p, ok := book.Assets[symbol]; ok {
		book.Assets[symbol] = clampAssetPrice(a, p.Mul(decimal.NewFromFloat(factor)).Round(2))
	}
}

// clampAssetPrice floors a rolled price. Instruments with a whole-unit base
// price never drop below 1; cheap instruments keep two decimal places with a
// floor of 0.01.
func clampAssetPrice(a domain.Asset, p decimal.Decimal) decimal.Decimal {
	floor := decimal.NewFromInt(1)
	if a.BasePrice.LessThan(decimal.NewFromInt(10)) {
		floor = decimal.NewFromFloat(0.01)
	}
	if p.LessThan(floor) {
		return floor
	}
	return p
}
