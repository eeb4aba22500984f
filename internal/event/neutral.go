package event

import (
	"fmt"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/domain"
)

// randomCatalogGood picks a uniformly random good from the full catalog.
func randomCatalogGood(ctx *Context) domain.Good {
	return catalog.Goods[ctx.Rng.Intn(len(catalog.Goods))]
}

// randomAssetClass picks a uniformly random asset class.
func randomAssetClass(ctx *Context) domain.AssetClass {
	classes := []domain.AssetClass{
		domain.AssetClassStock,
		domain.AssetClassCommodity,
		domain.AssetClassCrypto,
	}
	return classes[ctx.Rng.Intn(len(classes))]
}

// PromoCampaign marks one good down to 40-70% of its price on the local
// market. The modifier is consumed by the pricing pass that runs on arrival.
type PromoCampaign struct{ base }

func (PromoCampaign) CanTrigger(ctx *Context) bool { return true }

func (e PromoCampaign) Trigger(ctx *Context) *Outcome {
	g := randomCatalogGood(ctx)
	ctx.State.PriceModifiers[g.Name] = ctx.Uniform(0.40, 0.70)
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Promo campaign: %s is selling cheap here today", g.Name),
		Level:    domain.MessageInfo,
	}
}

// Oversupply floods the local market with one good, pricing it at 30-60%.
type Oversupply struct{ base }

func (Oversupply) CanTrigger(ctx *Context) bool { return true }

func (e Oversupply) Trigger(ctx *Context) *Outcome {
	g := randomCatalogGood(ctx)
	ctx.State.PriceModifiers[g.Name] = ctx.Uniform(0.30, 0.60)
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Oversupply of %s: local prices have collapsed", g.Name),
		Level:    domain.MessageInfo,
	}
}

// Shortage dries up one good on the local market, pricing it at 180-220%.
type Shortage struct{ base }

func (Shortage) CanTrigger(ctx *Context) bool { return true }

func (e Shortage) Trigger(ctx *Context) *Outcome {
	g := randomCatalogGood(ctx)
	ctx.State.PriceModifiers[g.Name] = ctx.Uniform(1.80, 2.20)
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Shortage of %s: local prices have spiked", g.Name),
		Level:    domain.MessageInfo,
	}
}

// LoyalDiscount is a rare insider deal: one good at 5% on the local market.
type LoyalDiscount struct{ base }

func (LoyalDiscount) CanTrigger(ctx *Context) bool { return true }

func (e LoyalDiscount) Trigger(ctx *Context) *Outcome {
	g := randomCatalogGood(ctx)
	ctx.State.PriceModifiers[g.Name] = 0.05
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("A loyal supplier offers %s at a fraction of the local price", g.Name),
		Level:    domain.MessageInfo,
	}
}

// MarketBoom rallies a whole asset class by 1.5-3.0x.
type MarketBoom struct{ base }

func (MarketBoom) CanTrigger(ctx *Context) bool { return true }

func (e MarketBoom) Trigger(ctx *Context) *Outcome {
	class := randomAssetClass(ctx)
	factor := ctx.Uniform(1.5, 3.0)
	ctx.Pricing.ScaleAssetPrices(ctx.Book, class, factor)
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Market boom: %s prices surged %.0f%%", class, (factor-1)*100),
		Level:    domain.MessageInfo,
	}
}

// MarketCrash tanks a whole asset class to 0.3-0.7x.
type MarketCrash struct{ base }

func (MarketCrash) CanTrigger(ctx *Context) bool { return true }

func (e MarketCrash) Trigger(ctx *Context) *Outcome {
	class := randomAssetClass(ctx)
	factor := ctx.Uniform(0.3, 0.7)
	ctx.Pricing.ScaleAssetPrices(ctx.Book, class, factor)
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Market crash: %s prices fell %.0f%%", class, (1-factor)*100),
		Level:    domain.MessageInfo,
	}
}
