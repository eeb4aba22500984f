// Package event implements the travel-event engine: a weighted random
// selection over pools of loss, gain, and neutral handlers that fire when the
// player arrives in a city.
package event

import (
	"math/rand"
	"sort"

	"github.com/mercatorgames/tycoon/internal/domain"
	"github.com/mercatorgames/tycoon/internal/service"
)

// Category pools handlers by their effect on the player.
type Category string

const (
	CategoryLoss    Category = "loss"
	CategoryGain    Category = "gain"
	CategoryNeutral Category = "neutral"
)

// Outcome is the visible result of one fired event.
type Outcome struct {
	Type     string
	Category Category
	Message  string
	Level    domain.MessageLevel
}

// Context carries everything a handler may touch: the game state, the live
// price book, the services that implement ledger mutations, the engine RNG,
// and the configured per-event weights.
type Context struct {
	State   *domain.GameState
	Book    *service.PriceBook
	Goods   *service.GoodsService
	Invest  *service.InvestmentsService
	Bank    *service.BankService
	Pricing *service.PricingService
	Rng     *rand.Rand
	Weights map[string]int
}

// Weight returns the configured selection weight for an event type.
func (c *Context) Weight(eventType string) int {
	return c.Weights[eventType]
}

// Uniform draws from [lo, hi).
func (c *Context) Uniform(lo, hi float64) float64 {
	return lo + c.Rng.Float64()*(hi-lo)
}

// IntBetween draws an int from [lo, hi] inclusive.
func (c *Context) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.Rng.Intn(hi-lo+1)
}

// RandomHeldGood picks a uniformly random good from the inventory. The map
// keys are sorted first so the pick depends only on the RNG seed.
func (c *Context) RandomHeldGood() (string, int64, bool) {
	names := sortedKeys(c.State.Inventory)
	if len(names) == 0 {
		return "", 0, false
	}
	name := names[c.Rng.Intn(len(names))]
	return name, c.State.Inventory[name], true
}

// RandomHeldAsset picks a uniformly random symbol from the portfolio.
func (c *Context) RandomHeldAsset() (string, int64, bool) {
	symbols := sortedKeys(c.State.Portfolio)
	if len(symbols) == 0 {
		return "", 0, false
	}
	sym := symbols[c.Rng.Intn(len(symbols))]
	return sym, c.State.Portfolio[sym], true
}

// Handler is one travel event. Trigger may return nil when the event cannot
// meaningfully apply after selection; a nil outcome does not consume the
// handler's once-per-run slot.
type Handler interface {
	Type() string
	Category() Category
	Weight(ctx *Context) int
	CanTrigger(ctx *Context) bool
	Trigger(ctx *Context) *Outcome
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
