package event

import (
	"log/slog"

	"github.com/mercatorgames/tycoon/internal/domain"
)

// Registry manages the pools of travel-event handlers and runs the weighted
// selection when the player arrives in a city.
type Registry struct {
	pools  map[Category][]Handler
	logger *slog.Logger
}

// NewRegistry returns an empty, ready-to-use Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		pools:  make(map[Category][]Handler),
		logger: logger,
	}
}

// Register adds a handler to its category pool.
func (r *Registry) Register(h Handler) {
	r.pools[h.Category()] = append(r.pools[h.Category()], h)
}

// Run rolls travel events for the current city. The city's probability gates
// the whole run; each category then fires a random number of events within
// its configured range. A handler fires at most once per run; handlers whose
// Trigger returns nil stay eligible for a later draw. Outcomes are shuffled
// so the order leaks nothing about category processing.
func (r *Registry) Run(ctx *Context, cfg domain.EventConfig) []Outcome {
	if ctx.Rng.Float64() > cfg.Probability {
		return nil
	}

	used := make(map[string]bool)
	var outcomes []Outcome

	categories := []struct {
		cat      Category
		min, max int
	}{
		{CategoryLoss, cfg.LossMin, cfg.LossMax},
		{CategoryGain, cfg.GainMin, cfg.GainMax},
		{CategoryNeutral, cfg.NeutralMin, cfg.NeutralMax},
	}
	for _, c := range categories {
		count := ctx.IntBetween(c.min, c.max)
		for i := 0; i < count; i++ {
			if out := r.selectAndTriggerOne(ctx, c.cat, used); out != nil {
				outcomes = append(outcomes, *out)
			}
		}
	}

	ctx.Rng.Shuffle(len(outcomes), func(i, j int) {
		outcomes[i], outcomes[j] = outcomes[j], outcomes[i]
	})

	if len(outcomes) > 0 {
		r.logger.Info("event_registry: events fired", slog.Int("count", len(outcomes)))
	}
	return outcomes
}

// selectAndTriggerOne picks one eligible handler from the category pool by
// cumulative weight and triggers it. Eligible means not yet fired this run,
// a positive weight, and CanTrigger true.
func (r *Registry) selectAndTriggerOne(ctx *Context, cat Category, used map[string]bool) *Outcome {
	var eligible []Handler
	total := 0
	for _, h := range r.pools[cat] {
		if used[h.Type()] {
			continue
		}
		w := h.Weight(ctx)
		if w <= 0 || !h.CanTrigger(ctx) {
			continue
		}
		eligible = append(eligible, h)
		total += w
	}
	if len(eligible) == 0 {
		return nil
	}

	pick := eligible[len(eligible)-1]
	roll := ctx.Rng.Intn(total)
	acc := 0
	for _, h := range eligible {
		acc += h.Weight(ctx)
		if roll < acc {
			pick = h
			break
		}
	}

	out := pick.Trigger(ctx)
	if out == nil {
		// The event declined to apply; leave it eligible for another draw.
		return nil
	}
	used[pick.Type()] = true
	return out
}
