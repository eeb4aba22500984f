package event

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/domain"
)

// contest describes one winnable competition and its first prize.
type contest struct {
	name  string
	prize int64
}

var contests = []contest{
	{"Trade Fair Raffle", 3000},
	{"Merchant Guild Contest", 5000},
	{"City Festival Tombola", 1500},
}

// ContestWin awards a prize from a random contest. Place is weighted 10/30/60
// toward third place; second and third pay half and a quarter of first prize.
type ContestWin struct{ base }

func (ContestWin) CanTrigger(ctx *Context) bool { return true }

func (e ContestWin) Trigger(ctx *Context) *Outcome {
	c := contests[ctx.Rng.Intn(len(contests))]

	roll := ctx.Rng.Intn(100)
	var place int
	var prize int64
	switch {
	case roll < 10:
		place, prize = 1, c.prize
	case roll < 40:
		place, prize = 2, int64(math.Ceil(float64(c.prize)/2))
	default:
		place, prize = 3, int64(math.Ceil(float64(c.prize)/4))
	}

	ctx.State.Cash += prize
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("You took place %d in the %s and won $%d!", place, c.name, prize),
		Level:    domain.MessageSuccess,
	}
}

// DividendBonus pays 0.5-2% of a random held stock position into the bank.
type DividendBonus struct{ base }

func (DividendBonus) CanTrigger(ctx *Context) bool {
	for sym := range ctx.State.Portfolio {
		if a, ok := catalog.AssetBySymbol(sym); ok && a.Class == domain.AssetClassStock {
			return true
		}
	}
	return false
}

func (e DividendBonus) Trigger(ctx *Context) *Outcome {
	var stocks []string
	for _, sym := range sortedKeys(ctx.State.Portfolio) {
		if a, ok := catalog.AssetBySymbol(sym); ok && a.Class == domain.AssetClassStock {
			stocks = append(stocks, sym)
		}
	}
	if len(stocks) == 0 {
		return nil
	}
	sym := stocks[ctx.Rng.Intn(len(stocks))]
	qty := ctx.State.Portfolio[sym]

	value := ctx.Book.Assets[sym].Mul(decimal.NewFromInt(qty))
	payout := value.Mul(decimal.NewFromFloat(ctx.Uniform(0.005, 0.02))).Floor().IntPart()
	if payout < 1 {
		return nil
	}
	ctx.Bank.Credit(ctx.State, payout, fmt.Sprintf("Special dividend: %s", sym))
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("%s paid a special dividend of $%d into your bank account", sym, payout),
		Level:    domain.MessageSuccess,
	}
}

// BankCorrection credits 1-5% of the bank balance, minimum $10, as interest.
type BankCorrection struct{ base }

func (BankCorrection) CanTrigger(ctx *Context) bool { return ctx.State.Bank.Balance > 0 }

func (e BankCorrection) Trigger(ctx *Context) *Outcome {
	amount := int64(math.Floor(float64(ctx.State.Bank.Balance) * ctx.Uniform(0.01, 0.05)))
	if amount < 10 {
		amount = 10
	}
	ctx.Bank.Credit(ctx.State, amount, "Interest correction")
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("The bank corrected an interest error in your favour: +$%d", amount),
		Level:    domain.MessageSuccess,
	}
}

// lotteryTiers maps matched-number tiers to their selection weight and prize
// range. Lower tiers are far more common.
var lotteryTiers = []struct {
	matches  int
	weight   int
	min, max int64
}{
	{3, 50, 200, 600},
	{4, 30, 700, 1_500},
	{5, 15, 2_000, 6_000},
	{6, 5, 10_000, 30_000},
}

// Lottery pays a street-lottery win straight to cash, tiered by how many
// numbers matched.
type Lottery struct{ base }

func (Lottery) CanTrigger(ctx *Context) bool { return true }

func (e Lottery) Trigger(ctx *Context) *Outcome {
	total := 0
	for _, t := range lotteryTiers {
		total += t.weight
	}
	roll := ctx.Rng.Intn(total)
	tier := lotteryTiers[len(lotteryTiers)-1]
	for _, t := range lotteryTiers {
		if roll < t.weight {
			tier = t
			break
		}
		roll -= t.weight
	}

	win := tier.min + ctx.Rng.Int63n(tier.max-tier.min+1)
	ctx.State.Cash += win
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Lottery! You matched %d numbers and won $%d!", tier.matches, win),
		Level:    domain.MessageSuccess,
	}
}

// PortfolioBoom multiplies the prices of one held asset class by 1.5-3.0.
type PortfolioBoom struct{ base }

func (PortfolioBoom) CanTrigger(ctx *Context) bool { return len(ctx.State.Portfolio) > 0 }

func (e PortfolioBoom) Trigger(ctx *Context) *Outcome {
	sym, _, ok := ctx.RandomHeldAsset()
	if !ok {
		return nil
	}
	a, ok := catalog.AssetBySymbol(sym)
	if !ok {
		return nil
	}
	factor := ctx.Uniform(1.5, 3.0)
	ctx.Pricing.ScaleAssetPrices(ctx.Book, a.Class, factor)
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Sector rally! %s prices jumped %.0f%%", a.Class, (factor-1)*100),
		Level:    domain.MessageSuccess,
	}
}
