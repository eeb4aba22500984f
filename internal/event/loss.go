package event

import (
	"fmt"
	"math"
	"strings"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/domain"
	"github.com/mercatorgames/tycoon/internal/service"
)

// base carries the type name and category shared by all handlers. Weight
// comes from the configured weight table.
type base struct {
	typ string
	cat Category
}

func (b base) Type() string            { return b.typ }
func (b base) Category() Category      { return b.cat }
func (b base) Weight(ctx *Context) int { return ctx.Weight(b.typ) }

// RegisterAll registers the full stock of travel events on a registry.
func RegisterAll(r *Registry) {
	// Loss
	r.Register(Robbery{base{"robbery", CategoryLoss}})
	r.Register(Fire{base{"fire", CategoryLoss}})
	r.Register(Flood{base{"flood", CategoryLoss}})
	r.Register(DefectiveBatch{base{"defective_batch", CategoryLoss}})
	r.Register(CustomsDuty{base{"customs_duty", CategoryLoss}})
	r.Register(StolenGoods{base{"stolen_goods", CategoryLoss}})
	r.Register(CashDamage{base{"cash_damage", CategoryLoss}})
	r.Register(PortfolioCrash{base{"portfolio_crash", CategoryLoss}})
	r.Register(FBIConfiscation{base{"fbi_confiscation", CategoryLoss}})
	r.Register(ContrabandScam{base{"contraband_scam", CategoryLoss}})
	r.Register(LottoTicketLost{base{"lotto_ticket_lost", CategoryLoss}})
	// Gain
	r.Register(ContestWin{base{"contest_win", CategoryGain}})
	r.Register(DividendBonus{base{"dividend_bonus", CategoryGain}})
	r.Register(BankCorrection{base{"bank_correction", CategoryGain}})
	r.Register(PortfolioBoom{base{"portfolio_boom", CategoryGain}})
	r.Register(Lottery{base{"lottery", CategoryGain}})
	// Neutral
	r.Register(PromoCampaign{base{"promo_campaign", CategoryNeutral}})
	r.Register(Oversupply{base{"oversupply", CategoryNeutral}})
	r.Register(Shortage{base{"shortage", CategoryNeutral}})
	r.Register(LoyalDiscount{base{"loyal_discount", CategoryNeutral}})
	r.Register(MarketBoom{base{"market_boom", CategoryNeutral}})
	r.Register(MarketCrash{base{"market_crash", CategoryNeutral}})
}

// Robbery steals 10-40% of one random good, oldest lots first.
type Robbery struct{ base }

func (Robbery) CanTrigger(ctx *Context) bool { return len(ctx.State.Inventory) > 0 }

func (e Robbery) Trigger(ctx *Context) *Outcome {
	good, held, ok := ctx.RandomHeldGood()
	if !ok {
		return nil
	}
	qty := int64(math.Max(1, math.Floor(float64(held)*ctx.Uniform(0.10, 0.40))))
	lost, value := ctx.Goods.RecordLoss(ctx.State, good, qty, service.LossFIFO)
	if lost == 0 {
		return nil
	}
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Robbery! Thieves took %dx %s worth $%d", lost, good, value),
		Level:    domain.MessageDanger,
	}
}

// Fire burns 20-60% of every good in the warehouse.
type Fire struct{ base }

func (Fire) CanTrigger(ctx *Context) bool { return len(ctx.State.Inventory) > 0 }

func (e Fire) Trigger(ctx *Context) *Outcome {
	var lostTotal, valueTotal int64
	for _, good := range sortedKeys(ctx.State.Inventory) {
		held := ctx.State.Inventory[good]
		qty := int64(math.Floor(float64(held) * ctx.Uniform(0.20, 0.60)))
		if qty < 1 {
			continue
		}
		lost, value := ctx.Goods.RecordLoss(ctx.State, good, qty, service.LossFIFO)
		lostTotal += lost
		valueTotal += value
	}
	if lostTotal == 0 {
		return nil
	}
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Warehouse fire! %d units destroyed, $%d lost", lostTotal, valueTotal),
		Level:    domain.MessageDanger,
	}
}

// Flood ruins 30-80% of every good in the warehouse.
type Flood struct{ base }

func (Flood) CanTrigger(ctx *Context) bool { return len(ctx.State.Inventory) > 0 }

func (e Flood) Trigger(ctx *Context) *Outcome {
	var lostTotal, valueTotal int64
	for _, good := range sortedKeys(ctx.State.Inventory) {
		held := ctx.State.Inventory[good]
		qty := int64(math.Floor(float64(held) * ctx.Uniform(0.30, 0.80)))
		if qty < 1 {
			continue
		}
		lost, value := ctx.Goods.RecordLoss(ctx.State, good, qty, service.LossFIFO)
		lostTotal += lost
		valueTotal += value
	}
	if lostTotal == 0 {
		return nil
	}
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Flood! %d units ruined, $%d lost", lostTotal, valueTotal),
		Level:    domain.MessageDanger,
	}
}

// DefectiveBatch writes off the most recent lot of one random good.
type DefectiveBatch struct{ base }

func (DefectiveBatch) CanTrigger(ctx *Context) bool { return len(ctx.State.PurchaseLots) > 0 }

func (e DefectiveBatch) Trigger(ctx *Context) *Outcome {
	good, _, ok := ctx.RandomHeldGood()
	if !ok {
		return nil
	}
	lots := ctx.State.LotsForGood(good)
	if len(lots) == 0 {
		return nil
	}
	last := ctx.State.PurchaseLots[lots[len(lots)-1]]
	lost, value := ctx.Goods.RecordLoss(ctx.State, good, last.Quantity, service.LossFromLast)
	if lost == 0 {
		return nil
	}
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Defective batch! %dx %s written off, $%d lost", lost, good, value),
		Level:    domain.MessageWarning,
	}
}

// CustomsDuty charges 5-15% of the inventory's market value.
type CustomsDuty struct{ base }

func (CustomsDuty) CanTrigger(ctx *Context) bool { return len(ctx.State.Inventory) > 0 }

func (e CustomsDuty) Trigger(ctx *Context) *Outcome {
	var inventoryValue int64
	for good, qty := range ctx.State.Inventory {
		inventoryValue += ctx.Book.Goods[good] * qty
	}
	duty := int64(math.Floor(float64(inventoryValue) * ctx.Uniform(0.05, 0.15)))
	if duty < 1 {
		return nil
	}
	if duty > ctx.State.Cash {
		duty = ctx.State.Cash
	}
	if duty == 0 {
		return nil
	}
	ctx.State.Cash -= duty
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Customs inspection! Duty of $%d charged", duty),
		Level:    domain.MessageWarning,
	}
}

// StolenGoods steals the quantity of the most recent purchase, newest lots
// first.
type StolenGoods struct{ base }

func (StolenGoods) CanTrigger(ctx *Context) bool { return len(ctx.State.Inventory) > 0 }

func (e StolenGoods) Trigger(ctx *Context) *Outcome {
	var lastBuy *domain.Transaction
	for i := len(ctx.State.Transactions) - 1; i >= 0; i-- {
		if ctx.State.Transactions[i].Type == domain.TransactionBuy {
			lastBuy = &ctx.State.Transactions[i]
			break
		}
	}
	if lastBuy == nil || ctx.State.Inventory[lastBuy.Good] == 0 {
		return nil
	}
	lost, value := ctx.Goods.RecordLoss(ctx.State, lastBuy.Good, lastBuy.Quantity, service.LossFromLast)
	if lost == 0 {
		return nil
	}
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Goods stolen! %dx %s taken, $%d lost", lost, lastBuy.Good, value),
		Level:    domain.MessageDanger,
	}
}

// CashDamage loses 1-5% of cash, clamped to [50, 2000] and to the cash held.
type CashDamage struct{ base }

func (CashDamage) CanTrigger(ctx *Context) bool { return ctx.State.Cash > 0 }

func (e CashDamage) Trigger(ctx *Context) *Outcome {
	loss := int64(math.Floor(float64(ctx.State.Cash) * ctx.Uniform(0.01, 0.05)))
	if loss < 50 {
		loss = 50
	}
	if loss > 2000 {
		loss = 2000
	}
	if loss > ctx.State.Cash {
		loss = ctx.State.Cash
	}
	if loss == 0 {
		return nil
	}
	ctx.State.Cash -= loss
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Pickpocketed! $%d gone", loss),
		Level:    domain.MessageWarning,
	}
}

// PortfolioCrash multiplies the prices of one held asset class by 0.3-0.7.
type PortfolioCrash struct{ base }

func (PortfolioCrash) CanTrigger(ctx *Context) bool { return len(ctx.State.Portfolio) > 0 }

func (e PortfolioCrash) Trigger(ctx *Context) *Outcome {
	sym, _, ok := ctx.RandomHeldAsset()
	if !ok {
		return nil
	}
	a, ok := catalog.AssetBySymbol(sym)
	if !ok {
		return nil
	}
	factor := ctx.Uniform(0.3, 0.7)
	ctx.Pricing.ScaleAssetPrices(ctx.Book, a.Class, factor)
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Sector crash! %s prices fell %.0f%%", a.Class, (1-factor)*100),
		Level:    domain.MessageDanger,
	}
}

// FBIConfiscation fires when at least three contraband lots are held:
// inventory is seized, only a quarter of the cash survives, the bank account
// is frozen to zero, and cargo extensions are revoked.
type FBIConfiscation struct{ base }

func (FBIConfiscation) CanTrigger(ctx *Context) bool {
	contraband := 0
	for _, lot := range ctx.State.PurchaseLots {
		if g, ok := catalog.GoodByName(lot.Good); ok && g.Kind == domain.GoodKindContraband {
			contraband++
		}
	}
	return contraband >= 3
}

func (e FBIConfiscation) Trigger(ctx *Context) *Outcome {
	st := ctx.State
	st.Cash = st.Cash / 4
	st.Bank.Balance = 0
	st.Inventory = make(map[string]int64)
	st.PurchaseLots = nil
	st.MaxCargo -= st.CargoExtensions
	st.CargoExtensions = 0
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  "FBI raid! Inventory confiscated, accounts frozen, cash seized",
		Level:    domain.MessageDanger,
	}
}

// ContrabandScam wipes every contraband holding with no payout. Legal goods,
// the bank, and investments are untouched.
type ContrabandScam struct{ base }

func heldContraband(ctx *Context) []string {
	var goods []string
	for _, good := range sortedKeys(ctx.State.Inventory) {
		if ctx.State.Inventory[good] < 1 {
			continue
		}
		if g, ok := catalog.GoodByName(good); ok && g.Kind == domain.GoodKindContraband {
			goods = append(goods, good)
		}
	}
	return goods
}

func (ContrabandScam) CanTrigger(ctx *Context) bool { return len(heldContraband(ctx)) > 0 }

func (e ContrabandScam) Trigger(ctx *Context) *Outcome {
	goods := heldContraband(ctx)
	if len(goods) == 0 {
		return nil
	}
	var removed []string
	for _, good := range goods {
		held := ctx.State.Inventory[good]
		lost, _ := ctx.Goods.RecordLoss(ctx.State, good, held, service.LossFromLast)
		if lost > 0 {
			removed = append(removed, fmt.Sprintf("%dx %s", lost, good))
		}
	}
	if len(removed) == 0 {
		return nil
	}
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("Scam! The buyer vanished with your goods: %s lost, no cash received", strings.Join(removed, ", ")),
		Level:    domain.MessageDanger,
	}
}

// LottoTicketLost removes one random unsettled lotto ticket with no refund.
type LottoTicketLost struct{ base }

func unsettledTickets(ctx *Context) []int {
	var idx []int
	for i, t := range ctx.State.Lotto.Tickets {
		if !t.Settled {
			idx = append(idx, i)
		}
	}
	return idx
}

func (LottoTicketLost) CanTrigger(ctx *Context) bool { return len(unsettledTickets(ctx)) > 0 }

func (e LottoTicketLost) Trigger(ctx *Context) *Outcome {
	idx := unsettledTickets(ctx)
	if len(idx) == 0 {
		return nil
	}
	i := idx[ctx.Rng.Intn(len(idx))]
	ticket := ctx.State.Lotto.Tickets[i]
	ctx.State.Lotto.Tickets = append(ctx.State.Lotto.Tickets[:i], ctx.State.Lotto.Tickets[i+1:]...)

	nums := make([]string, len(ticket.Numbers))
	for j, n := range ticket.Numbers {
		nums[j] = fmt.Sprint(n)
	}
	return &Outcome{
		Type:     e.Type(),
		Category: e.Category(),
		Message:  fmt.Sprintf("One of your lotto tickets (%s) was lost", strings.Join(nums, " ")),
		Level:    domain.MessageWarning,
	}
}
