package service

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/domain"
)

// LossPolicy selects which lots a loss event consumes first.
type LossPolicy int

const (
	// LossFIFO consumes the oldest lots first.
	LossFIFO LossPolicy = iota
	// LossFromLast consumes the most recent lot first.
	LossFromLast
)

// GoodsService implements the FIFO goods ledger: buying, selling, and loss
// write-offs, each with full lot and transaction bookkeeping.
type GoodsService struct {
	logger *slog.Logger
}

// NewGoodsService creates a GoodsService.
func NewGoodsService(logger *slog.Logger) *GoodsService {
	return &GoodsService{logger: logger}
}

// CargoUsed returns the cargo slots occupied by the current inventory,
// weighted by each good's unit size.
func CargoUsed(st *domain.GameState) int64 {
	var used int64
	for name, qty := range st.Inventory {
		size := int64(1)
		if g, ok := catalog.GoodByName(name); ok {
			size = int64(g.Size)
		}
		used += qty * size
	}
	return used
}

// Buy purchases quantity units of a good at the current market price. It
// validates funds and cargo space, opens a new purchase lot, and records a
// buy transaction.
func (s *GoodsService) Buy(st *domain.GameState, book *PriceBook, good string, quantity int64) (string, error) {
	g, ok := catalog.GoodByName(good)
	if !ok {
		return "", fmt.Errorf("goods_service: buy %q: %w", good, domain.ErrUnknownGood)
	}
	if quantity <= 0 {
		return "", fmt.Errorf("goods_service: buy %q: %w", good, domain.ErrInvalidAmount)
	}

	price := book.Goods[good]
	total := price * quantity
	if total > st.Cash {
		return "", fmt.Errorf("goods_service: buy %dx %q for $%d with $%d cash: %w",
			quantity, good, total, st.Cash, domain.ErrInsufficientFunds)
	}

	needed := quantity * int64(g.Size)
	free := int64(st.MaxCargo) - CargoUsed(st)
	if needed > free {
		return "", fmt.Errorf("goods_service: buy %dx %q needs %d slots, %d free: %w",
			quantity, good, needed, free, domain.ErrCargoFull)
	}

	city, _ := catalog.CityAt(st.CurrentCity)

	st.Cash -= total
	st.Inventory[good] += quantity
	st.PurchaseLots = append(st.PurchaseLots, domain.PurchaseLot{
		ID:              uuid.NewString(),
		Good:            good,
		Quantity:        quantity,
		UnitPrice:       price,
		Day:             st.Day,
		City:            city.Name,
		InitialQuantity: quantity,
	})
	st.Transactions = append(st.Transactions, domain.Transaction{
		ID:           uuid.NewString(),
		Type:         domain.TransactionBuy,
		Good:         good,
		Quantity:     quantity,
		PricePerUnit: price,
		Total:        total,
		Day:          st.Day,
		City:         city.Name,
	})

	s.logger.Info("goods_service: bought",
		slog.String("good", good),
		slog.Int64("quantity", quantity),
		slog.Int64("total", total),
	)
	return fmt.Sprintf("Bought %dx %s for $%d", quantity, good, total), nil
}

// Sell sells quantity units of a good at the current market price, consuming
// purchase lots oldest-first.
func (s *GoodsService) Sell(st *domain.GameState, book *PriceBook, good string, quantity int64) (string, error) {
	if _, ok := catalog.GoodByName(good); !ok {
		return "", fmt.Errorf("goods_service: sell %q: %w", good, domain.ErrUnknownGood)
	}
	if quantity <= 0 {
		return "", fmt.Errorf("goods_service: sell %q: %w", good, domain.ErrInvalidAmount)
	}
	if st.Inventory[good] < quantity {
		return "", fmt.Errorf("goods_service: sell %dx %q with %d held: %w",
			quantity, good, st.Inventory[good], domain.ErrInsufficientQuantity)
	}

	price := book.Goods[good]
	total := price * quantity

	s.consumeLots(st, good, quantity, LossFIFO)
	s.creditSale(st, good, quantity, price, total)

	return fmt.Sprintf("Sold %dx %s for $%d", quantity, good, total), nil
}

// SellLot sells quantity units out of one specific purchase lot.
func (s *GoodsService) SellLot(st *domain.GameState, book *PriceBook, lotID string, quantity int64) (string, error) {
	idx := -1
	for i := range st.PurchaseLots {
		if st.PurchaseLots[i].ID == lotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("goods_service: sell lot %q: %w", lotID, domain.ErrUnknownLot)
	}
	lot := &st.PurchaseLots[idx]
	if quantity <= 0 {
		return "", fmt.Errorf("goods_service: sell lot %q: %w", lotID, domain.ErrInvalidAmount)
	}
	if lot.Quantity < quantity {
		return "", fmt.Errorf("goods_service: sell %d from lot %q holding %d: %w",
			quantity, lotID, lot.Quantity, domain.ErrInsufficientQuantity)
	}

	good := lot.Good
	price := book.Goods[good]
	total := price * quantity

	lot.Quantity -= quantity
	if lot.Quantity == 0 {
		st.PurchaseLots = append(st.PurchaseLots[:idx], st.PurchaseLots[idx+1:]...)
	}
	s.creditSale(st, good, quantity, price, total)

	return fmt.Sprintf("Sold %dx %s from lot for $%d", quantity, good, total), nil
}

// creditSale applies the cash, inventory, and transaction effects common to
// both sell paths. Lot consumption has already happened.
func (s *GoodsService) creditSale(st *domain.GameState, good string, quantity, price, total int64) {
	st.Cash += total
	st.Inventory[good] -= quantity
	if st.Inventory[good] == 0 {
		delete(st.Inventory, good)
	}

	city, _ := catalog.CityAt(st.CurrentCity)
	st.Transactions = append(st.Transactions, domain.Transaction{
		ID:           uuid.NewString(),
		Type:         domain.TransactionSell,
		Good:         good,
		Quantity:     quantity,
		PricePerUnit: price,
		Total:        total,
		Day:          st.Day,
		City:         city.Name,
	})

	s.logger.Info("goods_service: sold",
		slog.String("good", good),
		slog.Int64("quantity", quantity),
		slog.Int64("total", total),
	)
}

// RecordLoss writes off up to quantity units of a good, consuming lots per
// the policy. Each consumed lot is tagged with the lost quantity and emits a
// loss transaction valued at that lot's original unit price, not the current
// market price. Returns the quantity and value actually written off.
func (s *GoodsService) RecordLoss(st *domain.GameState, good string, quantity int64, policy LossPolicy) (lostQty, lostValue int64) {
	held := st.Inventory[good]
	if quantity > held {
		quantity = held
	}
	if quantity <= 0 {
		return 0, 0
	}

	city, _ := catalog.CityAt(st.CurrentCity)
	remaining := quantity

	indices := st.LotsForGood(good)
	if policy == LossFromLast {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	var remove []int
	for _, i := range indices {
		if remaining == 0 {
			break
		}
		lot := &st.PurchaseLots[i]
		take := lot.Quantity
		if take > remaining {
			take = remaining
		}
		lot.Quantity -= take
		lot.LostQuantity += take
		remaining -= take
		lostQty += take
		lostValue += take * lot.UnitPrice

		st.Transactions = append(st.Transactions, domain.Transaction{
			ID:           uuid.NewString(),
			Type:         domain.TransactionLoss,
			Good:         good,
			Quantity:     take,
			PricePerUnit: lot.UnitPrice,
			Total:        take * lot.UnitPrice,
			Day:          st.Day,
			City:         city.Name,
		})
		if lot.Quantity == 0 {
			remove = append(remove, i)
		}
	}

	// Remove emptied lots highest index first so earlier indices stay valid.
	sort.Ints(remove)
	for i := len(remove) - 1; i >= 0; i-- {
		idx := remove[i]
		st.PurchaseLots = append(st.PurchaseLots[:idx], st.PurchaseLots[idx+1:]...)
	}

	st.Inventory[good] -= lostQty
	if st.Inventory[good] == 0 {
		delete(st.Inventory, good)
	}

	s.logger.Info("goods_service: loss recorded",
		slog.String("good", good),
		slog.Int64("quantity", lostQty),
		slog.Int64("value", lostValue),
	)
	return lostQty, lostValue
}

// consumeLots removes quantity units from the good's lots in policy order,
// dropping emptied lots. Callers have validated that enough units are held.
func (s *GoodsService) consumeLots(st *domain.GameState, good string, quantity int64, policy LossPolicy) {
	remaining := quantity
	indices := st.LotsForGood(good)
	if policy == LossFromLast {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	var remove []int
	for _, i := range indices {
		if remaining == 0 {
			break
		}
		lot := &st.PurchaseLots[i]
		if lot.Quantity <= remaining {
			remaining -= lot.Quantity
			lot.Quantity = 0
			remove = append(remove, i)
		} else {
			lot.Quantity -= remaining
			remaining = 0
		}
	}
	sort.Ints(remove)
	for i := len(remove) - 1; i >= 0; i-- {
		idx := remove[i]
		st.PurchaseLots = append(st.PurchaseLots[:idx], st.PurchaseLots[idx+1:]...)
	}
}
