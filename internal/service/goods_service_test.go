package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercatorgames/tycoon/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestState(cash int64, capacity int) *domain.GameState {
	return domain.NewGameState(domain.Difficulty{
		Name:          "test",
		StartCash:     cash,
		StartCapacity: capacity,
	})
}

func bookWithGoods(prices map[string]int64) *PriceBook {
	book := NewPriceBook()
	for name, p := range prices {
		book.Goods[name] = p
	}
	return book
}

func TestBuyDebitsCashAndOpensLot(t *testing.T) {
	st := newTestState(5000, 100)
	book := bookWithGoods(map[string]int64{"TV": 800})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "TV", 2)
	require.NoError(t, err)

	assert.Equal(t, int64(3400), st.Cash)
	assert.Equal(t, int64(2), st.Inventory["TV"])
	require.Len(t, st.PurchaseLots, 1)
	assert.Equal(t, int64(800), st.PurchaseLots[0].UnitPrice)
	assert.Equal(t, int64(2), st.PurchaseLots[0].InitialQuantity)
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, domain.TransactionBuy, st.Transactions[0].Type)
	assert.Equal(t, int64(1600), st.Transactions[0].Total)
}

func TestBuyValidation(t *testing.T) {
	st := newTestState(1000, 100)
	book := bookWithGoods(map[string]int64{"TV": 800})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "Hoverboard", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownGood)

	_, err = svc.Buy(st, book, "TV", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Buy(st, book, "TV", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	assert.Equal(t, int64(1000), st.Cash)
	assert.Empty(t, st.PurchaseLots)
}

func TestBuyRespectsCargoSize(t *testing.T) {
	// A TV occupies 3 slots, so 2 TVs need 6 and do not fit in 5.
	st := newTestState(100_000, 5)
	book := bookWithGoods(map[string]int64{"TV": 800})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "TV", 2)
	assert.ErrorIs(t, err, domain.ErrCargoFull)

	_, err = svc.Buy(st, book, "TV", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), CargoUsed(st))
}

func TestCargoUsedWeighsBySize(t *testing.T) {
	st := newTestState(0, 100)
	st.Inventory["TV"] = 2         // size 3
	st.Inventory["Headphones"] = 4 // size 1

	assert.Equal(t, int64(10), CargoUsed(st))
}

func TestSellConsumesLotsFIFO(t *testing.T) {
	st := newTestState(100_000, 100)
	book := bookWithGoods(map[string]int64{"TV": 500})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "TV", 3)
	require.NoError(t, err)
	book.Goods["TV"] = 700
	_, err = svc.Buy(st, book, "TV", 2)
	require.NoError(t, err)
	cashBefore := st.Cash

	book.Goods["TV"] = 900
	_, err = svc.Sell(st, book, "TV", 4)
	require.NoError(t, err)

	// The whole first lot and one unit of the second are gone.
	require.Len(t, st.PurchaseLots, 1)
	assert.Equal(t, int64(700), st.PurchaseLots[0].UnitPrice)
	assert.Equal(t, int64(1), st.PurchaseLots[0].Quantity)
	assert.Equal(t, int64(1), st.Inventory["TV"])
	assert.Equal(t, cashBefore+4*900, st.Cash)
}

func TestSellValidation(t *testing.T) {
	st := newTestState(10_000, 100)
	book := bookWithGoods(map[string]int64{"TV": 500})
	svc := NewGoodsService(testLogger())

	_, err := svc.Sell(st, book, "TV", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	_, err = svc.Sell(st, book, "TV", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Sell(st, book, "Hoverboard", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownGood)
}

func TestSellLotTargetsOneLot(t *testing.T) {
	st := newTestState(100_000, 100)
	book := bookWithGoods(map[string]int64{"TV": 500})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "TV", 3)
	require.NoError(t, err)
	_, err = svc.Buy(st, book, "TV", 2)
	require.NoError(t, err)
	second := st.PurchaseLots[1].ID

	_, err = svc.SellLot(st, book, second, 2)
	require.NoError(t, err)

	// The second lot empties and disappears; the first is untouched.
	require.Len(t, st.PurchaseLots, 1)
	assert.Equal(t, int64(3), st.PurchaseLots[0].Quantity)
	assert.Equal(t, int64(3), st.Inventory["TV"])

	_, err = svc.SellLot(st, book, "no-such-lot", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownLot)
}

func TestRecordLossFIFOValuesAtLotPrice(t *testing.T) {
	st := newTestState(100_000, 100)
	book := bookWithGoods(map[string]int64{"TV": 100})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "TV", 10)
	require.NoError(t, err)
	book.Goods["TV"] = 200
	_, err = svc.Buy(st, book, "TV", 5)
	require.NoError(t, err)
	cashBefore := st.Cash

	lostQty, lostValue := svc.RecordLoss(st, "TV", 12, LossFIFO)

	assert.Equal(t, int64(12), lostQty)
	// 10 units at the first lot's $100 plus 2 at the second lot's $200.
	assert.Equal(t, int64(1400), lostValue)
	assert.Equal(t, int64(3), st.Inventory["TV"])
	assert.Equal(t, cashBefore, st.Cash, "losses never touch cash directly")

	require.Len(t, st.PurchaseLots, 1)
	assert.Equal(t, int64(200), st.PurchaseLots[0].UnitPrice)
	assert.Equal(t, int64(3), st.PurchaseLots[0].Quantity)
	assert.Equal(t, int64(2), st.PurchaseLots[0].LostQuantity)
}

func TestRecordLossClampsToHeld(t *testing.T) {
	st := newTestState(100_000, 100)
	book := bookWithGoods(map[string]int64{"TV": 100})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "TV", 10)
	require.NoError(t, err)

	lostQty, _ := svc.RecordLoss(st, "TV", 50, LossFIFO)
	assert.Equal(t, int64(10), lostQty)
	assert.NotContains(t, st.Inventory, "TV")
	assert.Empty(t, st.PurchaseLots)
}

func TestRecordLossFromLast(t *testing.T) {
	st := newTestState(100_000, 100)
	book := bookWithGoods(map[string]int64{"TV": 100})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "TV", 10)
	require.NoError(t, err)
	book.Goods["TV"] = 200
	_, err = svc.Buy(st, book, "TV", 5)
	require.NoError(t, err)

	lostQty, lostValue := svc.RecordLoss(st, "TV", 5, LossFromLast)

	assert.Equal(t, int64(5), lostQty)
	assert.Equal(t, int64(1000), lostValue)
	require.Len(t, st.PurchaseLots, 1)
	assert.Equal(t, int64(100), st.PurchaseLots[0].UnitPrice)
	assert.Equal(t, int64(10), st.PurchaseLots[0].Quantity)
}

func TestPartialRobberyKeepsLedgerConsistent(t *testing.T) {
	st := newTestState(100_000, 100)
	book := bookWithGoods(map[string]int64{"Phone": 600})
	svc := NewGoodsService(testLogger())

	_, err := svc.Buy(st, book, "Phone", 10)
	require.NoError(t, err)

	lostQty, lostValue := svc.RecordLoss(st, "Phone", 3, LossFIFO)
	assert.Equal(t, int64(3), lostQty)
	assert.Equal(t, int64(1800), lostValue)

	assert.Equal(t, int64(7), st.Inventory["Phone"])
	var lotSum int64
	for _, lot := range st.PurchaseLots {
		lotSum += lot.Quantity
	}
	assert.Equal(t, st.Inventory["Phone"], lotSum, "inventory must mirror lot quantities")
	assert.Equal(t, int64(3), st.PurchaseLots[0].LostQuantity)

	// The loss transaction is valued at the lot's purchase price.
	last := st.Transactions[len(st.Transactions)-1]
	assert.Equal(t, domain.TransactionLoss, last.Type)
	assert.Equal(t, int64(600), last.PricePerUnit)
}
