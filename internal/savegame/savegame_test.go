package savegame

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
	"github.com/mercatorgames/tycoon/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.tyc")
	return NewService(path, config.Defaults().Bank, testLogger())
}

func sampleState() (*domain.GameState, *service.PriceBook) {
	st := domain.NewGameState(domain.Difficulty{StartCash: 10_000, StartCapacity: 100})
	st.Day = 14
	st.CurrentCity = 3
	st.Inventory["TV"] = 2
	st.PurchaseLots = []domain.PurchaseLot{
		{ID: "lot-1", Good: "TV", Quantity: 2, UnitPrice: 800, Day: 12, City: "Warsaw", InitialQuantity: 3, LostQuantity: 1},
	}
	st.Transactions = []domain.Transaction{
		{ID: "tx-1", Type: domain.TransactionBuy, Good: "TV", Quantity: 3, PricePerUnit: 800, Total: 2400, Day: 12, City: "Warsaw"},
	}
	st.Portfolio["GOOGL"] = 5
	st.InvestmentLots = []domain.InvestmentLot{
		{ID: "inv-1", Symbol: "GOOGL", Quantity: 5, UnitPrice: decimal.RequireFromString("151.25"), Day: 13, DaysHeld: 1, InitialQuantity: 5},
	}
	st.Bank.Balance = 2500
	st.Bank.RateAnnual = 0.02
	st.Bank.InterestCarry = decimal.RequireFromString("0.4375")
	st.Bank.LastInterestDay = 14
	st.Bank.Transactions = []domain.BankTransaction{
		{Type: domain.BankTxDeposit, Amount: 2500, BalanceAfter: 2500, Day: 13, Title: "Deposit"},
	}
	st.Loans = []domain.Loan{
		{ID: "loan-1", Principal: 1000, Remaining: 1105, RepaidTotal: 45, DayTaken: 10, RateAnnual: 0.12, InterestCarry: decimal.RequireFromString("0.17")},
	}
	st.LoanRateToday = 0.08
	st.PriceModifiers["TV"] = 0.5
	st.Lotto.Tickets = []domain.LottoTicket{
		{ID: "t-1", Numbers: []int{3, 9, 17, 22, 31, 44}, Price: 50, DayBought: 14},
	}
	st.Lotto.TotalSpent = 50
	st.Messages = []domain.Message{
		{Day: 14, Text: "Bank interest credited: $3.", Level: domain.MessageInfo, Tag: "bank"},
	}
	st.RecomputeDebt()

	book := service.NewPriceBook()
	book.Goods["TV"] = 812
	book.GoodsPrev["TV"] = 790
	book.GoodsHistory["TV"] = []int64{780, 790, 812}
	book.Assets["GOOGL"] = decimal.RequireFromString("149.90")
	book.AssetsPrev["GOOGL"] = decimal.RequireFromString("151.25")
	book.AssetsHistory["GOOGL"] = []decimal.Decimal{
		decimal.RequireFromString("151.25"),
		decimal.RequireFromString("149.90"),
	}
	return st, book
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	st, book := sampleState()

	require.NoError(t, svc.Save(st, book))

	got, gotBook, err := svc.Load()
	require.NoError(t, err)

	assert.Equal(t, st.Cash, got.Cash)
	assert.Equal(t, st.Day, got.Day)
	assert.Equal(t, st.CurrentCity, got.CurrentCity)
	assert.Equal(t, st.Inventory, got.Inventory)
	assert.Equal(t, st.PurchaseLots, got.PurchaseLots)
	assert.Equal(t, st.Transactions, got.Transactions)
	assert.Equal(t, st.Portfolio, got.Portfolio)
	require.Len(t, got.InvestmentLots, 1)
	assert.True(t, got.InvestmentLots[0].UnitPrice.Equal(st.InvestmentLots[0].UnitPrice))
	assert.Equal(t, st.Bank.Balance, got.Bank.Balance)
	assert.True(t, got.Bank.InterestCarry.Equal(st.Bank.InterestCarry))
	assert.Equal(t, st.Bank.LastInterestDay, got.Bank.LastInterestDay)
	assert.Equal(t, st.Bank.Transactions, got.Bank.Transactions)
	require.Len(t, got.Loans, 1)
	assert.Equal(t, st.Loans[0].Remaining, got.Loans[0].Remaining)
	assert.Equal(t, st.Loans[0].RepaidTotal, got.Loans[0].RepaidTotal)
	assert.Equal(t, st.Loans[0].RateAnnual, got.Loans[0].RateAnnual)
	assert.True(t, got.Loans[0].InterestCarry.Equal(st.Loans[0].InterestCarry))
	assert.Equal(t, st.Debt, got.Debt, "debt is recomputed from the loan book")
	assert.Equal(t, st.LoanRateToday, got.LoanRateToday)
	assert.Equal(t, st.PriceModifiers, got.PriceModifiers)
	assert.Equal(t, st.Lotto.Tickets, got.Lotto.Tickets)
	assert.Equal(t, st.Messages, got.Messages)

	assert.Equal(t, book.Goods, gotBook.Goods)
	assert.Equal(t, book.GoodsPrev, gotBook.GoodsPrev)
	assert.Equal(t, book.GoodsHistory, gotBook.GoodsHistory)
	assert.True(t, gotBook.Assets["GOOGL"].Equal(book.Assets["GOOGL"]))
	assert.True(t, gotBook.AssetsPrev["GOOGL"].Equal(book.AssetsPrev["GOOGL"]))
	require.Len(t, gotBook.AssetsHistory["GOOGL"], 2)
	for i, p := range book.AssetsHistory["GOOGL"] {
		assert.True(t, gotBook.AssetsHistory["GOOGL"][i].Equal(p))
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	svc := newTestService(t)
	st, book := sampleState()

	require.NoError(t, svc.Save(st, book))
	st.Cash = 777
	require.NoError(t, svc.Save(st, book))

	got, _, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(777), got.Cash)

	_, err = os.Stat(svc.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not linger")
}

// writeRaw writes a save file with an arbitrary header and raw JSON body.
func writeRaw(t *testing.T, path string, hdr Header, body string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	hb, err := json.Marshal(hdr)
	require.NoError(t, err)
	_, err = enc.Write(append(hb, '\n'))
	require.NoError(t, err)
	_, err = enc.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}

func TestLoadRejectsSchemaVersionMismatch(t *testing.T) {
	svc := newTestService(t)
	writeRaw(t, svc.Path(), Header{Version: SchemaVersion + 1, Day: 4}, `{}`)

	_, _, err := svc.Load()
	assert.ErrorIs(t, err, domain.ErrSchemaVersionMismatch)
}

func TestLoadRejectsCorruptBody(t *testing.T) {
	svc := newTestService(t)
	writeRaw(t, svc.Path(), Header{Version: SchemaVersion, Day: 4}, `{not json`)

	_, _, err := svc.Load()
	assert.ErrorIs(t, err, domain.ErrCorruptSave)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.Load()
	assert.Error(t, err)
}

func TestLoadSkipsMalformedEntries(t *testing.T) {
	svc := newTestService(t)
	body := `{
		"cash": 500,
		"day": 3,
		"current_city": 0,
		"inventory": {"TV": 1},
		"max_cargo": 100,
		"purchase_lots": [
			{"id": "ok", "good": "TV", "quantity": 1, "unit_price": 800, "day": 2, "city": "Warsaw", "initial_quantity": 1},
			42,
			{"id": "no-good", "quantity": 1}
		],
		"loans": [
			{"id": "keep", "principal": 100, "remaining": 110, "rate_annual": 0.1, "interest_carry": "0"},
			"garbage"
		],
		"bank": {"balance": 0, "rate_annual": 0.02, "interest_carry": "0", "last_interest_day": 3},
		"lotto": {"total_spent": 0, "total_won": 0},
		"prices": {"goods": {"TV": 800}, "assets": {}}
	}`
	writeRaw(t, svc.Path(), Header{Version: SchemaVersion, Day: 3}, body)

	st, book, err := svc.Load()
	require.NoError(t, err)

	require.Len(t, st.PurchaseLots, 1)
	assert.Equal(t, "ok", st.PurchaseLots[0].ID)
	require.Len(t, st.Loans, 1)
	assert.Equal(t, "keep", st.Loans[0].ID)
	assert.Equal(t, int64(110), st.Debt)
	assert.Equal(t, int64(800), book.Goods["TV"])
}

func TestLoadClampsLoanAPRIntoConfiguredRange(t *testing.T) {
	svc := newTestService(t)
	body := `{
		"cash": 0, "day": 1, "current_city": 0, "max_cargo": 10,
		"loans": [
			{"id": "hot", "principal": 100, "remaining": 100, "rate_annual": 0.95, "interest_carry": "0"},
			{"id": "cold", "principal": 100, "remaining": 100, "rate_annual": 0.001, "interest_carry": "0"}
		],
		"bank": {"balance": 0, "rate_annual": 0.02, "interest_carry": "0", "last_interest_day": 1},
		"lotto": {"total_spent": 0, "total_won": 0},
		"prices": {"goods": {}, "assets": {}}
	}`
	writeRaw(t, svc.Path(), Header{Version: SchemaVersion, Day: 1}, body)

	st, _, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, st.Loans, 2)
	assert.Equal(t, 0.20, st.Loans[0].RateAnnual)
	assert.Equal(t, 0.01, st.Loans[1].RateAnnual)
}
