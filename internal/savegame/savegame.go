package savegame

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/shopspring/decimal"

	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
	"github.com/mercatorgames/tycoon/internal/service"
)

// Service saves and loads the game. Saves are written atomically (temp file
// plus rename) so a crash mid-write never corrupts the previous save.
type Service struct {
	path   string
	bank   config.BankConfig
	logger *slog.Logger
}

// NewService creates a savegame Service writing to path.
func NewService(path string, bank config.BankConfig, logger *slog.Logger) *Service {
	return &Service{path: path, bank: bank, logger: logger}
}

// Path returns the save file location.
func (s *Service) Path() string { return s.path }

// Save captures the state and price book into a snapshot and writes it.
func (s *Service) Save(st *domain.GameState, book *service.PriceBook) error {
	snap := capture(st, book)
	if err := s.write(snap); err != nil {
		return fmt.Errorf("savegame: save: %w", err)
	}
	s.logger.Info("savegame: saved",
		slog.String("path", s.path),
		slog.Int("day", snap.Day),
	)
	return nil
}

// Load reads the save file and rebuilds the game state and price book. The
// schema version must match exactly; on any error nothing is returned, so the
// caller's live state stays untouched. Malformed entries inside list sections
// are skipped individually rather than failing the whole load.
func (s *Service) Load() (*domain.GameState, *service.PriceBook, error) {
	st, book, err := s.read()
	if err != nil {
		return nil, nil, fmt.Errorf("savegame: load: %w", err)
	}
	s.logger.Info("savegame: loaded",
		slog.String("path", s.path),
		slog.Int("day", st.Day),
	)
	return st, book, nil
}

func (s *Service) write(snap SnapshotV2) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if err := writeSnapshot(f, snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.path)
}

func writeSnapshot(f *os.File, snap SnapshotV2) error {
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriter(enc)
	defer bw.Flush()

	hb, _ := json.Marshal(snap.Header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return json.NewEncoder(bw).Encode(&snap)
}

func (s *Service) read() (*domain.GameState, *service.PriceBook, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, nil, err
	}
	defer dec.Close()

	br := bufio.NewReader(dec)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", domain.ErrCorruptSave)
	}
	var hdr Header
	if err := json.Unmarshal(line, &hdr); err != nil {
		return nil, nil, fmt.Errorf("decode header: %w", domain.ErrCorruptSave)
	}
	if hdr.Version != SchemaVersion {
		return nil, nil, fmt.Errorf("save has schema %d, want %d: %w",
			hdr.Version, SchemaVersion, domain.ErrSchemaVersionMismatch)
	}

	var raw snapshotRawV2
	if err := json.NewDecoder(br).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode body: %w", domain.ErrCorruptSave)
	}
	st, book := s.apply(raw)
	return st, book, nil
}

// snapshotRawV2 mirrors SnapshotV2 with list sections left raw so single
// malformed entries can be skipped.
type snapshotRawV2 struct {
	Cash        int64 `json:"cash"`
	Debt        int64 `json:"debt"`
	Day         int   `json:"day"`
	CurrentCity int   `json:"current_city"`

	Inventory       map[string]int64  `json:"inventory"`
	MaxCargo        int               `json:"max_cargo"`
	CargoExtensions int               `json:"cargo_extensions"`
	PurchaseLots    []json.RawMessage `json:"purchase_lots"`
	Transactions    []json.RawMessage `json:"transactions"`

	Portfolio      map[string]int64  `json:"portfolio"`
	InvestmentLots []json.RawMessage `json:"investment_lots"`

	Bank          BankV2            `json:"bank"`
	Loans         []json.RawMessage `json:"loans"`
	LoanRateToday float64           `json:"loan_rate_today"`

	PriceModifiers map[string]float64 `json:"price_modifiers"`

	Lotto    LottoV2     `json:"lotto"`
	Messages []MessageV2 `json:"messages"`

	Prices PricesV2 `json:"prices"`
}

// capture converts the live state into a snapshot.
func capture(st *domain.GameState, book *service.PriceBook) SnapshotV2 {
	snap := SnapshotV2{
		Header: Header{
			Version: SchemaVersion,
			Day:     st.Day,
			SavedAt: time.Now().Unix(),
		},
		Cash:            st.Cash,
		Debt:            st.Debt,
		Day:             st.Day,
		CurrentCity:     st.CurrentCity,
		Inventory:       st.Inventory,
		MaxCargo:        st.MaxCargo,
		CargoExtensions: st.CargoExtensions,
		Portfolio:       st.Portfolio,
		LoanRateToday:   st.LoanRateToday,
		PriceModifiers:  st.PriceModifiers,
		Prices: PricesV2{
			Goods:         book.Goods,
			GoodsPrev:     book.GoodsPrev,
			Assets:        encodeDecimalMap(book.Assets),
			AssetsPrev:    encodeDecimalMap(book.AssetsPrev),
			GoodsHistory:  book.GoodsHistory,
			AssetsHistory: encodeDecimalHistory(book.AssetsHistory),
		},
		Bank: BankV2{
			Balance:         st.Bank.Balance,
			RateAnnual:      st.Bank.RateAnnual,
			InterestCarry:   st.Bank.InterestCarry.String(),
			LastInterestDay: st.Bank.LastInterestDay,
		},
		Lotto: LottoV2{
			LastDraw:   st.Lotto.LastDraw,
			TotalSpent: st.Lotto.TotalSpent,
			TotalWon:   st.Lotto.TotalWon,
		},
	}

	for _, lot := range st.PurchaseLots {
		snap.PurchaseLots = append(snap.PurchaseLots, PurchaseLotV2{
			ID: lot.ID, Good: lot.Good, Quantity: lot.Quantity, UnitPrice: lot.UnitPrice,
			Day: lot.Day, City: lot.City, InitialQuantity: lot.InitialQuantity, LostQuantity: lot.LostQuantity,
		})
	}
	for _, tx := range st.Transactions {
		snap.Transactions = append(snap.Transactions, TransactionV2{
			ID: tx.ID, Type: string(tx.Type), Good: tx.Good, Quantity: tx.Quantity,
			PricePerUnit: tx.PricePerUnit, Total: tx.Total, Day: tx.Day, City: tx.City,
		})
	}
	for _, lot := range st.InvestmentLots {
		snap.InvestmentLots = append(snap.InvestmentLots, InvestmentLotV2{
			ID: lot.ID, Symbol: lot.Symbol, Quantity: lot.Quantity, UnitPrice: lot.UnitPrice.String(),
			Day: lot.Day, DaysHeld: lot.DaysHeld, InitialQuantity: lot.InitialQuantity, LostQuantity: lot.LostQuantity,
		})
	}
	for _, loan := range st.Loans {
		snap.Loans = append(snap.Loans, LoanV2{
			ID: loan.ID, Principal: loan.Principal, Remaining: loan.Remaining,
			RepaidTotal: loan.RepaidTotal, Repaid: loan.Repaid,
			DayTaken: loan.DayTaken, RateAnnual: loan.RateAnnual, InterestCarry: loan.InterestCarry.String(),
		})
	}
	for _, btx := range st.Bank.Transactions {
		snap.Bank.Transactions = append(snap.Bank.Transactions, BankTransactionV2{
			Type: string(btx.Type), Amount: btx.Amount, BalanceAfter: btx.BalanceAfter,
			Day: btx.Day, Title: btx.Title,
		})
	}
	for _, t := range st.Lotto.Tickets {
		snap.Lotto.Tickets = append(snap.Lotto.Tickets, LottoTicketV2{
			ID: t.ID, Numbers: t.Numbers, Price: t.Price, DayBought: t.DayBought, Settled: t.Settled,
		})
	}
	for _, m := range st.Messages {
		snap.Messages = append(snap.Messages, MessageV2{
			Day: m.Day, Text: m.Text, Level: string(m.Level), Tag: m.Tag,
		})
	}
	return snap
}

// apply rebuilds the live state from a decoded snapshot. Malformed list
// entries are dropped with a warning; debt is recomputed from the surviving
// loans and loan APRs are clamped into the configured range.
func (s *Service) apply(raw snapshotRawV2) (*domain.GameState, *service.PriceBook) {
	st := &domain.GameState{
		Cash:            raw.Cash,
		Day:             raw.Day,
		CurrentCity:     raw.CurrentCity,
		Inventory:       raw.Inventory,
		MaxCargo:        raw.MaxCargo,
		CargoExtensions: raw.CargoExtensions,
		Portfolio:       raw.Portfolio,
		LoanRateToday:   raw.LoanRateToday,
		PriceModifiers:  raw.PriceModifiers,
		Bank: domain.BankAccount{
			Balance:         raw.Bank.Balance,
			RateAnnual:      raw.Bank.RateAnnual,
			InterestCarry:   parseDecimal(raw.Bank.InterestCarry),
			LastInterestDay: raw.Bank.LastInterestDay,
		},
		Lotto: domain.LottoState{
			LastDraw:   raw.Lotto.LastDraw,
			TotalSpent: raw.Lotto.TotalSpent,
			TotalWon:   raw.Lotto.TotalWon,
		},
	}
	if st.Inventory == nil {
		st.Inventory = make(map[string]int64)
	}
	if st.Portfolio == nil {
		st.Portfolio = make(map[string]int64)
	}
	if st.PriceModifiers == nil {
		st.PriceModifiers = make(map[string]float64)
	}

	skipped := 0
	for _, rm := range raw.PurchaseLots {
		var row PurchaseLotV2
		if err := json.Unmarshal(rm, &row); err != nil || row.Good == "" {
			skipped++
			continue
		}
		st.PurchaseLots = append(st.PurchaseLots, domain.PurchaseLot{
			ID: row.ID, Good: row.Good, Quantity: row.Quantity, UnitPrice: row.UnitPrice,
			Day: row.Day, City: row.City, InitialQuantity: row.InitialQuantity, LostQuantity: row.LostQuantity,
		})
	}
	for _, rm := range raw.Transactions {
		var row TransactionV2
		if err := json.Unmarshal(rm, &row); err != nil || row.Type == "" {
			skipped++
			continue
		}
		st.Transactions = append(st.Transactions, domain.Transaction{
			ID: row.ID, Type: domain.TransactionType(row.Type), Good: row.Good, Quantity: row.Quantity,
			PricePerUnit: row.PricePerUnit, Total: row.Total, Day: row.Day, City: row.City,
		})
	}
	for _, rm := range raw.InvestmentLots {
		var row InvestmentLotV2
		if err := json.Unmarshal(rm, &row); err != nil || row.Symbol == "" {
			skipped++
			continue
		}
		price, err := decimal.NewFromString(row.UnitPrice)
		if err != nil {
			skipped++
			continue
		}
		st.InvestmentLots = append(st.InvestmentLots, domain.InvestmentLot{
			ID: row.ID, Symbol: row.Symbol, Quantity: row.Quantity, UnitPrice: price,
			Day: row.Day, DaysHeld: row.DaysHeld, InitialQuantity: row.InitialQuantity, LostQuantity: row.LostQuantity,
		})
	}
	for _, rm := range raw.Loans {
		var row LoanV2
		if err := json.Unmarshal(rm, &row); err != nil || row.ID == "" {
			skipped++
			continue
		}
		rate := row.RateAnnual
		if rate < s.bank.LoanAPRMin {
			rate = s.bank.LoanAPRMin
		}
		if rate > s.bank.LoanAPRMax {
			rate = s.bank.LoanAPRMax
		}
		st.Loans = append(st.Loans, domain.Loan{
			ID: row.ID, Principal: row.Principal, Remaining: row.Remaining,
			RepaidTotal: row.RepaidTotal, Repaid: row.Repaid,
			DayTaken: row.DayTaken, RateAnnual: rate, InterestCarry: parseDecimal(row.InterestCarry),
		})
	}
	for _, btx := range raw.Bank.Transactions {
		st.Bank.Transactions = append(st.Bank.Transactions, domain.BankTransaction{
			Type: domain.BankTransactionType(btx.Type), Amount: btx.Amount,
			BalanceAfter: btx.BalanceAfter, Day: btx.Day, Title: btx.Title,
		})
	}
	for _, t := range raw.Lotto.Tickets {
		st.Lotto.Tickets = append(st.Lotto.Tickets, domain.LottoTicket{
			ID: t.ID, Numbers: t.Numbers, Price: t.Price, DayBought: t.DayBought, Settled: t.Settled,
		})
	}
	for _, m := range raw.Messages {
		st.Messages = append(st.Messages, domain.Message{
			Day: m.Day, Text: m.Text, Level: domain.MessageLevel(m.Level), Tag: m.Tag,
		})
	}
	if skipped > 0 {
		s.logger.Warn("savegame: skipped malformed entries", slog.Int("count", skipped))
	}

	// The saved debt figure is advisory; the loan book is authoritative.
	st.RecomputeDebt()

	book := service.NewPriceBook()
	if raw.Prices.Goods != nil {
		book.Goods = raw.Prices.Goods
	}
	if raw.Prices.GoodsPrev != nil {
		book.GoodsPrev = raw.Prices.GoodsPrev
	}
	if raw.Prices.GoodsHistory != nil {
		book.GoodsHistory = raw.Prices.GoodsHistory
	}
	for sym, v := range raw.Prices.Assets {
		book.Assets[sym] = parseDecimal(v)
	}
	for sym, v := range raw.Prices.AssetsPrev {
		book.AssetsPrev[sym] = parseDecimal(v)
	}
	for sym, vs := range raw.Prices.AssetsHistory {
		hist := make([]decimal.Decimal, 0, len(vs))
		for _, v := range vs {
			hist = append(hist, parseDecimal(v))
		}
		book.AssetsHistory[sym] = hist
	}
	return st, book
}

func encodeDecimalMap(m map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.String()
	}
	return out
}

func encodeDecimalHistory(m map[string][]decimal.Decimal) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, vs := range m {
		hist := make([]string, 0, len(vs))
		for _, v := range vs {
			hist = append(hist, v.String())
		}
		out[k] = hist
	}
	return out
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
