// Package savegame persists the game to a single local file: a zstd stream
// holding a one-line JSON header followed by a JSON snapshot body. The header
// carries the schema version so incompatible saves are rejected before the
// body is decoded.
package savegame

// SchemaVersion is the current snapshot schema. Loading requires an exact
// match.
const SchemaVersion = 2

// Header is the uncompressed-readable first line of a save file.
type Header struct {
	Version int   `json:"version"`
	Day     int   `json:"day"`
	SavedAt int64 `json:"saved_at"`
}

// SnapshotV2 is the full persisted game. Row types are versioned with the
// schema; a future V3 adds new row structs rather than mutating these.
type SnapshotV2 struct {
	Header Header `json:"header"`

	Cash        int64 `json:"cash"`
	Debt        int64 `json:"debt"`
	Day         int   `json:"day"`
	CurrentCity int   `json:"current_city"`

	Inventory       map[string]int64 `json:"inventory"`
	MaxCargo        int              `json:"max_cargo"`
	CargoExtensions int              `json:"cargo_extensions"`
	PurchaseLots    []PurchaseLotV2  `json:"purchase_lots"`
	Transactions    []TransactionV2  `json:"transactions"`

	Portfolio      map[string]int64  `json:"portfolio"`
	InvestmentLots []InvestmentLotV2 `json:"investment_lots"`

	Bank          BankV2   `json:"bank"`
	Loans         []LoanV2 `json:"loans"`
	LoanRateToday float64  `json:"loan_rate_today"`

	PriceModifiers map[string]float64 `json:"price_modifiers,omitempty"`

	Lotto    LottoV2     `json:"lotto"`
	Messages []MessageV2 `json:"messages,omitempty"`

	Prices PricesV2 `json:"prices"`
}

type PurchaseLotV2 struct {
	ID              string `json:"id"`
	Good            string `json:"good"`
	Quantity        int64  `json:"quantity"`
	UnitPrice       int64  `json:"unit_price"`
	Day             int    `json:"day"`
	City            string `json:"city"`
	InitialQuantity int64  `json:"initial_quantity"`
	LostQuantity    int64  `json:"lost_quantity,omitempty"`
}

type TransactionV2 struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Good         string `json:"good"`
	Quantity     int64  `json:"quantity"`
	PricePerUnit int64  `json:"price_per_unit"`
	Total        int64  `json:"total"`
	Day          int    `json:"day"`
	City         string `json:"city"`
}

type InvestmentLotV2 struct {
	ID              string `json:"id"`
	Symbol          string `json:"symbol"`
	Quantity        int64  `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	Day             int    `json:"day"`
	DaysHeld        int    `json:"days_held"`
	InitialQuantity int64  `json:"initial_quantity"`
	LostQuantity    int64  `json:"lost_quantity,omitempty"`
}

type BankV2 struct {
	Balance         int64               `json:"balance"`
	RateAnnual      float64             `json:"rate_annual"`
	InterestCarry   string              `json:"interest_carry"`
	LastInterestDay int                 `json:"last_interest_day"`
	Transactions    []BankTransactionV2 `json:"transactions,omitempty"`
}

type BankTransactionV2 struct {
	Type         string `json:"type"`
	Amount       int64  `json:"amount"`
	BalanceAfter int64  `json:"balance_after"`
	Day          int    `json:"day"`
	Title        string `json:"title"`
}

type LoanV2 struct {
	ID            string  `json:"id"`
	Principal     int64   `json:"principal"`
	Remaining     int64   `json:"remaining"`
	RepaidTotal   int64   `json:"repaid_total,omitempty"`
	Repaid        bool    `json:"repaid"`
	DayTaken      int     `json:"day_taken"`
	RateAnnual    float64 `json:"rate_annual"`
	InterestCarry string  `json:"interest_carry"`
}

type LottoV2 struct {
	Tickets    []LottoTicketV2 `json:"tickets,omitempty"`
	LastDraw   []int           `json:"last_draw,omitempty"`
	TotalSpent int64           `json:"total_spent"`
	TotalWon   int64           `json:"total_won"`
}

type LottoTicketV2 struct {
	ID        string `json:"id"`
	Numbers   []int  `json:"numbers"`
	Price     int64  `json:"price"`
	DayBought int    `json:"day_bought"`
	Settled   bool   `json:"settled"`
}

type MessageV2 struct {
	Day   int    `json:"day"`
	Text  string `json:"text"`
	Level string `json:"level"`
	Tag   string `json:"tag,omitempty"`
}

type PricesV2 struct {
	Goods         map[string]int64    `json:"goods"`
	GoodsPrev     map[string]int64    `json:"goods_prev,omitempty"`
	Assets        map[string]string   `json:"assets"`
	AssetsPrev    map[string]string   `json:"assets_prev,omitempty"`
	GoodsHistory  map[string][]int64  `json:"goods_history,omitempty"`
	AssetsHistory map[string][]string `json:"assets_history,omitempty"`
}
