package domain

// GameState is the complete mutable state of one game. It is owned by a
// single goroutine; nothing here is safe for concurrent use.
type GameState struct {
	Cash int64
	Debt int64
	Day  int

	CurrentCity int

	Inventory       map[string]int64
	MaxCargo        int
	CargoExtensions int
	PurchaseLots    []PurchaseLot
	Transactions    []Transaction

	Portfolio      map[string]int64
	InvestmentLots []InvestmentLot

	Bank  BankAccount
	Loans []Loan
	// LoanRateToday is the APR offered on new loans today, redrawn daily.
	LoanRateToday float64

	// PriceModifiers are one-day goods price multipliers set by travel
	// events and consumed by the next pricing pass.
	PriceModifiers map[string]float64

	Lotto    LottoState
	Messages []Message
}

// NewGameState returns a fresh state for the given difficulty preset.
func NewGameState(d Difficulty) *GameState {
	return &GameState{
		Cash:           d.StartCash,
		Day:            1,
		Inventory:      make(map[string]int64),
		MaxCargo:       d.StartCapacity,
		Portfolio:      make(map[string]int64),
		PriceModifiers: make(map[string]float64),
		Bank:           BankAccount{LastInterestDay: 1},
	}
}

// InventoryCount returns the held quantity of one good.
func (s *GameState) InventoryCount(good string) int64 {
	return s.Inventory[good]
}

// TotalUnits returns the total number of goods units held.
func (s *GameState) TotalUnits() int64 {
	var n int64
	for _, q := range s.Inventory {
		n += q
	}
	return n
}

// LotsForGood returns the indices of all lots holding the named good, in
// purchase (FIFO) order.
func (s *GameState) LotsForGood(good string) []int {
	var idx []int
	for i, lot := range s.PurchaseLots {
		if lot.Good == good {
			idx = append(idx, i)
		}
	}
	return idx
}

// OpenLoans returns the number of loans not yet fully repaid.
func (s *GameState) OpenLoans() int {
	n := 0
	for _, l := range s.Loans {
		if !l.Repaid {
			n++
		}
	}
	return n
}

// RecomputeDebt resets total debt to the sum of remaining balances across
// open loans. Called after repayments and after loading a savegame.
func (s *GameState) RecomputeDebt() {
	var debt int64
	for _, l := range s.Loans {
		if !l.Repaid {
			debt += l.Remaining
		}
	}
	s.Debt = debt
}

// AddMessage appends a message to the bounded in-game log.
func (s *GameState) AddMessage(text string, level MessageLevel, tag string, maxLen int) {
	s.Messages = append(s.Messages, Message{Day: s.Day, Text: text, Level: level, Tag: tag})
	if maxLen > 0 && len(s.Messages) > maxLen {
		s.Messages = s.Messages[len(s.Messages)-maxLen:]
	}
}
