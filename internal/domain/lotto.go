package domain

// LottoTicket is one lottery ticket: six unique numbers plus the price paid.
// Settled tickets have been compared against a daily draw.
type LottoTicket struct {
	ID        string
	Numbers   []int
	Price     int64
	DayBought int
	Settled   bool
}

// Matches counts how many of the ticket's numbers appear in the draw.
func (t LottoTicket) Matches(draw []int) int {
	in := make(map[int]bool, len(draw))
	for _, n := range draw {
		in[n] = true
	}
	matches := 0
	for _, n := range t.Numbers {
		if in[n] {
			matches++
		}
	}
	return matches
}

// LottoState aggregates lottery bookkeeping persisted with the game.
type LottoState struct {
	Tickets    []LottoTicket
	LastDraw   []int
	TotalSpent int64
	TotalWon   int64
}
