package service

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
)

// LottoService runs the daily lottery: quick-pick tickets and a nightly draw
// with fixed prize tiers by match count.
type LottoService struct {
	cfg    config.LottoConfig
	rng    *rand.Rand
	logger *slog.Logger
}

// NewLottoService creates a LottoService.
func NewLottoService(cfg config.LottoConfig, rng *rand.Rand, logger *slog.Logger) *LottoService {
	return &LottoService{cfg: cfg, rng: rng, logger: logger}
}

// pick draws n unique numbers in [1, max], sorted ascending.
func (s *LottoService) pick() []int {
	seen := make(map[int]bool, s.cfg.NumbersPerTicket)
	nums := make([]int, 0, s.cfg.NumbersPerTicket)
	for len(nums) < s.cfg.NumbersPerTicket {
		n := s.rng.Intn(s.cfg.MaxNumber) + 1
		if !seen[n] {
			seen[n] = true
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)
	return nums
}

// BuyTicket sells one quick-pick ticket for the fixed price.
func (s *LottoService) BuyTicket(st *domain.GameState) (string, error) {
	if s.cfg.TicketPrice > st.Cash {
		return "", fmt.Errorf("lotto_service: ticket costs $%d with $%d cash: %w",
			s.cfg.TicketPrice, st.Cash, domain.ErrInsufficientFunds)
	}

	ticket := domain.LottoTicket{
		ID:        uuid.NewString(),
		Numbers:   s.pick(),
		Price:     s.cfg.TicketPrice,
		DayBought: st.Day,
	}
	st.Cash -= s.cfg.TicketPrice
	st.Lotto.Tickets = append(st.Lotto.Tickets, ticket)
	st.Lotto.TotalSpent += s.cfg.TicketPrice

	return fmt.Sprintf("Lotto ticket bought for $%d: %v", s.cfg.TicketPrice, ticket.Numbers), nil
}

// prize returns the payout for a match count.
func (s *LottoService) prize(matches int) int64 {
	switch matches {
	case 3:
		return s.cfg.Prize3
	case 4:
		return s.cfg.Prize4
	case 5:
		return s.cfg.Prize5
	case 6:
		return s.cfg.Prize6
	default:
		return 0
	}
}

// DailyDraw draws the day's numbers and settles every unsettled ticket,
// crediting prizes to cash. Returns the total won.
func (s *LottoService) DailyDraw(st *domain.GameState) int64 {
	draw := s.pick()
	st.Lotto.LastDraw = draw

	var won int64
	for i := range st.Lotto.Tickets {
		t := &st.Lotto.Tickets[i]
		if t.Settled {
			continue
		}
		t.Settled = true
		if p := s.prize(t.Matches(draw)); p > 0 {
			st.Cash += p
			won += p
		}
	}
	st.Lotto.TotalWon += won

	if won > 0 {
		s.logger.Info("lotto_service: winnings paid", slog.Int64("amount", won))
	}
	return won
}
