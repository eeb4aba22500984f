package service

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/domain"
)

// CargoService sells cargo capacity extensions. Each purchase adds one slot;
// the price of the next slot grows linearly or exponentially with the number
// of slots already bought.
type CargoService struct {
	cfg    config.CargoConfig
	logger *slog.Logger
}

// NewCargoService creates a CargoService.
func NewCargoService(cfg config.CargoConfig, logger *slog.Logger) *CargoService {
	return &CargoService{cfg: cfg, logger: logger}
}

// NextExtensionCost returns the price of the next capacity slot.
func (s *CargoService) NextExtensionCost(st *domain.GameState) int64 {
	return s.extensionCost(st.CargoExtensions)
}

func (s *CargoService) extensionCost(purchased int) int64 {
	n := int64(purchased)
	if s.cfg.ExtendMode == "exponential" {
		return int64(float64(s.cfg.ExtendBaseCost) * math.Pow(s.cfg.ExtendFactor, float64(n)))
	}
	return s.cfg.ExtendBaseCost + s.cfg.ExtendStep*n
}

// ExtendCapacity buys count additional cargo slots at the escalating per-slot
// price. The whole bundle is priced up front; on insufficient funds nothing
// is debited and no slots are granted.
func (s *CargoService) ExtendCapacity(st *domain.GameState, count int) (string, error) {
	if count <= 0 {
		return "", fmt.Errorf("cargo_service: extend by %d: %w", count, domain.ErrInvalidAmount)
	}

	var total int64
	for i := 0; i < count; i++ {
		total += s.extensionCost(st.CargoExtensions + i)
	}
	if total > st.Cash {
		return "", fmt.Errorf("cargo_service: %d slot(s) cost $%d with $%d cash: %w",
			count, total, st.Cash, domain.ErrInsufficientFunds)
	}
	st.Cash -= total
	st.MaxCargo += count
	st.CargoExtensions += count

	s.logger.Info("cargo_service: capacity extended",
		slog.Int("slots", count),
		slog.Int("max_cargo", st.MaxCargo),
		slog.Int64("cost", total),
	)
	return fmt.Sprintf("Extended cargo by %d slot(s) for $%d (capacity %d)", count, total, st.MaxCargo), nil
}
