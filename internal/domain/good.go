// Package domain defines the core data types of the trading game: goods,
// assets, cities, lots, loans, the bank account, and the game state itself.
// Types here carry no behaviour beyond simple accessors; all game rules live
// in the service layer.
package domain

// GoodKind classifies a tradeable good.
type GoodKind string

const (
	GoodKindStandard   GoodKind = "standard"
	GoodKindLuxury     GoodKind = "luxury"
	GoodKindContraband GoodKind = "contraband"
)

// Good is a catalog entry for a tradeable good. BasePrice is in whole
// currency units; Variance is the symmetric daily price spread (0..1);
// Size is the cargo space one unit occupies.
type Good struct {
	Name      string
	BasePrice int64
	Variance  float64
	Kind      GoodKind
	Category  string
	Size      int
}
