package domain

// Difficulty is a starting-condition preset for a new game.
type Difficulty struct {
	Name          string
	DisplayName   string
	StartCash     int64
	StartCapacity int
	Description   string
}
