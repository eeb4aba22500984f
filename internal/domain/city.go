package domain

// EventConfig controls travel-event rolls for one city: the probability that
// any events fire at all on arrival, and the per-category count ranges.
type EventConfig struct {
	Probability float64
	LossMin     int
	LossMax     int
	GainMin     int
	GainMax     int
	NeutralMin  int
	NeutralMax  int
}

// City is a catalog entry for a market city. Multipliers maps good name to a
// local price multiplier; goods absent from the map trade at 1.0.
type City struct {
	Name        string
	Country     string
	Multipliers map[string]float64
	Events      EventConfig
}

// Multiplier returns the city's price multiplier for the named good.
func (c City) Multiplier(good string) float64 {
	if m, ok := c.Multipliers[good]; ok {
		return m
	}
	return 1.0
}
