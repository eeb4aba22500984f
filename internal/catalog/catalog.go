// Package catalog holds the immutable game world: goods, assets, cities, and
// difficulty presets. Tables are plain slices; lookup maps are built once at
// init and must never be mutated afterwards.
package catalog

import "github.com/mercatorgames/tycoon/internal/domain"

var (
	goodsByName      map[string]domain.Good
	assetsBySymbol   map[string]domain.Asset
	difficultyByName map[string]domain.Difficulty
)

func init() {
	goodsByName = make(map[string]domain.Good, len(Goods))
	for _, g := range Goods {
		goodsByName[g.Name] = g
	}
	assetsBySymbol = make(map[string]domain.Asset, len(Assets))
	for _, a := range Assets {
		assetsBySymbol[a.Symbol] = a
	}
	difficultyByName = make(map[string]domain.Difficulty, len(Difficulties))
	for _, d := range Difficulties {
		difficultyByName[d.Name] = d
	}
}

// GoodByName returns the catalog entry for a good.
func GoodByName(name string) (domain.Good, bool) {
	g, ok := goodsByName[name]
	return g, ok
}

// AssetBySymbol returns the catalog entry for an asset.
func AssetBySymbol(symbol string) (domain.Asset, bool) {
	a, ok := assetsBySymbol[symbol]
	return a, ok
}

// DifficultyByName returns a difficulty preset by its short name.
func DifficultyByName(name string) (domain.Difficulty, bool) {
	d, ok := difficultyByName[name]
	return d, ok
}

// CityAt returns the city at the given index.
func CityAt(index int) (domain.City, bool) {
	if index < 0 || index >= len(Cities) {
		return domain.City{}, false
	}
	return Cities[index], true
}

// GoodsByKind returns all goods of the given kind, in catalog order.
func GoodsByKind(kind domain.GoodKind) []domain.Good {
	var out []domain.Good
	for _, g := range Goods {
		if g.Kind == kind {
			out = append(out, g)
		}
	}
	return out
}

// AssetsByClass returns all assets of the given class, in catalog order.
func AssetsByClass(class domain.AssetClass) []domain.Asset {
	var out []domain.Asset
	for _, a := range Assets {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}
