package domain

import "github.com/shopspring/decimal"

// AssetClass classifies an investable asset for haircut and event purposes.
type AssetClass string

const (
	AssetClassStock     AssetClass = "stock"
	AssetClassCommodity AssetClass = "commodity"
	AssetClassCrypto    AssetClass = "crypto"
)

// Asset is a catalog entry for an investable instrument. Prices are decimal
// so low-value instruments keep sub-unit precision.
type Asset struct {
	Name      string
	Symbol    string
	BasePrice decimal.Decimal
	Variance  float64
	Class     AssetClass
}
