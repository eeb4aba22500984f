package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mercatorgames/tycoon/internal/domain"
)

func d(units int64) decimal.Decimal { return decimal.NewFromInt(units) }

// Assets is the investable catalog: 12 stocks, 4 commodities, 4 cryptos.
var Assets = []domain.Asset{
	{Name: "Google", Symbol: "GOOGL", BasePrice: d(150), Variance: 0.6, Class: domain.AssetClassStock},
	{Name: "Meta", Symbol: "META", BasePrice: d(80), Variance: 0.5, Class: domain.AssetClassStock},
	{Name: "Apple", Symbol: "AAPL", BasePrice: d(120), Variance: 0.7, Class: domain.AssetClassStock},
	{Name: "Microsoft", Symbol: "MSFT", BasePrice: d(200), Variance: 0.4, Class: domain.AssetClassStock},
	{Name: "Amazon", Symbol: "AMZN", BasePrice: d(180), Variance: 0.6, Class: domain.AssetClassStock},
	{Name: "Netflix", Symbol: "NFLX", BasePrice: d(90), Variance: 0.8, Class: domain.AssetClassStock},
	{Name: "NVIDIA", Symbol: "NVDA", BasePrice: d(250), Variance: 0.9, Class: domain.AssetClassStock},
	{Name: "Tesla", Symbol: "TSLA", BasePrice: d(160), Variance: 0.8, Class: domain.AssetClassStock},
	{Name: "AMD", Symbol: "AMD", BasePrice: d(110), Variance: 0.7, Class: domain.AssetClassStock},
	{Name: "Oracle", Symbol: "ORCL", BasePrice: d(95), Variance: 0.5, Class: domain.AssetClassStock},
	{Name: "Adobe", Symbol: "ADBE", BasePrice: d(140), Variance: 0.6, Class: domain.AssetClassStock},
	{Name: "Intel", Symbol: "INTC", BasePrice: d(85), Variance: 0.6, Class: domain.AssetClassStock},
	{Name: "Gold", Symbol: "GOLD", BasePrice: d(1800), Variance: 0.3, Class: domain.AssetClassCommodity},
	{Name: "Oil", Symbol: "OIL", BasePrice: d(75), Variance: 0.8, Class: domain.AssetClassCommodity},
	{Name: "Silver", Symbol: "SILV", BasePrice: d(25), Variance: 0.4, Class: domain.AssetClassCommodity},
	{Name: "Copper", Symbol: "COPP", BasePrice: d(8), Variance: 0.5, Class: domain.AssetClassCommodity},
	{Name: "Bitcoin", Symbol: "BTC", BasePrice: d(35000), Variance: 0.7, Class: domain.AssetClassCrypto},
	{Name: "Ethereum", Symbol: "ETH", BasePrice: d(2000), Variance: 0.8, Class: domain.AssetClassCrypto},
	{Name: "Solana", Symbol: "SOL", BasePrice: d(80), Variance: 0.9, Class: domain.AssetClassCrypto},
	{Name: "Dogecoin", Symbol: "DOGE", BasePrice: d(5), Variance: 1.0, Class: domain.AssetClassCrypto},
}
