package catalog

import "github.com/mercatorgames/tycoon/internal/domain"

// Goods is the full tradeable catalog: 31 products across electronics,
// jewelry, cars, drugs, and weapons.
var Goods = []domain.Good{
	{Name: "TV", BasePrice: 800, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 3},
	{Name: "Computer", BasePrice: 1200, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 4},
	{Name: "Printer", BasePrice: 300, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 3},
	{Name: "Phone", BasePrice: 600, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 2},
	{Name: "Camera", BasePrice: 400, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 3},
	{Name: "Laptop", BasePrice: 1500, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 5},
	{Name: "Tablet", BasePrice: 500, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 2},
	{Name: "Console", BasePrice: 450, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 3},
	{Name: "Headphones", BasePrice: 150, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 1},
	{Name: "Smartwatch", BasePrice: 400, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 1},
	{Name: "VR Headset", BasePrice: 700, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 3},
	{Name: "Coffee Machine", BasePrice: 450, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 3},
	{Name: "Powerbank", BasePrice: 40, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 1},
	{Name: "USB Charger", BasePrice: 25, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 1},
	{Name: "Pendrive", BasePrice: 15, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "electronics", Size: 1},
	{Name: "Luxury Watch", BasePrice: 6000, Variance: 0.6, Kind: domain.GoodKindLuxury, Category: "jewelry", Size: 1},
	{Name: "Diamond Necklace", BasePrice: 8000, Variance: 0.7, Kind: domain.GoodKindLuxury, Category: "jewelry", Size: 1},
	{Name: "Gaming Laptop", BasePrice: 3000, Variance: 0.5, Kind: domain.GoodKindLuxury, Category: "electronics", Size: 5},
	{Name: "High-end Drone", BasePrice: 2500, Variance: 0.5, Kind: domain.GoodKindLuxury, Category: "electronics", Size: 4},
	{Name: "4K OLED TV", BasePrice: 2500, Variance: 0.4, Kind: domain.GoodKindLuxury, Category: "electronics", Size: 3},
	{Name: "Fiat", BasePrice: 20000, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "cars", Size: 15},
	{Name: "Opel Astra", BasePrice: 40000, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "cars", Size: 18},
	{Name: "Ford Focus", BasePrice: 50000, Variance: 0.3, Kind: domain.GoodKindStandard, Category: "cars", Size: 18},
	{Name: "Ferrari", BasePrice: 100000, Variance: 0.5, Kind: domain.GoodKindLuxury, Category: "cars", Size: 25},
	{Name: "Bentley", BasePrice: 200000, Variance: 0.5, Kind: domain.GoodKindLuxury, Category: "cars", Size: 28},
	{Name: "Bugatti", BasePrice: 300000, Variance: 0.6, Kind: domain.GoodKindLuxury, Category: "cars", Size: 30},
	{Name: "Weed", BasePrice: 500, Variance: 0.8, Kind: domain.GoodKindContraband, Category: "drugs", Size: 10},
	{Name: "Cocaine", BasePrice: 2000, Variance: 1.0, Kind: domain.GoodKindContraband, Category: "drugs", Size: 15},
	{Name: "Grenade", BasePrice: 100, Variance: 0.9, Kind: domain.GoodKindContraband, Category: "weapons", Size: 12},
	{Name: "Pistol", BasePrice: 500, Variance: 0.8, Kind: domain.GoodKindContraband, Category: "weapons", Size: 10},
	{Name: "Shotgun", BasePrice: 1000, Variance: 0.9, Kind: domain.GoodKindContraband, Category: "weapons", Size: 15},
}
