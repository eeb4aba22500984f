package catalog

import "github.com/mercatorgames/tycoon/internal/domain"

// Cities is the trading map: 11 European cities. Each carries a per-good
// price multiplier table and its travel-event profile. Safer cities trade
// fewer arbitrage opportunities for fewer loss events.
var Cities = []domain.City{
	{
		Name: "Warsaw", Country: "Poland",
		Multipliers: map[string]float64{
			"TV": 1.0, "Computer": 1.0, "Printer": 1.0, "Phone": 1.0,
			"Camera": 1.0, "Laptop": 1.0, "Tablet": 1.0, "Console": 1.0,
			"Headphones": 1.0, "Smartwatch": 1.0, "VR Headset": 1.0, "Coffee Machine": 1.0,
			"Powerbank": 1.0, "USB Charger": 1.0, "Pendrive": 1.0,
			"Luxury Watch": 1.0, "Diamond Necklace": 1.0, "Gaming Laptop": 1.0, "High-end Drone": 1.0, "4K OLED TV": 1.0,
			"Fiat": 1.0, "Opel Astra": 1.0, "Ford Focus": 1.0, "Ferrari": 1.0, "Bentley": 1.0, "Bugatti": 1.0,
			"Weed": 0.9, "Cocaine": 0.95, "Grenade": 0.9, "Pistol": 0.9, "Shotgun": 0.95,
		},
		Events: domain.EventConfig{Probability: 0.30, LossMin: 0, LossMax: 1, GainMin: 0, GainMax: 2, NeutralMin: 1, NeutralMax: 1},
	},
	{
		Name: "Berlin", Country: "Germany",
		Multipliers: map[string]float64{
			"TV": 0.8, "Computer": 1.2, "Printer": 0.9, "Phone": 1.1,
			"Camera": 0.85, "Laptop": 1.15, "Tablet": 0.95, "Console": 1.05,
			"Headphones": 0.85, "Smartwatch": 1.1, "VR Headset": 0.9, "Coffee Machine": 1.05,
			"Powerbank": 0.85, "USB Charger": 0.85, "Pendrive": 0.85,
			"Luxury Watch": 1.1, "Diamond Necklace": 1.15, "Gaming Laptop": 0.9, "High-end Drone": 0.95, "4K OLED TV": 0.9,
			"Fiat": 0.95, "Opel Astra": 0.85, "Ford Focus": 0.9, "Ferrari": 1.15, "Bentley": 1.1, "Bugatti": 1.15,
			"Weed": 0.85, "Cocaine": 1.0, "Grenade": 0.9, "Pistol": 0.95, "Shotgun": 1.0,
		},
		Events: domain.EventConfig{Probability: 0.30, LossMin: 0, LossMax: 1, GainMin: 0, GainMax: 2, NeutralMin: 0, NeutralMax: 2},
	},
	{
		Name: "Prague", Country: "Czech Republic",
		Multipliers: map[string]float64{
			"TV": 1.1, "Computer": 0.9, "Printer": 1.2, "Phone": 0.95,
			"Camera": 1.1, "Laptop": 0.85, "Tablet": 1.05, "Console": 0.9,
			"Headphones": 1.15, "Smartwatch": 0.95, "VR Headset": 1.2, "Coffee Machine": 0.9,
			"Powerbank": 1.15, "USB Charger": 1.15, "Pendrive": 1.15,
			"Luxury Watch": 0.9, "Diamond Necklace": 0.9, "Gaming Laptop": 0.95, "High-end Drone": 0.95, "4K OLED TV": 1.0,
			"Fiat": 0.9, "Opel Astra": 0.95, "Ford Focus": 0.95, "Ferrari": 0.85, "Bentley": 0.85, "Bugatti": 0.9,
			"Weed": 0.6, "Cocaine": 0.7, "Grenade": 0.65, "Pistol": 0.7, "Shotgun": 0.75,
		},
		Events: domain.EventConfig{Probability: 0.30, LossMin: 0, LossMax: 2, GainMin: 0, GainMax: 2, NeutralMin: 0, NeutralMax: 1},
	},
	{
		Name: "Vienna", Country: "Austria",
		Multipliers: map[string]float64{
			"TV": 0.95, "Computer": 1.1, "Printer": 0.85, "Phone": 1.2,
			"Camera": 1.0, "Laptop": 1.05, "Tablet": 1.1, "Console": 0.95,
			"Headphones": 0.9, "Smartwatch": 1.15, "VR Headset": 1.05, "Coffee Machine": 0.8,
			"Powerbank": 0.9, "USB Charger": 0.9, "Pendrive": 0.9,
			"Luxury Watch": 1.1, "Diamond Necklace": 1.15, "Gaming Laptop": 1.05, "High-end Drone": 1.0, "4K OLED TV": 1.1,
			"Fiat": 1.0, "Opel Astra": 0.95, "Ford Focus": 1.0, "Ferrari": 1.1, "Bentley": 1.1, "Bugatti": 1.15,
			"Weed": 1.1, "Cocaine": 1.15, "Grenade": 1.05, "Pistol": 1.1, "Shotgun": 1.15,
		},
		Events: domain.EventConfig{Probability: 0.18, LossMin: 0, LossMax: 1, GainMin: 1, GainMax: 3, NeutralMin: 0, NeutralMax: 2},
	},
	{
		Name: "Budapest", Country: "Hungary",
		Multipliers: map[string]float64{
			"TV": 1.2, "Computer": 0.85, "Printer": 1.1, "Phone": 0.9,
			"Camera": 1.15, "Laptop": 0.9, "Tablet": 0.85, "Console": 1.1,
			"Headphones": 1.2, "Smartwatch": 0.85, "VR Headset": 1.1, "Coffee Machine": 1.15,
			"Powerbank": 1.2, "USB Charger": 1.2, "Pendrive": 1.2,
			"Luxury Watch": 0.85, "Diamond Necklace": 0.85, "Gaming Laptop": 0.9, "High-end Drone": 0.9, "4K OLED TV": 0.9,
			"Fiat": 0.85, "Opel Astra": 0.9, "Ford Focus": 0.9, "Ferrari": 0.8, "Bentley": 0.8, "Bugatti": 0.85,
			"Weed": 0.65, "Cocaine": 0.75, "Grenade": 0.7, "Pistol": 0.75, "Shotgun": 0.8,
		},
		Events: domain.EventConfig{Probability: 0.28, LossMin: 0, LossMax: 2, GainMin: 0, GainMax: 2, NeutralMin: 0, NeutralMax: 1},
	},
	{
		Name: "Paris", Country: "France",
		Multipliers: map[string]float64{
			"TV": 0.9, "Computer": 1.15, "Printer": 0.95, "Phone": 1.05,
			"Camera": 1.2, "Laptop": 1.1, "Tablet": 1.0, "Console": 0.85,
			"Headphones": 0.95, "Smartwatch": 1.2, "VR Headset": 0.85, "Coffee Machine": 0.75,
			"Powerbank": 1.05, "USB Charger": 1.05, "Pendrive": 1.05,
			"Luxury Watch": 1.3, "Diamond Necklace": 1.35, "Gaming Laptop": 1.1, "High-end Drone": 1.05, "4K OLED TV": 1.2,
			"Fiat": 1.05, "Opel Astra": 1.0, "Ford Focus": 1.05, "Ferrari": 1.2, "Bentley": 1.15, "Bugatti": 0.9,
			"Weed": 1.15, "Cocaine": 1.25, "Grenade": 1.2, "Pistol": 1.2, "Shotgun": 1.25,
		},
		Events: domain.EventConfig{Probability: 0.20, LossMin: 0, LossMax: 1, GainMin: 1, GainMax: 2, NeutralMin: 1, NeutralMax: 2},
	},
	{
		Name: "London", Country: "United Kingdom",
		Multipliers: map[string]float64{
			"TV": 0.85, "Computer": 1.25, "Printer": 1.0, "Phone": 1.15,
			"Camera": 0.9, "Laptop": 1.2, "Tablet": 1.05, "Console": 0.95,
			"Headphones": 1.0, "Smartwatch": 1.1, "VR Headset": 1.15, "Coffee Machine": 1.1,
			"Powerbank": 1.05, "USB Charger": 1.05, "Pendrive": 1.05,
			"Luxury Watch": 1.25, "Diamond Necklace": 1.3, "Gaming Laptop": 1.15, "High-end Drone": 1.1, "4K OLED TV": 1.2,
			"Fiat": 1.1, "Opel Astra": 1.05, "Ford Focus": 0.95, "Ferrari": 1.25, "Bentley": 0.85, "Bugatti": 1.2,
			"Weed": 1.35, "Cocaine": 1.45, "Grenade": 1.4, "Pistol": 1.4, "Shotgun": 1.45,
		},
		Events: domain.EventConfig{Probability: 0.20, LossMin: 0, LossMax: 1, GainMin: 1, GainMax: 2, NeutralMin: 1, NeutralMax: 2},
	},
	{
		Name: "Rome", Country: "Italy",
		Multipliers: map[string]float64{
			"TV": 1.05, "Computer": 0.95, "Printer": 1.15, "Phone": 0.9,
			"Camera": 1.15, "Laptop": 0.9, "Tablet": 0.95, "Console": 1.0,
			"Headphones": 1.1, "Smartwatch": 0.9, "VR Headset": 1.0, "Coffee Machine": 0.7,
			"Powerbank": 1.1, "USB Charger": 1.1, "Pendrive": 1.1,
			"Luxury Watch": 1.1, "Diamond Necklace": 1.1, "Gaming Laptop": 0.95, "High-end Drone": 1.0, "4K OLED TV": 1.0,
			"Fiat": 0.8, "Opel Astra": 1.0, "Ford Focus": 1.05, "Ferrari": 0.85, "Bentley": 1.15, "Bugatti": 1.1,
			"Weed": 1.0, "Cocaine": 1.2, "Grenade": 1.1, "Pistol": 1.15, "Shotgun": 1.2,
		},
		Events: domain.EventConfig{Probability: 0.25, LossMin: 0, LossMax: 2, GainMin: 0, GainMax: 2, NeutralMin: 0, NeutralMax: 1},
	},
	{
		Name: "Amsterdam", Country: "Netherlands",
		Multipliers: map[string]float64{
			"TV": 0.95, "Computer": 1.1, "Printer": 0.9, "Phone": 1.05,
			"Camera": 0.95, "Laptop": 1.15, "Tablet": 1.1, "Console": 1.05,
			"Headphones": 0.85, "Smartwatch": 1.05, "VR Headset": 1.1, "Coffee Machine": 0.85,
			"Powerbank": 0.9, "USB Charger": 0.9, "Pendrive": 0.9,
			"Luxury Watch": 0.95, "Diamond Necklace": 1.0, "Gaming Laptop": 1.1, "High-end Drone": 1.0, "4K OLED TV": 1.05,
			"Fiat": 0.95, "Opel Astra": 0.95, "Ford Focus": 1.0, "Ferrari": 1.05, "Bentley": 1.0, "Bugatti": 1.05,
			"Weed": 0.5, "Cocaine": 0.65, "Grenade": 0.8, "Pistol": 0.85, "Shotgun": 0.9,
		},
		Events: domain.EventConfig{Probability: 0.32, LossMin: 1, LossMax: 3, GainMin: 1, GainMax: 3, NeutralMin: 1, NeutralMax: 2},
	},
	{
		Name: "Barcelona", Country: "Spain",
		Multipliers: map[string]float64{
			"TV": 1.15, "Computer": 0.85, "Printer": 1.05, "Phone": 0.95,
			"Camera": 1.05, "Laptop": 0.95, "Tablet": 0.9, "Console": 1.15,
			"Headphones": 1.05, "Smartwatch": 0.95, "VR Headset": 0.9, "Coffee Machine": 0.9,
			"Powerbank": 1.05, "USB Charger": 1.05, "Pendrive": 1.05,
			"Luxury Watch": 1.05, "Diamond Necklace": 1.1, "Gaming Laptop": 0.95, "High-end Drone": 0.95, "4K OLED TV": 0.9,
			"Fiat": 0.9, "Opel Astra": 0.95, "Ford Focus": 1.0, "Ferrari": 0.95, "Bentley": 1.05, "Bugatti": 1.0,
			"Weed": 0.95, "Cocaine": 1.1, "Grenade": 1.05, "Pistol": 1.05, "Shotgun": 1.1,
		},
		Events: domain.EventConfig{Probability: 0.22, LossMin: 0, LossMax: 2, GainMin: 1, GainMax: 2, NeutralMin: 0, NeutralMax: 1},
	},
	{
		Name: "Stockholm", Country: "Sweden",
		Multipliers: map[string]float64{
			"TV": 0.75, "Computer": 1.3, "Printer": 0.85, "Phone": 1.2,
			"Camera": 0.8, "Laptop": 1.25, "Tablet": 1.15, "Console": 0.9,
			"Headphones": 0.8, "Smartwatch": 1.25, "VR Headset": 1.05, "Coffee Machine": 1.05,
			"Powerbank": 0.8, "USB Charger": 0.8, "Pendrive": 0.8,
			"Luxury Watch": 1.25, "Diamond Necklace": 1.3, "Gaming Laptop": 1.2, "High-end Drone": 1.15, "4K OLED TV": 1.2,
			"Fiat": 1.05, "Opel Astra": 1.1, "Ford Focus": 1.1, "Ferrari": 1.3, "Bentley": 1.2, "Bugatti": 1.25,
			"Weed": 1.5, "Cocaine": 1.65, "Grenade": 1.6, "Pistol": 1.6, "Shotgun": 1.65,
		},
		Events: domain.EventConfig{Probability: 0.15, LossMin: 0, LossMax: 1, GainMin: 1, GainMax: 3, NeutralMin: 1, NeutralMax: 2},
	},
}
