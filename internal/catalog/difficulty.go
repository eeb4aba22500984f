package catalog

import "github.com/mercatorgames/tycoon/internal/domain"

// Difficulties are the starting presets, ordered easiest to hardest.
var Difficulties = []domain.Difficulty{
	{Name: "playground", DisplayName: "Playground", StartCash: 1_000_000, StartCapacity: 1000, Description: "Unlimited funds for experimentation"},
	{Name: "easy", DisplayName: "Easy", StartCash: 100_000, StartCapacity: 100, Description: "Generous starting resources"},
	{Name: "normal", DisplayName: "Normal", StartCash: 50_000, StartCapacity: 50, Description: "Balanced challenge"},
	{Name: "hard", DisplayName: "Hard", StartCash: 10_000, StartCapacity: 10, Description: "Limited resources, strategic planning required"},
	{Name: "insane", DisplayName: "Insane", StartCash: 0, StartCapacity: 1, Description: "Start with nothing, maximum challenge"},
}
