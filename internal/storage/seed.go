package storage

import (
	"context"

	"github.com/anandkv/ecopoints/internal/model"
)

// SeedMemStorage loads the same reference data EnsureSeedData puts into
// Postgres: the five waste categories, a sample account and a sample shop.
func SeedMemStorage(ctx context.Context, s *MemStorage) {
	categories := []model.WasteCategory{
		{Name: "Plastic Bottles", PointsPerKg: 50, Description: "PET bottles, water bottles", Icon: "bottle", Color: "blue"},
		{Name: "Plastic Bags", PointsPerKg: 30, Description: "Shopping bags, garbage bags", Icon: "bag", Color: "green"},
		{Name: "E-Waste", PointsPerKg: 100, Description: "Electronics, batteries, phones", Icon: "electronics", Color: "purple"},
		{Name: "Paper/Cardboard", PointsPerKg: 25, Description: "Newspapers, boxes, magazines", Icon: "paper", Color: "orange"},
		{Name: "Metal Cans", PointsPerKg: 75, Description: "Aluminum cans, tin cans", Icon: "can", Color: "red"},
	}
	for _, category := range categories {
		_, _ = s.CreateWasteCategory(ctx, category)
	}

	_, _ = s.CreateAccount(ctx, model.Account{
		Username: "john_doe",
		Email:    "john@example.com",
		Phone:    "+91-9876543210",
		Location: "Rural Village, State",
	})

	_, _ = s.CreateShop(ctx, model.Shop{
		Name:              "Village General Store",
		Address:           "123 Main Street, Rural Village",
		Phone:             "+91-9876543211",
		Latitude:          23.5204,
		Longitude:         87.3119,
		IsActive:          true,
		PointsDistributed: 5000,
	})
}
