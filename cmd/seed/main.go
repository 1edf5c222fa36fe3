// Seeds the catalog with the business's standard menu items and preset
// packages. Safe to run once against a fresh database.
package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/config"
	"github.com/jms-catering/api/internal/enum"
	"github.com/jms-catering/api/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()
	ctx := context.Background()

	pool, err := repository.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	store := repository.NewCatalogStore(pool)

	for _, item := range menuItems() {
		if _, err := store.CreateMenuItem(ctx, item); err != nil {
			log.Fatalf("seed menu item %q: %v", item.Name, err)
		}
	}
	for _, p := range presetMenus() {
		if _, err := store.CreatePresetMenu(ctx, p); err != nil {
			log.Fatalf("seed preset %q: %v", p.Name, err)
		}
	}

	log.Println("catalog seeded")
}

func menuItems() []catalog.MenuItem {
	price := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	return []catalog.MenuItem{
		{ID: uuid.New(), Name: "Idly (2 pcs)", Description: "Steamed rice cakes served with sambar and chutney", Price: price(40), Dietary: enum.DietaryVeg, FoodCategory: enum.FoodCategoryTiffen},
		{ID: uuid.New(), Name: "Masala Dosa", Description: "Crispy fermented crepe stuffed with potato masala", Price: price(80), Dietary: enum.DietaryVeg, FoodCategory: enum.FoodCategoryTiffen},
		{ID: uuid.New(), Name: "Chicken Biryani", Description: "Aromatic basmati rice cooked with spices and chicken", Price: price(220), Dietary: enum.DietaryNonVeg, FoodCategory: enum.FoodCategoryRiceMain},
		{ID: uuid.New(), Name: "Mutton Chukka", Description: "Spicy dry mutton curry", Price: price(280), Dietary: enum.DietaryNonVeg, FoodCategory: enum.FoodCategorySideDishes},
		{ID: uuid.New(), Name: "Veg Meals", Description: "Rice, Sambar, Rasam, Kootu, Poriyal, Curd, Sweet", Price: price(150), Dietary: enum.DietaryVeg, FoodCategory: enum.FoodCategoryRiceMain},
		{ID: uuid.New(), Name: "Fish Fry", Description: "Seer fish marinated in spices and fried", Price: price(250), Dietary: enum.DietaryNonVeg, FoodCategory: enum.FoodCategorySideDishes},
		{ID: uuid.New(), Name: "Pongal", Description: "Rice and lentil dish seasoned with cumin and pepper", Price: price(60), Dietary: enum.DietaryVeg, FoodCategory: enum.FoodCategoryTiffen},
		{ID: uuid.New(), Name: "Vada", Description: "Deep fried lentil donut", Price: price(25), Dietary: enum.DietaryVeg, FoodCategory: enum.FoodCategorySnacks},
	}
}

func presetMenus() []catalog.PresetMenu {
	return []catalog.PresetMenu{
		{
			ID:           uuid.New(),
			Name:         "Traditional Wedding Feast",
			Description:  "A complete traditional banana leaf meal experience.",
			PricePerHead: decimal.NewFromInt(350),
			MealCategory: enum.MealTypeLunch,
			FixedItems:   []string{"White Rice", "Sambar", "Rasam", "Vatha Kuzhambu", "Kootu", "Poriyal", "Appalam", "Pickle", "Curd"},
			OptionGroups: []catalog.OptionGroup{
				{Label: "Sweet", Choices: []string{"Pal Payasam", "Paruppu Payasam", "Semiya Payasam"}},
				{Label: "Variety Rice", Choices: []string{"Lemon Rice", "Tamarind Rice", "Vegetable Biryani"}},
			},
		},
		{
			ID:           uuid.New(),
			Name:         "Standard Dinner Buffet",
			Description:  "Perfect for receptions and evening parties.",
			PricePerHead: decimal.NewFromInt(250),
			MealCategory: enum.MealTypeDinner,
			FixedItems:   []string{"Chapati", "Veg Kurma", "Idly", "Sambar", "Chutney"},
			OptionGroups: []catalog.OptionGroup{
				{Label: "Main Course", Choices: []string{"Veg Pulao", "Jeera Rice", "Ghee Rice"}},
				{Label: "Starter", Choices: []string{"Gobi 65", "Veg Cutlet", "Baby Corn Manchurian"}},
			},
		},
		{
			ID:           uuid.New(),
			Name:         "South Indian Breakfast",
			Description:  "Start the day with authentic flavors.",
			PricePerHead: decimal.NewFromInt(150),
			MealCategory: enum.MealTypeBreakfast,
			FixedItems:   []string{"Idly", "Vada", "Sambar", "Coconut Chutney", "Tomato Chutney", "Coffee"},
			OptionGroups: []catalog.OptionGroup{
				{Label: "Special", Choices: []string{"Pongal", "Rava Kichadi"}},
				{Label: "Sweet", Choices: []string{"Kesari", "Sweet Pongal"}},
			},
		},
	}
}
