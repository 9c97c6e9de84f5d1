package models

// FoodItem is read-only reference data for protein quick-add
type FoodItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Protein  float64 `json:"protein"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

var FoodDatabase = []FoodItem{
	{ID: "egg", Name: "Egg", Protein: 6, Unit: "piece", Category: "Eggs"},
	{ID: "egg-white", Name: "Egg White", Protein: 3.6, Unit: "piece", Category: "Eggs"},

	{ID: "chicken-breast", Name: "Chicken Breast", Protein: 31, Unit: "100g", Category: "Meat"},
	{ID: "chicken-thigh", Name: "Chicken Thigh", Protein: 26, Unit: "100g", Category: "Meat"},
	{ID: "lean-beef", Name: "Lean Beef", Protein: 26, Unit: "100g", Category: "Meat"},
	{ID: "fish-salmon", Name: "Salmon", Protein: 25, Unit: "100g", Category: "Fish"},
	{ID: "fish-tuna", Name: "Tuna", Protein: 30, Unit: "100g", Category: "Fish"},

	{ID: "milk", Name: "Milk", Protein: 3.4, Unit: "100ml", Category: "Dairy"},
	{ID: "greek-yogurt", Name: "Greek Yogurt", Protein: 10, Unit: "100g", Category: "Dairy"},
	{ID: "cottage-cheese", Name: "Cottage Cheese", Protein: 11, Unit: "100g", Category: "Dairy"},
	{ID: "paneer", Name: "Paneer", Protein: 18, Unit: "100g", Category: "Dairy"},

	{ID: "soya-chunks", Name: "Soya Chunks", Protein: 52, Unit: "100g", Category: "Legumes"},
	{ID: "chickpeas", Name: "Chickpeas", Protein: 19, Unit: "100g", Category: "Legumes"},
	{ID: "lentils", Name: "Lentils", Protein: 9, Unit: "100g", Category: "Legumes"},
	{ID: "kidney-beans", Name: "Kidney Beans", Protein: 24, Unit: "100g", Category: "Legumes"},
	{ID: "black-beans", Name: "Black Beans", Protein: 21, Unit: "100g", Category: "Legumes"},

	{ID: "almonds", Name: "Almonds", Protein: 21, Unit: "100g", Category: "Nuts"},
	{ID: "peanuts", Name: "Peanuts", Protein: 26, Unit: "100g", Category: "Nuts"},
	{ID: "chia-seeds", Name: "Chia Seeds", Protein: 17, Unit: "100g", Category: "Seeds"},

	{ID: "whey-protein", Name: "Whey Protein Powder", Protein: 25, Unit: "30g scoop", Category: "Supplements"},
	{ID: "casein-protein", Name: "Casein Protein", Protein: 24, Unit: "30g scoop", Category: "Supplements"},
}

// FindFood looks up a food by id
func FindFood(id string) (FoodItem, bool) {
	for _, f := range FoodDatabase {
		if f.ID == id {
			return f, true
		}
	}
	return FoodItem{}, false
}
