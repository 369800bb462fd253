package domain

import "strings"

// DefaultFoodCategory is assigned when the operator leaves the
// category blank.
const DefaultFoodCategory = "Diğer"

// Food is a catalog entry. Macro fields default to zero rather than
// null; serving size, category and barcode are genuinely optional.
type Food struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize *string `json:"serving_size"`
	Category    *string `json:"category"`
	Barcode     *string `json:"barcode"`
}

// FoodDraft is the create payload for POST /admin/foods. Numeric
// fields are coerced leniently before the draft is built, so a blank
// calories input arrives here as 0, not as a parse failure.
type FoodDraft struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize *string `json:"serving_size"`
	Category    string  `json:"category"`
	Barcode     *string `json:"barcode"`
}

// NewFoodDraft builds a draft from raw operator input, applying the
// lenient numeric coercion and the category default.
func NewFoodDraft(name, calories, protein, carbs, fat, serving, category, barcode string) FoodDraft {
	draft := FoodDraft{
		Name:        strings.TrimSpace(name),
		Calories:    ParseAmount(calories),
		Protein:     ParseAmount(protein),
		Carbs:       ParseAmount(carbs),
		Fat:         ParseAmount(fat),
		ServingSize: OptionalString(serving),
		Category:    strings.TrimSpace(category),
		Barcode:     OptionalString(barcode),
	}
	if draft.Category == "" {
		draft.Category = DefaultFoodCategory
	}
	return draft
}

func (d FoodDraft) Validate() error {
	if d.Name == "" {
		return NewValidationError("food name is required")
	}
	return nil
}

// FoodPage is one page of the foods listing.
type FoodPage struct {
	Foods []Food `json:"foods"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
