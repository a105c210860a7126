// Package model defines the domain entities shared by the state containers,
// the upstream API client and the HTTP layer.
package model

import "github.com/google/uuid"

// Category is the catalog category of an ingredient.
type Category string

const (
	// CategoryBun is the single-slot category; a burger holds at most one bun.
	CategoryBun Category = "bun"
	// CategoryMain is a filling.
	CategoryMain Category = "main"
	// CategorySauce is a sauce.
	CategorySauce Category = "sauce"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBun, CategoryMain, CategorySauce:
		return true
	}
	return false
}

// Ingredient is a catalog entry. It is immutable once fetched.
type Ingredient struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Type          Category `json:"type"`
	Proteins      float64  `json:"proteins"`
	Fat           float64  `json:"fat"`
	Carbohydrates float64  `json:"carbohydrates"`
	Calories      float64  `json:"calories"`
	Price         float64  `json:"price"`
	Image         string   `json:"image"`
	ImageMobile   string   `json:"image_mobile"`
	ImageLarge    string   `json:"image_large"`
}

// IsBun reports whether the ingredient belongs to the bun category.
func (i Ingredient) IsBun() bool {
	return i.Type == CategoryBun
}

// ConstructorIngredient is an ingredient placed into the builder. InstanceID
// distinguishes repeated entries of the same catalog id.
type ConstructorIngredient struct {
	Ingredient
	InstanceID string `json:"id"`
}

// NewConstructorIngredient wraps ing with a freshly generated instance id.
func NewConstructorIngredient(ing Ingredient) ConstructorIngredient {
	return ConstructorIngredient{
		Ingredient: ing,
		InstanceID: uuid.NewString(),
	}
}
