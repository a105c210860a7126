package store

import (
	"context"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// IngredientsAPI fetches the ingredient catalog.
type IngredientsAPI interface {
	GetIngredients(ctx context.Context) ([]model.Ingredient, error)
}

// IngredientsState is the catalog snapshot with its derived category views.
type IngredientsState struct {
	Items     []model.Ingredient  `json:"items"`
	Buns      []model.Ingredient  `json:"buns"`
	Mains     []model.Ingredient  `json:"mains"`
	Sauces    []model.Ingredient  `json:"sauces"`
	IsLoading bool                `json:"isLoading"`
	Error     *model.RequestError `json:"error"`
}

// InitialIngredientsState returns the empty catalog.
func InitialIngredientsState() IngredientsState {
	return IngredientsState{
		Items:  []model.Ingredient{},
		Buns:   []model.Ingredient{},
		Mains:  []model.Ingredient{},
		Sauces: []model.Ingredient{},
	}
}

// IngredientsFetched is the lifecycle event of a catalog fetch.
type IngredientsFetched struct {
	Result Result[[]model.Ingredient]
}

// ReduceIngredients applies a catalog fetch lifecycle event.
func ReduceIngredients(s IngredientsState, e IngredientsFetched) IngredientsState {
	switch e.Result.Phase {
	case PhasePending:
		s.IsLoading = true
	case PhaseSucceeded:
		items := knownCategories(e.Result.Payload)
		s.Items = items
		s.Buns = filterCategory(items, model.CategoryBun)
		s.Mains = filterCategory(items, model.CategoryMain)
		s.Sauces = filterCategory(items, model.CategorySauce)
		s.IsLoading = false
		s.Error = nil
	case PhaseFailed:
		// An outdated catalog is worse than none.
		empty := InitialIngredientsState()
		s.Items, s.Buns, s.Mains, s.Sauces = empty.Items, empty.Buns, empty.Mains, empty.Sauces
		s.IsLoading = false
		s.Error = e.Result.Err
	}
	return s
}

// knownCategories drops items whose category is outside the catalog enum so
// that every item lands in exactly one view.
func knownCategories(items []model.Ingredient) []model.Ingredient {
	out := make([]model.Ingredient, 0, len(items))
	for _, it := range items {
		if it.Type.Valid() {
			out = append(out, it)
		}
	}
	return out
}

func filterCategory(items []model.Ingredient, category model.Category) []model.Ingredient {
	out := make([]model.Ingredient, 0, len(items))
	for _, it := range items {
		if it.Type == category {
			out = append(out, it)
		}
	}
	return out
}

// Lookup finds an ingredient by catalog id.
func (s IngredientsState) Lookup(id string) (model.Ingredient, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Ingredient{}, false
}

// ByCategory returns the derived view for category. Unknown categories yield
// the full list.
func (s IngredientsState) ByCategory(category model.Category) []model.Ingredient {
	switch category {
	case model.CategoryBun:
		return s.Buns
	case model.CategoryMain:
		return s.Mains
	case model.CategorySauce:
		return s.Sauces
	default:
		return s.Items
	}
}

// Ingredients is the catalog container.
type Ingredients struct {
	*container[IngredientsState, IngredientsFetched]
	api IngredientsAPI
}

// NewIngredients creates a catalog container backed by api.
func NewIngredients(api IngredientsAPI) *Ingredients {
	return &Ingredients{
		container: newContainer("ingredients", InitialIngredientsState(), ReduceIngredients),
		api:       api,
	}
}

// Fetch loads the full catalog. A failed fetch is not retried.
func (i *Ingredients) Fetch(ctx context.Context) *Task {
	return runAsync(ctx, i.container, "fetch",
		func(r Result[[]model.Ingredient]) IngredientsFetched { return IngredientsFetched{Result: r} },
		i.api.GetIngredients,
	)
}
