package store

import (
	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// Direction is the direction of a filling move.
type Direction string

const (
	// DirectionUp moves an entry towards index zero.
	DirectionUp Direction = "up"
	// DirectionDown moves an entry towards the end.
	DirectionDown Direction = "down"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}

// BuilderState is the burger being assembled. Ingredients never holds a bun.
type BuilderState struct {
	Bun         *model.ConstructorIngredient  `json:"bun"`
	Ingredients []model.ConstructorIngredient `json:"ingredients"`
}

// InitialBuilderState returns an empty builder.
func InitialBuilderState() BuilderState {
	return BuilderState{Ingredients: []model.ConstructorIngredient{}}
}

// TotalCount is the number of fillings, the bun excluded.
func (s BuilderState) TotalCount() int {
	return len(s.Ingredients)
}

// TotalPrice counts the bun twice, once per half.
func (s BuilderState) TotalPrice() float64 {
	var total float64
	if s.Bun != nil {
		total += 2 * s.Bun.Price
	}
	for _, it := range s.Ingredients {
		total += it.Price
	}
	return total
}

// OrderIngredientIDs returns the catalog ids in submission order: bun,
// fillings, bun.
func (s BuilderState) OrderIngredientIDs() []string {
	ids := make([]string, 0, len(s.Ingredients)+2)
	if s.Bun != nil {
		ids = append(ids, s.Bun.ID)
	}
	for _, it := range s.Ingredients {
		ids = append(ids, it.ID)
	}
	if s.Bun != nil {
		ids = append(ids, s.Bun.ID)
	}
	return ids
}

// BuilderEvent is a synchronous builder transition.
type BuilderEvent interface {
	apply(BuilderState) BuilderState
}

// BunSet replaces the bun slot; a nil Bun clears it.
type BunSet struct {
	Bun *model.ConstructorIngredient
}

func (e BunSet) apply(s BuilderState) BuilderState {
	s.Bun = e.Bun
	return s
}

// IngredientAdded adds an entry. Bun entries go to the bun slot.
type IngredientAdded struct {
	Item model.ConstructorIngredient
}

func (e IngredientAdded) apply(s BuilderState) BuilderState {
	if e.Item.IsBun() {
		item := e.Item
		s.Bun = &item
		return s
	}
	next := make([]model.ConstructorIngredient, len(s.Ingredients), len(s.Ingredients)+1)
	copy(next, s.Ingredients)
	s.Ingredients = append(next, e.Item)
	return s
}

// IngredientRemoved removes the filling with InstanceID.
type IngredientRemoved struct {
	InstanceID string
}

func (e IngredientRemoved) apply(s BuilderState) BuilderState {
	idx := -1
	for i, it := range s.Ingredients {
		if it.InstanceID == e.InstanceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	next := make([]model.ConstructorIngredient, 0, len(s.Ingredients)-1)
	next = append(next, s.Ingredients[:idx]...)
	s.Ingredients = append(next, s.Ingredients[idx+1:]...)
	return s
}

// IngredientMoved swaps the filling at Index with its neighbor.
type IngredientMoved struct {
	Index     int
	Direction Direction
}

func (e IngredientMoved) apply(s BuilderState) BuilderState {
	target := e.Index
	switch e.Direction {
	case DirectionUp:
		target--
	case DirectionDown:
		target++
	default:
		return s
	}
	n := len(s.Ingredients)
	if e.Index < 0 || e.Index >= n || target < 0 || target >= n {
		return s
	}
	next := make([]model.ConstructorIngredient, n)
	copy(next, s.Ingredients)
	next[e.Index], next[target] = next[target], next[e.Index]
	s.Ingredients = next
	return s
}

// BuilderCleared empties the builder.
type BuilderCleared struct{}

func (BuilderCleared) apply(BuilderState) BuilderState {
	return InitialBuilderState()
}

// ReduceBuilder applies a builder event.
func ReduceBuilder(s BuilderState, e BuilderEvent) BuilderState {
	return e.apply(s)
}

// Builder is the burger builder container. All operations are synchronous
// and return the resulting snapshot.
type Builder struct {
	*container[BuilderState, BuilderEvent]
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{container: newContainer("builder", InitialBuilderState(), ReduceBuilder)}
}

// SetBun places ing in the bun slot with a fresh instance id. nil clears it.
func (b *Builder) SetBun(ing *model.Ingredient) BuilderState {
	if ing == nil {
		return b.dispatch(BunSet{})
	}
	item := model.NewConstructorIngredient(*ing)
	return b.dispatch(BunSet{Bun: &item})
}

// AddIngredient adds ing with a fresh instance id.
func (b *Builder) AddIngredient(ing model.Ingredient) BuilderState {
	return b.dispatch(IngredientAdded{Item: model.NewConstructorIngredient(ing)})
}

// RemoveIngredient removes a filling by instance id. The bun is left alone.
func (b *Builder) RemoveIngredient(instanceID string) BuilderState {
	return b.dispatch(IngredientRemoved{InstanceID: instanceID})
}

// MoveIngredient swaps the filling at index with its neighbor in dir.
func (b *Builder) MoveIngredient(index int, dir Direction) BuilderState {
	return b.dispatch(IngredientMoved{Index: index, Direction: dir})
}

// Clear resets the builder.
func (b *Builder) Clear() BuilderState {
	return b.dispatch(BuilderCleared{})
}
