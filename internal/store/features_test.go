package store_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/mock"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/mocks"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

type storeTestContext struct {
	api     *mocks.MockBurgerAPI
	store   *store.Store
	catalog map[string]model.Ingredient
	history []model.Order
	feed    model.Feed
}

func (c *storeTestContext) reset() error {
	c.api = new(mocks.MockBurgerAPI)
	s, err := store.New(c.api, nil)
	if err != nil {
		return err
	}
	c.store = s
	c.catalog = map[string]model.Ingredient{}
	c.history = nil
	c.feed = model.Feed{}
	return nil
}

func (c *storeTestContext) settle(task *store.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := task.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func (c *storeTestContext) theCatalogContains(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		price, err := strconv.ParseFloat(row.Cells[3].Value, 64)
		if err != nil {
			return err
		}
		ing := model.Ingredient{
			ID:    row.Cells[0].Value,
			Name:  row.Cells[1].Value,
			Type:  model.Category(row.Cells[2].Value),
			Price: price,
		}
		c.catalog[ing.ID] = ing
	}
	return nil
}

func (c *storeTestContext) iAdd(id string) error {
	ing, ok := c.catalog[id]
	if !ok {
		return fmt.Errorf("unknown ingredient %q", id)
	}
	c.store.Builder.AddIngredient(ing)
	return nil
}

func (c *storeTestContext) iRemoveTheBunByItsInstanceID() error {
	bun := c.store.Builder.State().Bun
	if bun == nil {
		return errors.New("no bun to remove")
	}
	c.store.Builder.RemoveIngredient(bun.InstanceID)
	return nil
}

func (c *storeTestContext) iMoveFilling(index int, direction string) error {
	c.store.Builder.MoveIngredient(index, store.Direction(direction))
	return nil
}

func (c *storeTestContext) iClearTheBuilder() error {
	c.store.Builder.Clear()
	return nil
}

func (c *storeTestContext) theBunIs(id string) error {
	bun := c.store.Builder.State().Bun
	if bun == nil {
		return fmt.Errorf("expected bun %q, got none", id)
	}
	if bun.ID != id {
		return fmt.Errorf("expected bun %q, got %q", id, bun.ID)
	}
	return nil
}

func (c *storeTestContext) theBunIsEmpty() error {
	if bun := c.store.Builder.State().Bun; bun != nil {
		return fmt.Errorf("expected no bun, got %q", bun.ID)
	}
	return nil
}

func (c *storeTestContext) theFillingsAre(list string) error {
	var got []string
	for _, it := range c.store.Builder.State().Ingredients {
		got = append(got, it.ID)
	}
	if strings.Join(got, ",") != list {
		return fmt.Errorf("expected fillings %q, got %q", list, strings.Join(got, ","))
	}
	return nil
}

func (c *storeTestContext) everyInstanceIDIsUnique() error {
	s := c.store.Builder.State()
	seen := map[string]bool{}
	if s.Bun != nil {
		seen[s.Bun.InstanceID] = true
	}
	for _, it := range s.Ingredients {
		if seen[it.InstanceID] {
			return fmt.Errorf("duplicate instance id %q", it.InstanceID)
		}
		seen[it.InstanceID] = true
	}
	return nil
}

func (c *storeTestContext) theUpstreamAcceptsOrdersAsNumber(number int) error {
	c.api.On("CreateOrder", mock.Anything, mock.Anything).
		Return(model.Order{ID: strconv.Itoa(number), Number: number, Status: model.OrderStatusCreated}, nil)
	return nil
}

func (c *storeTestContext) theUpstreamRejectsOrdersWith(message string) error {
	c.api.On("CreateOrder", mock.Anything, mock.Anything).
		Return(model.Order{}, &model.RequestError{Message: message, Name: model.ErrNameAPI})
	return nil
}

func (c *storeTestContext) theOrderModalShowsAPreviouslyFetchedOrder(number int) error {
	c.api.On("GetOrderByNumber", mock.Anything, number).
		Return([]model.Order{{ID: strconv.Itoa(number), Number: number}}, nil)
	return c.settle(c.store.Orders.FetchByNumber(context.Background(), number))
}

func (c *storeTestContext) iSubmitTheIngredients(list string) error {
	return c.settle(c.store.Orders.Submit(context.Background(), strings.Split(list, ",")))
}

func (c *storeTestContext) theOrderModalShowsNumber(number int) error {
	modal := c.store.Orders.State().OrderModalData
	if modal == nil {
		return fmt.Errorf("expected modal order %d, got none", number)
	}
	if modal.Number != number {
		return fmt.Errorf("expected modal order %d, got %d", number, modal.Number)
	}
	return nil
}

func (c *storeTestContext) theOrderRequestFlagIsOff() error {
	if c.store.Orders.State().OrderRequest {
		return errors.New("expected order request flag to be off")
	}
	return nil
}

func (c *storeTestContext) myHistoryContainsOrderNamed(number int, name string) error {
	c.history = append(c.history, model.Order{ID: "h" + strconv.Itoa(number), Number: number, Name: name})
	c.api.ExpectedCalls = nil
	c.api.On("GetOrders", mock.Anything).Return(c.history, nil)
	return c.settle(c.store.Orders.FetchHistory(context.Background()))
}

func (c *storeTestContext) theFeedContainsOrderNamed(number int, name string) error {
	c.feed.Orders = append(c.feed.Orders, model.Order{ID: "f" + strconv.Itoa(number), Number: number, Name: name})
	c.feed.Total = len(c.feed.Orders)
	c.api.ExpectedCalls = nil
	c.api.On("GetFeed", mock.Anything).Return(c.feed, nil)
	return c.settle(c.store.Feed.Fetch(context.Background()))
}

func (c *storeTestContext) resolvingGives(number int, name string) error {
	got := c.store.ResolveOrder(number)
	if got == nil {
		return fmt.Errorf("expected order %d to resolve", number)
	}
	if got.Name != name {
		return fmt.Errorf("expected %q, got %q", name, got.Name)
	}
	return nil
}

func (c *storeTestContext) resolvingGivesNothing(number int) error {
	if got := c.store.ResolveOrder(number); got != nil {
		return fmt.Errorf("expected nothing for %d, got %q", number, got.Name)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storeTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Given steps
	ctx.Step(`^the catalog contains:$`, tc.theCatalogContains)
	ctx.Step(`^the upstream accepts orders as number (\d+)$`, tc.theUpstreamAcceptsOrdersAsNumber)
	ctx.Step(`^the upstream rejects orders with "([^"]*)"$`, tc.theUpstreamRejectsOrdersWith)
	ctx.Step(`^the order modal shows a previously fetched order (\d+)$`, tc.theOrderModalShowsAPreviouslyFetchedOrder)
	ctx.Step(`^my history contains order (\d+) named "([^"]*)"$`, tc.myHistoryContainsOrderNamed)
	ctx.Step(`^the feed contains order (\d+) named "([^"]*)"$`, tc.theFeedContainsOrderNamed)

	// When steps
	ctx.Step(`^I add "([^"]*)"$`, tc.iAdd)
	ctx.Step(`^I remove the bun by its instance id$`, tc.iRemoveTheBunByItsInstanceID)
	ctx.Step(`^I move filling (\d+) "([^"]*)"$`, tc.iMoveFilling)
	ctx.Step(`^I clear the builder$`, tc.iClearTheBuilder)
	ctx.Step(`^I submit the ingredients "([^"]*)"$`, tc.iSubmitTheIngredients)

	// Then steps
	ctx.Step(`^the bun is "([^"]*)"$`, tc.theBunIs)
	ctx.Step(`^the bun is empty$`, tc.theBunIsEmpty)
	ctx.Step(`^the fillings are "([^"]*)"$`, tc.theFillingsAre)
	ctx.Step(`^every instance id is unique$`, tc.everyInstanceIDIsUnique)
	ctx.Step(`^the order modal shows number (\d+)$`, tc.theOrderModalShowsNumber)
	ctx.Step(`^the order request flag is off$`, tc.theOrderRequestFlagIsOff)
	ctx.Step(`^resolving (\d+) gives "([^"]*)"$`, tc.resolvingGives)
	ctx.Step(`^resolving (\d+) gives nothing$`, tc.resolvingGivesNothing)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
