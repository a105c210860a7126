package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

var (
	testBun = model.Ingredient{
		ID:    "bun-1",
		Name:  "Krator bun",
		Type:  model.CategoryBun,
		Price: 1255,
	}
	testOtherBun = model.Ingredient{
		ID:    "bun-2",
		Name:  "Fluorescent bun",
		Type:  model.CategoryBun,
		Price: 988,
	}
	testMain = model.Ingredient{
		ID:    "main-1",
		Name:  "Biocutlet",
		Type:  model.CategoryMain,
		Price: 424,
	}
	testSauce = model.Ingredient{
		ID:    "sauce-1",
		Name:  "Spicy-X sauce",
		Type:  model.CategorySauce,
		Price: 90,
	}

	testOrder = model.Order{
		ID:          "1",
		Status:      model.OrderStatusDone,
		Ingredients: []string{"ing1", "ing2"},
		CreatedAt:   "2023-01-01",
		UpdatedAt:   "2023-01-01",
		Number:      1,
		Name:        "Order 1",
	}
	testOtherOrder = model.Order{
		ID:          "2",
		Status:      model.OrderStatusPending,
		Ingredients: []string{"ing3", "ing4"},
		CreatedAt:   "2023-01-02",
		UpdatedAt:   "2023-01-02",
		Number:      2,
		Name:        "Order 2",
	}

	testUser = model.UserProfile{Name: "Test User", Email: "test@example.com"}
)

// waitTask waits for task to settle and returns its error.
func waitTask(t *testing.T, task *store.Task) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	select {
	case <-task.Done():
	case <-ctx.Done():
		require.FailNow(t, "task did not settle")
	}
	return task.Wait(ctx)
}
