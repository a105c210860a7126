package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

func TestMemoryCredentialStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCredentialStore()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())

	creds := model.Credentials{AccessToken: "a", RefreshToken: "r"}
	require.NoError(t, store.Save(ctx, creds))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, store.Clear(ctx))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestMemoryCredentialStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCredentialStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, model.Credentials{AccessToken: "a", RefreshToken: "r"})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Load(ctx)
		}()
	}
	wg.Wait()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r", got.RefreshToken)
}
