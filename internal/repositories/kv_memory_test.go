package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryKeyValueRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryKeyValueRepository()

	_, err := repo.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, repo.Set(ctx, "a", "1"))
	assert.NoError(t, repo.Set(ctx, "a", "2"))
	got, err := repo.Get(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, "2", got)
	assert.Equal(t, 1, repo.Len())

	assert.NoError(t, repo.Delete(ctx, "a"))
	assert.NoError(t, repo.Delete(ctx, "a"))
	assert.Equal(t, 0, repo.Len())
}

func TestMemoryKeyValueRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryKeyValueRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = repo.Set(ctx, key, "v")
			_, _ = repo.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}
