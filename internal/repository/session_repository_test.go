package repository_test

import (
	"context"
	"sync"
	"testing"

	"studyplanner/internal/model"
	repo "studyplanner/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemorySessionRepository()

	first := &model.Session{Subject: "Math", Date: "2024-01-01", Duration: 60}
	second := &model.Session{Subject: "Math", Date: "2024-01-01", Duration: 60}
	require.NoError(t, r.Create(ctx, first))
	require.NoError(t, r.Create(ctx, second))

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)

	sessions, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
}

func TestMemorySessionRepository_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemorySessionRepository()

	const workers = 50
	var wg sync.WaitGroup
	idCh := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := &model.Session{Subject: "Physics", Date: "2024-01-01", Duration: 30}
			if err := r.Create(ctx, s); err == nil {
				idCh <- s.ID
			}
		}()
	}
	wg.Wait()
	close(idCh)

	seen := map[int64]bool{}
	for id := range idCh {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, workers)
	for id := int64(1); id <= workers; id++ {
		require.True(t, seen[id])
	}
}
