package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceService_Format(t *testing.T) {
	service := NewReferenceService()
	service.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}

	ref, err := service.Generate("FG")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^FG20260901\d{4}$`), ref)
}

func TestReferenceService_UniqueAcrossManyDraws(t *testing.T) {
	service := NewReferenceService()

	// 1500 draws from a 4-digit suffix space would collide without the
	// issued-set retry loop.
	seen := make(map[string]struct{}, 1500)
	for i := 0; i < 1500; i++ {
		ref, err := service.Generate("FG")
		require.NoError(t, err)
		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference %s on draw %d", ref, i)
		seen[ref] = struct{}{}
	}
}

func TestReferenceService_ExhaustedSpace(t *testing.T) {
	service := NewReferenceService()
	service.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}

	// The linear-scan fallback hands out every suffix exactly once.
	for i := 0; i < referenceSuffixSpace; i++ {
		_, err := service.Generate("FG")
		require.NoError(t, err, "draw %d should succeed", i)
	}

	_, err := service.Generate("FG")
	assert.ErrorIs(t, err, ErrReferenceExhausted)
}

func TestReferenceService_ReleaseAllowsReuse(t *testing.T) {
	service := NewReferenceService()
	service.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}

	for i := 0; i < referenceSuffixSpace; i++ {
		_, err := service.Generate("FG")
		require.NoError(t, err)
	}

	_, err := service.Generate("FG")
	require.ErrorIs(t, err, ErrReferenceExhausted)

	release := "FG202609010042"
	service.Release(release)

	ref, err := service.Generate("FG")
	require.NoError(t, err)
	assert.Equal(t, release, ref)
}

func TestReferenceService_ConcurrentGenerate(t *testing.T) {
	service := NewReferenceService()

	const workers = 8
	const perWorker = 100

	results := make(chan string, workers*perWorker)
	for w := 0; w < workers; w++ {
		go func() {
			for i := 0; i < perWorker; i++ {
				ref, err := service.Generate("FG")
				if err != nil {
					t.Error(err)
				}
				results <- ref
			}
		}()
	}

	seen := make(map[string]struct{}, workers*perWorker)
	for i := 0; i < workers*perWorker; i++ {
		ref := <-results
		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference %s", ref)
		seen[ref] = struct{}{}
	}
}
