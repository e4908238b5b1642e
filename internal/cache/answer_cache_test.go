package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// failingCache errors on every operation.
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("cache down")
}

func (failingCache) Set(ctx context.Context, key, value string) error {
	return errors.New("cache down")
}

func (failingCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	return nil, errors.New("cache down")
}

func (failingCache) DeleteMany(ctx context.Context, keys []string) error {
	return errors.New("cache down")
}

func (failingCache) Close() error { return nil }

func TestKey_Format(t *testing.T) {
	require.Equal(t, "faq:42:es", Key(42, "es"))
}

func TestAnswerCache_Roundtrip(t *testing.T) {
	answers := NewAnswerCache(NewInMemoryCache(time.Hour))
	ctx := context.Background()

	_, ok := answers.GetAnswer(ctx, 1, "es")
	require.False(t, ok)

	answers.SetAnswer(ctx, 1, "es", "<p>respuesta</p>")

	val, ok := answers.GetAnswer(ctx, 1, "es")
	require.True(t, ok)
	require.Equal(t, "<p>respuesta</p>", val)
}

func TestAnswerCache_Invalidate(t *testing.T) {
	backend := NewInMemoryCache(time.Hour)
	answers := NewAnswerCache(backend)
	ctx := context.Background()

	answers.SetAnswer(ctx, 1, "es", "a")
	answers.SetAnswer(ctx, 1, "fr", "b")
	answers.SetAnswer(ctx, 2, "es", "c")

	answers.Invalidate(ctx, 1)

	_, ok := answers.GetAnswer(ctx, 1, "es")
	require.False(t, ok)
	_, ok = answers.GetAnswer(ctx, 1, "fr")
	require.False(t, ok)

	// Other items are untouched.
	val, ok := answers.GetAnswer(ctx, 2, "es")
	require.True(t, ok)
	require.Equal(t, "c", val)
}

func TestAnswerCache_Invalidate_NoMatches(t *testing.T) {
	answers := NewAnswerCache(NewInMemoryCache(time.Hour))

	// Must be a silent no-op.
	answers.Invalidate(context.Background(), 99)
}

func TestAnswerCache_DegradesOnFailure(t *testing.T) {
	answers := NewAnswerCache(failingCache{})
	ctx := context.Background()

	// Every failure is swallowed: get degrades to a miss, set and
	// invalidate to no-ops.
	val, ok := answers.GetAnswer(ctx, 1, "es")
	require.False(t, ok)
	require.Empty(t, val)

	answers.SetAnswer(ctx, 1, "es", "respuesta")
	answers.Invalidate(ctx, 1)
}
