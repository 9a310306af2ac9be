package fallback_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/engine/fallback"
)

func nonEmpty(s string) bool { return s != "" }

func TestFirst_StopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	var calls []string
	alt := func(name, value string, err error) fallback.Alternative[string] {
		return fallback.Alternative[string]{
			Name: name,
			Run: func(context.Context) (string, error) {
				calls = append(calls, name)
				return value, err
			},
		}
	}

	res, err := fallback.First(context.Background(), nonEmpty,
		alt("broken", "", errors.New("boom")),
		fallback.Alternative[string]{Name: "unavailable"},
		alt("empty", "", nil),
		alt("good", "value", nil),
		alt("never", "other", nil),
	)
	require.NoError(t, err)
	assert.Equal(t, "value", res.Value)
	assert.Equal(t, "good", res.Name)
	assert.Equal(t, []string{"broken", "empty", "good"}, calls)
	require.Len(t, res.Attempts, 3)
	assert.Error(t, res.Attempts[0].Err)
	assert.Error(t, res.Attempts[1].Err)
	assert.NoError(t, res.Attempts[2].Err)
}

func TestFirst_AllFail(t *testing.T) {
	t.Parallel()

	cause := errors.New("remote down")
	res, err := fallback.First(context.Background(), nonEmpty,
		fallback.Alternative[string]{Name: "a", Run: func(context.Context) (string, error) { return "", cause }},
		fallback.Alternative[string]{Name: "b", Run: func(context.Context) (string, error) { return "", nil }},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, fallback.ErrNoAlternative)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, res.Value)
	assert.Len(t, res.Attempts, 2)
}

func TestFirst_NoAlternatives(t *testing.T) {
	t.Parallel()

	_, err := fallback.First[int](context.Background(), nil)
	assert.ErrorIs(t, err, fallback.ErrNoAlternative)
}

func TestFirst_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := fallback.First(ctx, nil, fallback.Alternative[int]{
		Name: "a",
		Run: func(context.Context) (int, error) {
			called = true
			return 1, nil
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
