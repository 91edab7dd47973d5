package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(v int) Attempt[int] {
	return func(context.Context) (int, error) { return v, nil }
}

func failing(err error) Attempt[int] {
	return func(context.Context) (int, error) { return 0, err }
}

func TestFirst_FirstSuccessWins(t *testing.T) {
	second := false
	v, err := First(context.Background(), -1,
		value(3),
		func(context.Context) (int, error) {
			second = true
			return 4, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.False(t, second, "later attempts must not run after a success")
}

func TestFirst_FallsBackOnError(t *testing.T) {
	v, err := First(context.Background(), -1,
		failing(errors.New("boom")),
		value(7),
	)

	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFirst_AllFailReturnsDefault(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	v, err := First(context.Background(), -1, failing(errA), failing(errB))

	assert.Equal(t, -1, v)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestFirst_HaltSkipsRemaining(t *testing.T) {
	notFound := errors.New("not found")
	called := false

	v, err := First(context.Background(), 0,
		failing(Halt(notFound)),
		func(context.Context) (int, error) {
			called = true
			return 1, nil
		},
	)

	assert.Equal(t, 0, v)
	assert.True(t, IsHalt(err))
	assert.ErrorIs(t, err, notFound)
	assert.False(t, called)
}

func TestFirst_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := First(ctx, 9, value(1))

	assert.Equal(t, 9, v)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFirst_NoAttempts(t *testing.T) {
	v, err := First[int](context.Background(), 5)

	assert.Equal(t, 5, v)
	assert.Error(t, err)
}
