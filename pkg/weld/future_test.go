package weld

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFutureGo(t *testing.T) {
	f := Go(func() (int, error) {
		return 42, nil
	})

	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestFutureCarriesError(t *testing.T) {
	boom := errors.New("boom")
	f := Go(func() (string, error) {
		return "", boom
	})

	_, err := f.Get()
	require.ErrorIs(t, err, boom)
}

func TestFutureSyncResolvesOnCaller(t *testing.T) {
	ran := false
	f := Sync(func() (int, error) {
		ran = true
		return 7, nil
	})

	// already resolved before Sync returned
	require.True(t, ran)
	select {
	case <-f.Done():
	default:
		t.Fatal("sync future not resolved")
	}

	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestFutureGetContext(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.GetContext(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	v, err := f.GetContext(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestEnvDeps(t *testing.T) {
	type deps struct{ n int }

	e := NewEnv(&deps{n: 3})
	require.Equal(t, 3, e.Deps().n)
}
