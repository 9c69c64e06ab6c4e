package startup

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestStartRunsDependenciesInRegistrationOrder(t *testing.T) {
	s := NewStartup(noopLogger(), 1)

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		s.AddDependency(&Dependency{
			Name: name,
			StartFunc: func(ctx context.Context) error {
				order = append(order, name)
				return nil
			},
		})
	}

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestStartHonorsDependsOn(t *testing.T) {
	s := NewStartup(noopLogger(), 1)

	var order []string
	s.AddDependency(&Dependency{
		Name:  "server",
		Needs: []string{"consumer"},
		StartFunc: func(ctx context.Context) error {
			order = append(order, "server")
			return nil
		},
	})
	s.AddDependency(&Dependency{
		Name: "consumer",
		StartFunc: func(ctx context.Context) error {
			order = append(order, "consumer")
			return nil
		},
	})

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, []string{"consumer", "server"}, order)
}

func TestStartFailsAfterMaxAttempts(t *testing.T) {
	s := NewStartup(noopLogger(), 1)

	boom := errors.New("connection refused")
	s.AddDependency(&Dependency{
		Name: "broken",
		StartFunc: func(ctx context.Context) error {
			return boom
		},
	})

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestStopReversesRegistrationOrder(t *testing.T) {
	s := NewStartup(noopLogger(), 1)

	var stopped []string
	for _, name := range []string{"first", "second"} {
		name := name
		s.AddDependency(&Dependency{
			Name: name,
			StopFunc: func(ctx context.Context) error {
				stopped = append(stopped, name)
				return nil
			},
		})
	}

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, []string{"second", "first"}, stopped)
}

func TestNilFuncsAreNoops(t *testing.T) {
	s := NewStartup(noopLogger(), 1)
	s.AddDependency(&Dependency{Name: "passive"})

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
