package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler(nil)

	var runs atomic.Int32
	ran := make(chan struct{}, 1)
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler(nil)
	assert.NotPanics(t, s.Stop)
}

func TestScheduler_RunOnceReturnsFirstError(t *testing.T) {
	s := NewScheduler(nil)
	errFirst := errors.New("first")
	var second bool

	s.AddJob("fails", time.Minute, func(ctx context.Context) error { return errFirst })
	s.AddJob("succeeds", time.Minute, func(ctx context.Context) error {
		second = true
		return nil
	})

	err := s.RunOnce(context.Background())
	require.ErrorIs(t, err, errFirst)
	assert.True(t, second)
}
