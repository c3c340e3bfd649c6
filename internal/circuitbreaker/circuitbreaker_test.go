package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func testConfig() Config {
	return Config{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	}
}

func TestCircuitBreaker_OpensAfterFailureThreshold(t *testing.T) {
	cb := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := cb.Execute(ctx, func() error { return errBoom })
		assert.ErrorIs(t, err, errBoom)
	}

	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, func() error { return nil }), ErrCircuitOpen)
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cb := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = cb.Execute(ctx, func() error { return errBoom })
	}
	assert.True(t, cb.IsOpen())

	time.Sleep(60 * time.Millisecond)

	// Two successful probes close the circuit.
	assert.NoError(t, cb.Execute(ctx, func() error { return nil }))
	assert.NoError(t, cb.Execute(ctx, func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = cb.Execute(ctx, func() error { return errBoom })
	}
	time.Sleep(60 * time.Millisecond)

	_ = cb.Execute(ctx, func() error { return errBoom })
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := New(testConfig())
	ctx := context.Background()

	_ = cb.Execute(ctx, func() error { return errBoom })
	_ = cb.Execute(ctx, func() error { return errBoom })
	assert.NoError(t, cb.Execute(ctx, func() error { return nil }))

	stats := cb.GetStats()
	assert.Equal(t, 0, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, "closed", stats.State)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
