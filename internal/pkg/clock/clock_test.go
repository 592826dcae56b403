package clock_test

import (
	"testing"
	"time"

	"canteen/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	c := clock.NewFixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestSystem(t *testing.T) {
	before := time.Now()
	now := clock.NewSystem().Now()

	assert.False(t, now.Before(before))
}

func TestFunc(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	calls := 0

	c := clock.Func(func() time.Time {
		calls++
		return at.Add(time.Duration(calls) * time.Second)
	})

	assert.Equal(t, at.Add(time.Second), c.Now())
	assert.Equal(t, at.Add(2*time.Second), c.Now())
}
