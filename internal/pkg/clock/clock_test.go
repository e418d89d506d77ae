package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/layout-api/internal/pkg/clock"
)

func TestExpiring(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	e := clock.NewExpiring(true, start, 30*time.Second)

	assert.True(t, e.Value)
	assert.True(t, e.Fresh(start))
	assert.True(t, e.Fresh(start.Add(29*time.Second)))
	assert.False(t, e.Fresh(start.Add(30*time.Second)))
}

func TestSystemClockAdvances(t *testing.T) {
	c := clock.New()
	first := c.Now()
	assert.False(t, c.Now().Before(first))
}
