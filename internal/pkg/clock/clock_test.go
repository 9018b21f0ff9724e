package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	before := time.Now()
	got := New().Now()
	assert.False(t, got.Before(before))

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var c Clocker = Fixed(at)
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}
