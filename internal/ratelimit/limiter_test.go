package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRegistry_SameKeySharesLimiter(t *testing.T) {
	r := NewRegistry(time.Minute)

	a := r.Get("pt01.mul-pay.jp|tshop1", rate.Limit(5), 1)
	b := r.Get("pt01.mul-pay.jp|tshop1", rate.Limit(5), 1)
	c := r.Get("pt01.mul-pay.jp|tshop2", rate.Limit(5), 1)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, r.Len())

	assert.True(t, a.Allow())
	assert.False(t, b.Allow())
	assert.True(t, c.Allow())
}

func TestRegistry_Retune(t *testing.T) {
	r := NewRegistry(time.Minute)

	l := r.Get("k", rate.Limit(1), 1)
	r.Get("k", rate.Limit(20), 4)

	assert.Equal(t, rate.Limit(20), l.Limit())
	assert.Equal(t, 4, l.Burst())
}

func TestRegistry_PrunesIdle(t *testing.T) {
	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Minute)
	r.now = func() time.Time { return now }

	old := r.Get("old", rate.Limit(1), 1)
	now = now.Add(2 * time.Minute)
	r.Get("new", rate.Limit(1), 1)

	assert.Equal(t, 1, r.Len())
	assert.NotSame(t, old, r.Get("old", rate.Limit(1), 1))
}

func TestRegistry_UseKeepsEntryAlive(t *testing.T) {
	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	r := NewRegistry(10 * time.Minute)
	r.now = func() time.Time { return now }

	first := r.Get("pt01.mul-pay.jp|tshop1", rate.Limit(5), 1)
	for i := 0; i < 11; i++ {
		now = now.Add(time.Minute)
		r.Get("pt01.mul-pay.jp|tshop1", rate.Limit(5), 1).Allow()
	}

	assert.Same(t, first, r.Get("pt01.mul-pay.jp|tshop1", rate.Limit(5), 1))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ZeroBurst(t *testing.T) {
	r := NewRegistry(time.Minute)

	l := r.Get("k", rate.Limit(5), 0)
	assert.Equal(t, 1, l.Burst())
	assert.True(t, l.Allow())
}

func TestShared(t *testing.T) {
	key := t.Name()
	assert.Same(t, Shared(key, rate.Limit(1), 1), Shared(key, rate.Limit(1), 1))
}
