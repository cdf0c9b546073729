package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()
	c.Add(10)

	assert.Equal(t, uint64(60), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), 5*time.Millisecond)
}

func TestGateway_Snapshot(t *testing.T) {
	var g Gateway
	g.Observe(Succeeded, 10*time.Millisecond)
	g.Observe(Succeeded, 20*time.Millisecond)
	g.Observe(APIError, 5*time.Millisecond)
	g.Observe(ServerError, time.Millisecond)
	g.Observe(TransportError, 0)
	g.Observe(Rejected, time.Hour)
	g.Observe(DecodeError, 2*time.Millisecond)

	assert.Equal(t, Snapshot{
		Calls:           7,
		Succeeded:       2,
		Rejected:        1,
		APIErrors:       1,
		ServerErrors:    1,
		TransportErrors: 1,
		DecodeErrors:    1,
		Elapsed:         38 * time.Millisecond,
	}, g.Snapshot())
}

func TestGateway_ZeroValue(t *testing.T) {
	var g Gateway
	assert.Equal(t, Snapshot{}, g.Snapshot())
}
