package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value atomic.Uint64
}

func (c *Counter) Inc() {
	c.value.Add(1)
}

func (c *Counter) Add(n uint64) {
	c.value.Add(n)
}

func (c *Counter) Load() uint64 {
	return c.value.Load()
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Outcome classifies a finished gateway call.
type Outcome int

const (
	Succeeded Outcome = iota
	Rejected
	APIError
	ServerError
	TransportError
	DecodeError
)

// Gateway counts gateway calls by outcome. The zero value is ready to use.
type Gateway struct {
	succeeded       Counter
	rejected        Counter
	apiErrors       Counter
	serverErrors    Counter
	transportErrors Counter
	decodeErrors    Counter
	elapsed         Counter
}

// Snapshot is a point-in-time copy of Gateway.
type Snapshot struct {
	Calls           uint64
	Succeeded       uint64
	Rejected        uint64
	APIErrors       uint64
	ServerErrors    uint64
	TransportErrors uint64
	DecodeErrors    uint64
	Elapsed         time.Duration
}

// Observe records one call. Rejected calls never reach the network, so d is
// ignored for them.
func (g *Gateway) Observe(o Outcome, d time.Duration) {
	switch o {
	case Succeeded:
		g.succeeded.Inc()
	case Rejected:
		g.rejected.Inc()
		return
	case APIError:
		g.apiErrors.Inc()
	case ServerError:
		g.serverErrors.Inc()
	case TransportError:
		g.transportErrors.Inc()
	case DecodeError:
		g.decodeErrors.Inc()
	}
	if d > 0 {
		g.elapsed.Add(uint64(d))
	}
}

func (g *Gateway) Snapshot() Snapshot {
	s := Snapshot{
		Succeeded:       g.succeeded.Load(),
		Rejected:        g.rejected.Load(),
		APIErrors:       g.apiErrors.Load(),
		ServerErrors:    g.serverErrors.Load(),
		TransportErrors: g.transportErrors.Load(),
		DecodeErrors:    g.decodeErrors.Load(),
		Elapsed:         time.Duration(g.elapsed.Load()),
	}
	s.Calls = s.Succeeded + s.Rejected + s.APIErrors + s.ServerErrors + s.TransportErrors + s.DecodeErrors
	return s
}
