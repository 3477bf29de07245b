package buttonpanel

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Accepter decides whether a press on the keyed button may go through.
type Accepter interface {
	Accept(key string) bool
}

type acceptAll struct{}

func (acceptAll) Accept(string) bool { return true }

// pressSuppressor lets one press per button through every period.
type pressSuppressor struct {
	limit rate.Limit
	mu    sync.Mutex
	keys  map[string]*rate.Limiter
}

// NewPressSuppressor returns an Accepter that rejects presses on the same key
// arriving within period of the last accepted one. A zero period accepts
// everything.
func NewPressSuppressor(period time.Duration) Accepter {
	if period <= 0 {
		return acceptAll{}
	}
	return &pressSuppressor{
		limit: rate.Every(period),
		keys:  make(map[string]*rate.Limiter),
	}
}

func (ps *pressSuppressor) Accept(key string) bool {
	ps.mu.Lock()
	limiter, ok := ps.keys[key]
	if !ok {
		// Burst of 1: the first press spends the only token.
		limiter = rate.NewLimiter(ps.limit, 1)
		ps.keys[key] = limiter
	}
	ps.mu.Unlock()

	return limiter.Allow()
}
