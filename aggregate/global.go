package aggregate

import (
	"context"
	"log"
	"sync"

	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/result"
)

var (
	globalAgg  *Aggregator
	globalOnce sync.Once
	globalMu   sync.Mutex
)

// Default returns the shared, lazy-initialized default aggregator.
// It uses New() if SetGlobal has not been called.
func Default() *Aggregator {
	globalOnce.Do(func() {
		globalMu.Lock()
		defer globalMu.Unlock()
		if globalAgg == nil {
			globalAgg = New()
		}
	})
	return globalAgg
}

// SetGlobal configures the default aggregator.
// It must be called before Default() is used (e.g. at startup).
// If called after initialization, it logs a warning and does nothing.
func SetGlobal(a *Aggregator) {
	if a == nil {
		return
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalAgg != nil {
		log.Printf("aggregate: SetGlobal called after default aggregator already initialized; ignoring.")
		return
	}
	globalAgg = a
}

// Classify classifies msgs with the default aggregator.
func Classify(ctx context.Context, msgs ...message.Message) result.Result {
	return Default().Classify(ctx, msgs...)
}

// Merge merges outcomes with the default aggregator.
func Merge(ctx context.Context, outcomes ...result.Result) result.Result {
	return Default().Merge(ctx, outcomes...)
}
