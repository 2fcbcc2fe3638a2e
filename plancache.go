package raptorq

import (
	"sync"

	"github.com/katalvlaran/raptorq/solver"
	"github.com/katalvlaran/raptorq/systab"
)

// EncoderPlanCache memoizes SolverPlans by K′. An object's source blocks
// take at most two distinct sizes (spec.md §4.3's partition(Kt,Z) produces
// "large" and "small" groups), so this map never holds more than two
// entries for a single encode; it is not an LRU (spec.md §9: "Plan caching
// is not merely a perf knob: the encoder's solver output depends only on
// K′, so a single plan services every block of that K′").
type EncoderPlanCache struct {
	mu    sync.Mutex
	plans map[int]*solver.SolverPlan
}

// NewEncoderPlanCache returns an empty plan cache.
func NewEncoderPlanCache() *EncoderPlanCache {
	return &EncoderPlanCache{plans: make(map[int]*solver.SolverPlan, 2)}
}

// Get returns the cached plan for p.Kp, generating and storing one on
// first request for that K′. Safe for concurrent use across goroutines
// building distinct source blocks.
func (c *EncoderPlanCache) Get(p systab.Params) (*solver.SolverPlan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if plan, ok := c.plans[p.Kp]; ok {
		return plan, nil
	}
	plan, err := solver.GeneratePlan(p)
	if err != nil {
		return nil, err
	}
	c.plans[p.Kp] = plan
	return plan, nil
}
