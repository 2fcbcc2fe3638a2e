package raptorq

// config bundles the construction knobs for NewEncoder. Defaults
// favor single-goroutine, cache-on behavior.
type config struct {
	planCache   *EncoderPlanCache
	concurrency int
}

func defaultConfig() *config {
	return &config{
		planCache:   NewEncoderPlanCache(),
		concurrency: 1,
	}
}

// Option represents a functional option for configuring an Encoder
// (NewDecoder takes none), matching the teacher's WithXxx(...) Option
// construction knobs.
type Option func(*config)

// WithPlanCache injects a pre-built or shared EncoderPlanCache, letting
// callers reuse solved plans across multiple Encoder instances of objects
// that share a K′ (spec.md §9's plan-caching design note).
func WithPlanCache(cache *EncoderPlanCache) Option {
	return func(c *config) {
		c.planCache = cache
	}
}

// WithConcurrency sets how many source blocks NewEncoder may build in
// parallel (spec.md §5: "callers may parallelise at the source-block
// granularity"). n<1 is clamped to 1.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}
