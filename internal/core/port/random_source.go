package port

// RandomSourcePort abstracts the pseudo-random source behind the market
// estimator so tests can supply a deterministic sequence. There is no seed
// contract: production draws are not reproducible across runs.
type RandomSourcePort interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// IntN returns a uniform integer in [0, n). Panics when n <= 0.
	IntN(n int) int
}
