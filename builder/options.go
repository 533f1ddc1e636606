package builder

import "math/rand"

// Option configures a constructor. Options are generic over the label
// type so WithLabelFn can produce labels of the target graph's type.
type Option[T any] func(*config[T])

// config holds resolved constructor settings.
type config[T any] struct {
	labelFn func(id int) T // nil leaves labels zero-valued
	rng     *rand.Rand     // nil until WithSeed/WithRand
}

func resolve[T any](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithLabelFn labels every vertex with fn(id) after construction.
func WithLabelFn[T any](fn func(id int) T) Option[T] {
	return func(c *config[T]) {
		c.labelFn = fn
	}
}

// WithSeed equips stochastic constructors with a deterministic random
// source seeded from seed.
func WithSeed[T any](seed int64) Option[T] {
	return func(c *config[T]) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand equips stochastic constructors with the given random source.
// A nil r has no effect.
func WithRand[T any](r *rand.Rand) Option[T] {
	return func(c *config[T]) {
		if r != nil {
			c.rng = r
		}
	}
}
