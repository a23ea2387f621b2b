package network

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for generated networks.
var (
	// ErrTooFewStops indicates a generator size below its minimum.
	ErrTooFewStops = errors.New("network: too few stops")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("network: probability out of [0,1]")
)

// Layout spacing of generated stops, in canvas units.
const (
	gridSpacing  = 150
	gridOrigin   = 100
	defaultSeed  = 1
	defaultMinW  = 1
	defaultMaxW  = 30
	circleRadius = 200
)

// GenOption customizes a generator.
type GenOption func(*genConfig)

type genConfig struct {
	rng        *rand.Rand
	minW, maxW int64
}

// WithSeed makes generation deterministic for seed.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightRange draws road weights uniformly from [minW, maxW].
// Invalid ranges (negative or inverted) are ignored.
func WithWeightRange(minW, maxW int64) GenOption {
	return func(c *genConfig) {
		if minW >= 0 && maxW >= minW {
			c.minW, c.maxW = minW, maxW
		}
	}
}

func newGenConfig(opts []GenOption) genConfig {
	c := genConfig{minW: defaultMinW, maxW: defaultMaxW}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return c
}

func (c genConfig) weight() int64 {
	span := c.maxW - c.minW
	if span == math.MaxInt64 {
		// [0, MaxInt64] has no representable width; Int63 covers it exactly.
		return c.rng.Int63()
	}
	return c.minW + c.rng.Int63n(span+1)
}

// Grid returns a rows×cols grid of stops joined to their right and lower
// neighbours. Stops are numbered row-major; the destination is the last one.
func Grid(rows, cols int, opts ...GenOption) (*Network, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrTooFewStops, rows, cols)
	}
	cfg := newGenConfig(opts)

	n := &Network{
		Name:        fmt.Sprintf("Grid %dx%d", rows, cols),
		Destination: rows*cols - 1,
		Stops:       make([]Stop, 0, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n.Stops = append(n.Stops, Stop{
				X: float64(gridOrigin + c*gridSpacing),
				Y: float64(gridOrigin + r*gridSpacing),
			})
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				n.Roads = append(n.Roads, Road{From: v, To: v + 1, Weight: cfg.weight()})
			}
			if r+1 < rows {
				n.Roads = append(n.Roads, Road{From: v, To: v + cols, Weight: cfg.weight()})
			}
		}
	}

	return n, nil
}

// RandomSparse samples every unordered pair of stops independently with
// probability p. Pairs are tried in a fixed order, so a fixed seed always
// yields the same network. Stops sit on a circle; the destination is the
// last one. The result may be disconnected.
func RandomSparse(stops int, p float64, opts ...GenOption) (*Network, error) {
	if stops < 1 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewStops, stops)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%.6f", ErrInvalidProbability, p)
	}
	cfg := newGenConfig(opts)

	n := &Network{
		Name:        fmt.Sprintf("Random %d p=%.2f", stops, p),
		Destination: stops - 1,
		Stops:       circle(stops),
	}
	for i := 0; i < stops; i++ {
		for j := i + 1; j < stops; j++ {
			if cfg.rng.Float64() < p {
				n.Roads = append(n.Roads, Road{From: i, To: j, Weight: cfg.weight()})
			}
		}
	}

	return n, nil
}

// circle places count stops evenly on a circle around the canvas centre.
func circle(count int) []Stop {
	out := make([]Stop, count)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(count)
		out[i] = Stop{
			X: math.Round(gridOrigin + circleRadius + circleRadius*math.Cos(angle)),
			Y: math.Round(gridOrigin + circleRadius + circleRadius*math.Sin(angle)),
		}
	}
	return out
}
