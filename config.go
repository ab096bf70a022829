package sat

import (
	"errors"
	"fmt"
	"math"
)

// Comparator selects how the axis of minimum overlap is chosen.
type Comparator string

const (
	// CompareEpsilon compares overlaps as floats. A later axis only replaces
	// the current minimum when it is smaller by more than Config.Epsilon.
	CompareEpsilon Comparator = "epsilon"
	// CompareFixed1000 truncates overlap*1000 to an integer before comparing,
	// so differences below 0.001 are not distinguished. Kept for compatibility
	// with results produced by earlier releases.
	CompareFixed1000 Comparator = "fixed1000"
)

// DefaultEpsilon is the default tolerance of CompareEpsilon.
const DefaultEpsilon = 1e-9

// Config configures a Tester.
type Config struct {
	Comparator Comparator `json:"comparator" yaml:"comparator"`
	Epsilon    float64    `json:"epsilon" yaml:"epsilon"`
	// Validate makes Tester reject malformed polygons with a *ValidationError
	// instead of propagating NaNs through the result.
	Validate bool `json:"validate" yaml:"validate"`
}

// DefaultConfig returns the configuration used by the package level functions.
func DefaultConfig() Config {
	return Config{
		Comparator: CompareEpsilon,
		Epsilon:    DefaultEpsilon,
	}
}

// Check reports whether the configuration is usable.
func (c Config) Check() error {
	switch c.Comparator {
	case CompareEpsilon, CompareFixed1000:
	default:
		return fmt.Errorf("unknown comparator %q", c.Comparator)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return errors.New("epsilon must be finite and non-negative")
	}
	return nil
}

// less reports whether overlap a should replace the current minimum b.
func (c Config) less(a, b float64) bool {
	if c.Comparator == CompareFixed1000 {
		return fixed1000Key(a) < fixed1000Key(b)
	}
	return a < b-c.Epsilon
}

// fixed1000Key truncates overlap*1000 to an int32, saturating out of range
// values and mapping NaN to 0.
func fixed1000Key(overlap float64) int32 {
	k := overlap * 1000
	switch {
	case math.IsNaN(k):
		return 0
	case k >= math.MaxInt32:
		return math.MaxInt32
	case k <= math.MinInt32:
		return math.MinInt32
	}
	return int32(k)
}
