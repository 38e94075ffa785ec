package seqpat

import "fmt"

// Event is one element of a sequence: an item id in [1, L] plus one integer
// value per attribute.
type Event struct {
	Item  int
	Attrs []int
}

// Sequence is an ordered list of events.
type Sequence []Event

// Database is the input to [Mine]: an ordered collection of sequences
// sharing the same alphabet size and attribute count. Sequences and their
// events are never mutated during mining.
type Database []Sequence

// ConstraintKind names one of the eight constraint families the arbiter
// understands. An attribute may carry constraints of several kinds at once,
// at most one of each kind.
type ConstraintKind int

const (
	LowerGap ConstraintKind = iota
	UpperGap
	LowerSpan
	UpperSpan
	LowerAverage
	UpperAverage
	LowerMedian
	UpperMedian
)

// String implements fmt.Stringer for diagnostic output.
func (k ConstraintKind) String() string {
	switch k {
	case LowerGap:
		return "lower-gap"
	case UpperGap:
		return "upper-gap"
	case LowerSpan:
		return "lower-span"
	case UpperSpan:
		return "upper-span"
	case LowerAverage:
		return "lower-average"
	case UpperAverage:
		return "upper-average"
	case LowerMedian:
		return "lower-median"
	case UpperMedian:
		return "upper-median"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(k))
	}
}

// Constraint binds one limit of one kind to one attribute index.
type Constraint struct {
	Kind  ConstraintKind
	Attr  int
	Limit int
}

// ConstraintSet is the full collection of constraints active for a mining
// run. An attribute index may appear in several entries, at most once per
// kind, or in none.
type ConstraintSet []Constraint

// Pattern is one frequent pattern produced by [Mine]. Every pattern with
// more than one item whose ActFreq reaches Theta is reported, including
// patterns that are prefixes of other reported patterns.
type Pattern struct {
	// Items is the pattern's item sequence, in extension order.
	Items []int

	// Support is freq: the number of input sequences holding at least one
	// occurrence of Items along MDD arcs (so every gap constraint holds)
	// that the span/average/median checks did not reject. Such an
	// occurrence may still be only a candidate that does not yet satisfy
	// every constraint.
	Support int

	// ActFreq is act_freq: the number of input sequences for which at
	// least one occurrence of Items also satisfies every active
	// constraint. This is the count carried in the output row (see §6 of
	// the external interface contract) and the value emission is gated on.
	ActFreq int
}

// Row renders p the way the core's single operation reports it: the
// pattern's items followed by its ActFreq as the last element.
func (p Pattern) Row() []int {
	row := make([]int, len(p.Items)+1)
	copy(row, p.Items)
	row[len(p.Items)] = p.ActFreq
	return row
}

// Result is the output of [Mine].
type Result struct {
	Patterns []Pattern
}

// Config controls a mining run. Start with [DefaultConfig] and override the
// fields you need.
type Config struct {
	// Theta is the minimum support (sequence count) a pattern must reach to
	// be considered frequent. Must be >= 1. Default: 1.
	Theta int

	// Constraints is the set of gap/span/average/median limits active for
	// this run. A nil or empty set mines unconstrained frequent patterns.
	Constraints ConstraintSet

	// AttrMin and AttrMax are per-attribute global extrema used as
	// sentinel values by the median combinators. Index i holds the bound
	// for attribute i. When left nil, Mine derives them from the database
	// by scanning every event's attribute values.
	AttrMin []int
	AttrMax []int

	// metrics, when set via WithMetrics, receives Prometheus observations
	// for this run. Left nil, Mine records nothing.
	metrics *Metrics
}

// WithMetrics returns a copy of cfg that reports run statistics to m.
func WithMetrics(cfg Config, m *Metrics) Config {
	cfg.metrics = m
	return cfg
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Theta: 1,
	}
}

// validateConfig checks that cfg's fields are internally consistent and
// returns a descriptive error if not. It does not check cfg against a
// database; numAtt-dependent checks happen once attribute count is known.
func validateConfig(cfg *Config, numAtt int) error {
	if cfg.Theta < 1 {
		return fmt.Errorf("seqpat: Theta must be >= 1, got %d", cfg.Theta)
	}
	for _, c := range cfg.Constraints {
		if c.Attr < 0 || c.Attr >= numAtt {
			return fmt.Errorf("seqpat: constraint %s references attribute %d, but database has %d attribute(s)", c.Kind, c.Attr, numAtt)
		}
	}
	if cfg.AttrMin != nil && len(cfg.AttrMin) != numAtt {
		return fmt.Errorf("seqpat: AttrMin has length %d, want %d", len(cfg.AttrMin), numAtt)
	}
	if cfg.AttrMax != nil && len(cfg.AttrMax) != numAtt {
		return fmt.Errorf("seqpat: AttrMax has length %d, want %d", len(cfg.AttrMax), numAtt)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Theta == 0 {
		cfg.Theta = 1
	}
}

// emptyResult returns a Result with a non-nil, zero-length pattern slice.
func emptyResult() *Result {
	return &Result{Patterns: []Pattern{}}
}
