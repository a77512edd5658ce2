package domain

// Metric names the imbalance measure stored in a PartitionResult.
type Metric int

const (
	// MetricAbsoluteDifference is |S1 - S2|, used for exactly two teams.
	MetricAbsoluteDifference Metric = iota
	// MetricSquaredDeviation is the sum of squared deviations of team sums
	// from their mean (unnormalised population variance).
	MetricSquaredDeviation
)

func (m Metric) String() string {
	switch m {
	case MetricAbsoluteDifference:
		return "absolute difference"
	case MetricSquaredDeviation:
		return "squared deviation"
	default:
		return "unknown"
	}
}

// Strategy names the search used to build a partition.
type Strategy int

const (
	StrategyExact Strategy = iota
	StrategyHeuristic
)

func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyHeuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// PartitionResult holds teams produced by the engine.
// Stale is set once a swap happened: Imbalance then describes the
// partition before the swap until it is evaluated again.
type PartitionResult struct {
	Teams            []Team
	Imbalance        float64
	Metric           Metric
	Strategy         Strategy
	Trials           int
	CaptainsAnchored bool
	Stale            bool
}
