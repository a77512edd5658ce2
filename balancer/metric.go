package balancer

import (
	"math/bits"
	"team-lab/domain"
)

// score is an unsigned 128-bit imbalance key. Squared team sums of uint32
// skills leave the 64-bit range once teams reach a few billion points.
type score struct {
	hi, lo uint64
}

func (s score) less(o score) bool {
	if s.hi != o.hi {
		return s.hi < o.hi
	}
	return s.lo < o.lo
}

func (s score) add(o score) score {
	lo, carry := bits.Add64(s.lo, o.lo, 0)
	hi, _ := bits.Add64(s.hi, o.hi, carry)
	return score{hi: hi, lo: lo}
}

func (s score) sub(o score) score {
	lo, borrow := bits.Sub64(s.lo, o.lo, 0)
	hi, _ := bits.Sub64(s.hi, o.hi, borrow)
	return score{hi: hi, lo: lo}
}

func (s score) mul(k uint64) score {
	hi, lo := bits.Mul64(s.lo, k)
	return score{hi: hi + s.hi*k, lo: lo}
}

func (s score) float() float64 {
	return float64(s.hi)*0x1p64 + float64(s.lo)
}

func square(v uint64) score {
	hi, lo := bits.Mul64(v, v)
	return score{hi: hi, lo: lo}
}

// imbalanceKey orders partitions by spread using integers only, so ties are exact.
// For two teams it is |S1-S2|. Otherwise it is k*sum(S_i^2) - (sum S_i)^2,
// which is k times the sum of squared deviations from the mean and never negative.
func imbalanceKey(sums []uint64) score {
	if len(sums) == 2 {
		if sums[0] > sums[1] {
			return score{lo: sums[0] - sums[1]}
		}
		return score{lo: sums[1] - sums[0]}
	}
	var total uint64
	var squares score
	for _, s := range sums {
		total += s
		squares = squares.add(square(s))
	}
	return squares.mul(uint64(len(sums))).sub(square(total))
}

// metricFromKey converts an imbalanceKey back to skill units.
func metricFromKey(key score, teamCount int) (float64, domain.Metric) {
	switch {
	case teamCount == 2:
		return key.float(), domain.MetricAbsoluteDifference
	case teamCount < 2:
		return 0, domain.MetricSquaredDeviation
	}
	return key.float() / float64(teamCount), domain.MetricSquaredDeviation
}

func teamSums(teams []domain.Team) []uint64 {
	sums := make([]uint64, len(teams))
	for i, team := range teams {
		sums[i] = domain.TotalSkill(team)
	}
	return sums
}

// Evaluate computes the imbalance of existing teams, typically after swaps.
func Evaluate(teams []domain.Team) (float64, domain.Metric) {
	return metricFromKey(imbalanceKey(teamSums(teams)), len(teams))
}
