package balancer

import (
	"math/big"
	"team-lab/domain"
)

const unassigned = -1

// candidateCount is the number of partitions exactSearch visits.
// Anchored teams are distinguishable; free teams are not, so each free team
// starts with the first member still unassigned.
func candidateCount(pl plan) *big.Int {
	count := big.NewInt(1)
	if pl.fill == 0 {
		return count
	}
	remaining := int64(len(pl.pool))
	fill := int64(pl.fill)
	for team := 0; team < pl.teamCount-1; team++ {
		var ways big.Int
		if pl.anchored() {
			ways.Binomial(remaining, fill)
		} else {
			ways.Binomial(remaining-1, fill-1)
		}
		count.Mul(count, &ways)
		remaining -= fill
	}
	return count
}

func withinLimit(pl plan, limit int64) bool {
	return candidateCount(pl).Cmp(big.NewInt(limit)) <= 0
}

type exhaustive struct {
	pl       plan
	skills   []uint64
	assigned []int
	sums     []uint64
	best     []int
	bestKey  score
	found    bool
}

// exactSearch enumerates member combinations team by team in lexicographic
// order and keeps the first partition with the strictly smallest imbalance.
func exactSearch(pl plan) domain.PartitionResult {
	s := &exhaustive{
		pl:       pl,
		skills:   make([]uint64, len(pl.pool)),
		assigned: make([]int, len(pl.pool)),
		sums:     make([]uint64, pl.teamCount),
	}
	for i, p := range pl.pool {
		s.skills[i] = uint64(p.Skill)
		s.assigned[i] = unassigned
	}
	for team, captain := range pl.anchors {
		s.sums[team] = uint64(captain.Skill)
	}

	if pl.teamCount == 1 {
		s.leaf(0)
	} else {
		s.fillTeam(0, 0, pl.fill)
	}

	imbalance, metric := metricFromKey(s.bestKey, pl.teamCount)
	return domain.PartitionResult{
		Teams:     buildTeams(pl, s.best),
		Imbalance: imbalance,
		Metric:    metric,
		Strategy:  domain.StrategyExact,
		Trials:    1,
	}
}

func (s *exhaustive) fillTeam(team, start, need int) {
	if need == 0 {
		if team+2 == s.pl.teamCount {
			s.leaf(team + 1)
			return
		}
		s.fillTeam(team+1, 0, s.pl.fill)
		return
	}
	opening := need == s.pl.fill
	for i := start; i < len(s.assigned); i++ {
		if s.assigned[i] != unassigned {
			continue
		}
		s.assigned[i] = team
		s.sums[team] += s.skills[i]
		s.fillTeam(team, i+1, need-1)
		s.sums[team] -= s.skills[i]
		s.assigned[i] = unassigned
		if opening && !s.pl.anchored() {
			break
		}
	}
}

// leaf gives every member left to the last team and scores the candidate.
func (s *exhaustive) leaf(last int) {
	var rest []int
	for i, team := range s.assigned {
		if team == unassigned {
			rest = append(rest, i)
			s.assigned[i] = last
			s.sums[last] += s.skills[i]
		}
	}

	key := imbalanceKey(s.sums)
	if !s.found || key.less(s.bestKey) {
		s.found = true
		s.bestKey = key
		s.best = append(s.best[:0], s.assigned...)
	}

	for _, i := range rest {
		s.assigned[i] = unassigned
		s.sums[last] -= s.skills[i]
	}
}

// buildTeams lays out teams from a pool assignment, captains first.
func buildTeams(pl plan, assignment []int) []domain.Team {
	teams := make([]domain.Team, pl.teamCount)
	for team := range teams {
		size := pl.fill
		if pl.anchored() {
			size++
		}
		teams[team] = make(domain.Team, 0, size)
		if pl.anchored() {
			teams[team] = append(teams[team], pl.anchors[team])
		}
	}
	for i, team := range assignment {
		teams[team] = append(teams[team], pl.pool[i])
	}
	return teams
}
