package balancer

import (
	"math/rand"
	"team-lab/domain"

	"golang.org/x/sync/errgroup"
)

// lowestSumBias is the probability of sending a member to the lightest eligible team
// rather than a random eligible one.
const lowestSumBias = 0.5

type trialOutcome struct {
	teams []domain.Team
	key   score
}

// heuristicSearch runs independent shuffle-and-fill trials and keeps the one
// with the lowest imbalance, the lowest trial index winning ties.
func (e *Engine) heuristicSearch(pl plan, rng *rand.Rand) (domain.PartitionResult, error) {
	trials := e.trialsFor(pl.total)
	seeds := make([]int64, trials)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	outcomes := make([]trialOutcome, trials)
	if e.config.Workers <= 1 {
		for i, seed := range seeds {
			outcomes[i] = runTrial(pl, rand.New(rand.NewSource(seed)))
		}
	} else {
		var g errgroup.Group
		g.SetLimit(e.config.Workers)
		for i, seed := range seeds {
			g.Go(func() error {
				outcomes[i] = runTrial(pl, rand.New(rand.NewSource(seed)))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return domain.PartitionResult{}, err
		}
	}

	best := 0
	for i := 1; i < len(outcomes); i++ {
		if outcomes[i].key.less(outcomes[best].key) {
			best = i
		}
	}

	imbalance, metric := metricFromKey(outcomes[best].key, pl.teamCount)
	return domain.PartitionResult{
		Teams:     outcomes[best].teams,
		Imbalance: imbalance,
		Metric:    metric,
		Strategy:  domain.StrategyHeuristic,
		Trials:    trials,
	}, nil
}

// runTrial shuffles a copy of the pool and fills teams greedily with a random twist:
// half of the time the lightest eligible team, otherwise any eligible team.
func runTrial(pl plan, rng *rand.Rand) trialOutcome {
	order := make([]domain.Participant, len(pl.pool))
	copy(order, pl.pool)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	teams := make([]domain.Team, pl.teamCount)
	sums := make([]uint64, pl.teamCount)
	for team := range teams {
		teams[team] = make(domain.Team, 0, pl.fill+len(pl.anchors)/pl.teamCount)
		if pl.anchored() {
			teams[team] = append(teams[team], pl.anchors[team])
			sums[team] = uint64(pl.anchors[team].Skill)
		}
	}

	base := len(pl.anchors) / pl.teamCount
	eligible := make([]int, 0, pl.teamCount)
	for _, p := range order {
		eligible = eligible[:0]
		for team := range teams {
			if len(teams[team])-base < pl.fill {
				eligible = append(eligible, team)
			}
		}

		var target int
		if rng.Float64() < lowestSumBias {
			target = eligible[0]
			for _, team := range eligible[1:] {
				if sums[team] < sums[target] {
					target = team
				}
			}
		} else {
			target = eligible[rng.Intn(len(eligible))]
		}
		teams[target] = append(teams[target], p)
		sums[target] += uint64(p.Skill)
	}

	return trialOutcome{teams: teams, key: imbalanceKey(sums)}
}
