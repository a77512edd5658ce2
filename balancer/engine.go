// Package balancer splits participants into teams of equal size while keeping
// the skill spread between teams as small as possible.
//
// # Strategies
//
// Two searches are available. The exact search enumerates every candidate
// partition and keeps the first one with the strictly smallest imbalance.
// The heuristic search runs independent randomized-greedy trials and keeps
// the best one. Auto mode uses the exact search for up to two teams while the
// number of candidates stays under Config.ExactCandidateLimit.
//
// # Determinism
//
// Randomness only comes from the *rand.Rand handed to Partition. Trial seeds
// are drawn from it before any trial runs, so a given seed yields the same
// result whatever Config.Workers is. Ties between trials go to the lowest
// trial index.
//
// # Input
//
// Partition never reorders or mutates the caller's slice; it works on copies.
package balancer

import (
	"fmt"
	"log/slog"
	"math/rand"
	"team-lab/domain"
	"team-lab/errors"
)

// Search selects how Partition explores candidate partitions.
type Search int

const (
	SearchAuto Search = iota
	SearchExact
	SearchHeuristic
)

type Config struct {
	// ExactCandidateLimit caps the number of candidates the exact search may enumerate.
	ExactCandidateLimit int64
	// SmallInputSize is the participant count up to which SmallTrials are run.
	SmallInputSize int
	SmallTrials    int
	LargeTrials    int
	// Workers is the number of goroutines running heuristic trials.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		ExactCandidateLimit: 200_000,
		SmallInputSize:      10,
		SmallTrials:         1000,
		LargeTrials:         100,
		Workers:             1,
	}
}

type Request struct {
	Participants []domain.Participant
	TeamCount    int
	Captains     CaptainAssignment
	Search       Search
}

type Engine struct {
	config Config
	log    *slog.Logger
}

func NewEngine(log *slog.Logger, config Config) *Engine {
	defaults := DefaultConfig()
	if config.ExactCandidateLimit <= 0 {
		config.ExactCandidateLimit = defaults.ExactCandidateLimit
	}
	if config.SmallInputSize <= 0 {
		config.SmallInputSize = defaults.SmallInputSize
	}
	if config.SmallTrials <= 0 {
		config.SmallTrials = defaults.SmallTrials
	}
	if config.LargeTrials <= 0 {
		config.LargeTrials = defaults.LargeTrials
	}
	if config.Workers <= 0 {
		config.Workers = defaults.Workers
	}
	return &Engine{config: config, log: log}
}

// plan is a validated request: who is pinned where and who is free to move.
type plan struct {
	anchors   []domain.Participant
	pool      []domain.Participant
	teamCount int
	// fill is the number of pool members each team receives.
	fill  int
	total int
}

func (p plan) anchored() bool {
	return len(p.anchors) > 0
}

// Partition builds a new balanced partition for the request.
// A nil rng is replaced by one seeded from crypto/rand.
func (e *Engine) Partition(req Request, rng *rand.Rand) (domain.PartitionResult, error) {
	pl, err := e.newPlan(req)
	if err != nil {
		return domain.PartitionResult{}, err
	}

	var result domain.PartitionResult
	if e.useExact(pl, req.Search) {
		result = exactSearch(pl)
	} else {
		if rng == nil {
			rng = NewRand(nil)
		}
		if result, err = e.heuristicSearch(pl, rng); err != nil {
			return domain.PartitionResult{}, err
		}
	}
	result.CaptainsAnchored = pl.anchored()

	if err = verify(req.Participants, pl, result.Teams); err != nil {
		e.log.Error("Partition failed its own checks", "error", err)
		return domain.PartitionResult{}, err
	}
	e.log.Debug("Partition computed",
		"strategy", result.Strategy.String(),
		"teams", pl.teamCount,
		"participants", pl.total,
		"metric", result.Metric.String(),
		"imbalance", result.Imbalance,
		"trials", result.Trials)
	return result, nil
}

func (e *Engine) newPlan(req Request) (plan, error) {
	n := len(req.Participants)
	if n == 0 {
		return plan{}, errors.ErrEmptyInput
	}
	if req.TeamCount <= 0 {
		return plan{}, fmt.Errorf("%w: %d", errors.ErrInvalidTeamCount, req.TeamCount)
	}

	anchorIdx, err := e.resolveCaptains(req)
	if err != nil {
		return plan{}, err
	}

	free := n - len(anchorIdx)
	if free%req.TeamCount != 0 {
		return plan{}, fmt.Errorf("%w: %d participants cannot be split into %d teams",
			errors.ErrInvalidTeamCount, free, req.TeamCount)
	}

	pinned := make(map[int]bool, len(anchorIdx))
	anchors := make([]domain.Participant, 0, len(anchorIdx))
	for _, idx := range anchorIdx {
		pinned[idx] = true
		anchors = append(anchors, req.Participants[idx])
	}
	pool := make([]domain.Participant, 0, free)
	for i, p := range req.Participants {
		if !pinned[i] {
			pool = append(pool, p)
		}
	}

	return plan{
		anchors:   anchors,
		pool:      pool,
		teamCount: req.TeamCount,
		fill:      free / req.TeamCount,
		total:     n,
	}, nil
}

func (e *Engine) useExact(pl plan, search Search) bool {
	switch search {
	case SearchHeuristic:
		return false
	case SearchExact:
		if withinLimit(pl, e.config.ExactCandidateLimit) {
			return true
		}
		e.log.Warn("Exact search space too large, falling back to heuristic",
			"participants", pl.total, "teams", pl.teamCount, "limit", e.config.ExactCandidateLimit)
		return false
	default:
		return pl.teamCount <= 2 && withinLimit(pl, e.config.ExactCandidateLimit)
	}
}

func (e *Engine) trialsFor(total int) int {
	if total <= e.config.SmallInputSize {
		return e.config.SmallTrials
	}
	return e.config.LargeTrials
}
