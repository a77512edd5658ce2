package balancer

import (
	"fmt"
	"team-lab/domain"
	"team-lab/errors"
)

// verify checks that teams form a true partition of the input with exact sizes.
func verify(input []domain.Participant, pl plan, teams []domain.Team) error {
	if len(teams) != pl.teamCount {
		return fmt.Errorf("%w: %d teams instead of %d", errors.ErrInvariantViolated, len(teams), pl.teamCount)
	}
	size := pl.fill
	if pl.anchored() {
		size++
	}

	seen := make(map[domain.Participant]int, len(input))
	for _, p := range input {
		seen[p]++
	}
	for i, team := range teams {
		if len(team) != size {
			return fmt.Errorf("%w: team %d has %d members instead of %d", errors.ErrInvariantViolated, i, len(team), size)
		}
		for _, p := range team {
			seen[p]--
			if seen[p] < 0 {
				return fmt.Errorf("%w: %q placed more than once", errors.ErrInvariantViolated, p.DisplayName())
			}
		}
	}
	for p, left := range seen {
		if left != 0 {
			return fmt.Errorf("%w: %q was not placed", errors.ErrInvariantViolated, p.DisplayName())
		}
	}
	return nil
}
