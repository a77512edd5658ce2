package balancer

import (
	"fmt"
	"team-lab/domain"
	"team-lab/errors"
)

// Swap exchanges two participants between teams in place. Swapping within one
// team is a no-op. Indices are checked before anything moves, so a rejected swap
// leaves the result untouched. Captains are not protected here; callers that
// want them pinned must filter them out.
//
// The stored imbalance is not recomputed: the result is marked Stale until
// the caller runs Evaluate.
func Swap(result *domain.PartitionResult, teamA, playerA, teamB, playerB int) error {
	if result == nil {
		return fmt.Errorf("%w: no partition to swap in", errors.ErrIndexOutOfRange)
	}
	if teamA == teamB {
		return nil
	}
	teams := result.Teams
	if teamA < 0 || teamA >= len(teams) {
		return fmt.Errorf("%w: team %d of %d", errors.ErrIndexOutOfRange, teamA, len(teams))
	}
	if teamB < 0 || teamB >= len(teams) {
		return fmt.Errorf("%w: team %d of %d", errors.ErrIndexOutOfRange, teamB, len(teams))
	}
	if playerA < 0 || playerA >= len(teams[teamA]) {
		return fmt.Errorf("%w: player %d of team %d", errors.ErrIndexOutOfRange, playerA, teamA)
	}
	if playerB < 0 || playerB >= len(teams[teamB]) {
		return fmt.Errorf("%w: player %d of team %d", errors.ErrIndexOutOfRange, playerB, teamB)
	}

	teams[teamA][playerA], teams[teamB][playerB] = teams[teamB][playerB], teams[teamA][playerA]
	result.Stale = true
	return nil
}
