package balancer

import (
	"fmt"
	"team-lab/errors"
)

type CaptainMode int

const (
	// CaptainsNone distributes every participant freely.
	CaptainsNone CaptainMode = iota
	// CaptainsFlagged pins participants flagged IsCaptain, one per team, in input order.
	// When the flagged count differs from the team count the flags are ignored.
	CaptainsFlagged
	// CaptainsExplicit pins two participants by index, first to team 1 and second to team 2.
	CaptainsExplicit
)

type CaptainAssignment struct {
	Mode   CaptainMode
	First  *int
	Second *int
}

func NoCaptains() CaptainAssignment {
	return CaptainAssignment{Mode: CaptainsNone}
}

func FlaggedCaptains() CaptainAssignment {
	return CaptainAssignment{Mode: CaptainsFlagged}
}

func ExplicitCaptains(first, second *int) CaptainAssignment {
	return CaptainAssignment{Mode: CaptainsExplicit, First: first, Second: second}
}

// resolveCaptains returns the input indices pinned to teams 0..k-1, or nil.
func (e *Engine) resolveCaptains(req Request) ([]int, error) {
	switch req.Captains.Mode {
	case CaptainsFlagged:
		var flagged []int
		for i, p := range req.Participants {
			if p.IsCaptain {
				flagged = append(flagged, i)
			}
		}
		if len(flagged) == 0 {
			return nil, nil
		}
		if len(flagged) != req.TeamCount {
			e.log.Debug("Captain count does not match team count, ignoring captain flags",
				"captains", len(flagged), "teams", req.TeamCount)
			return nil, nil
		}
		return flagged, nil

	case CaptainsExplicit:
		first, second := req.Captains.First, req.Captains.Second
		if first == nil && second == nil {
			return nil, nil
		}
		if first == nil || second == nil {
			return nil, fmt.Errorf("%w: only one captain given", errors.ErrDuplicateOrMissingCaptain)
		}
		if *first == *second {
			return nil, fmt.Errorf("%w: both captains are participant %d", errors.ErrDuplicateOrMissingCaptain, *first)
		}
		n := len(req.Participants)
		for _, idx := range []int{*first, *second} {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: captain %d with %d participants", errors.ErrIndexOutOfRange, idx, n)
			}
		}
		if req.TeamCount != 2 {
			return nil, fmt.Errorf("%w: explicit captains need 2 teams, got %d", errors.ErrInvalidTeamCount, req.TeamCount)
		}
		return []int{*first, *second}, nil

	default:
		return nil, nil
	}
}
