package domain

const (
	MinTeamCount     = 2
	MaxTeamCount     = 20
	MaxSkill         = 35000
	DefaultTeamCount = 2
)

// Roster is the participant list a user edits between draws, with the
// last team count they asked for.
type Roster struct {
	Participants []Participant
	TeamCount    int
}

func NewRoster() Roster {
	return Roster{TeamCount: DefaultTeamCount}
}

// HideSkills reports whether skills carry no information at all,
// in which case listings show names only.
func (r Roster) HideSkills() bool {
	for _, p := range r.Participants {
		if p.Skill != 0 {
			return false
		}
	}
	return true
}

// ReadyForTeams mirrors the rule gating team creation: a non-empty roster
// that divides evenly, with either no captains or at least one per team
// in a multiple of the team count.
func (r Roster) ReadyForTeams() bool {
	n := len(r.Participants)
	if n == 0 || r.TeamCount <= 0 || n%r.TeamCount != 0 {
		return false
	}
	captains := CountCaptains(r.Participants)
	if captains == 0 {
		return true
	}
	return captains%r.TeamCount == 0 && captains >= r.TeamCount
}

// Clone returns a roster that shares no backing array with r.
func (r Roster) Clone() Roster {
	return Roster{
		Participants: append([]Participant(nil), r.Participants...),
		TeamCount:    r.TeamCount,
	}
}
