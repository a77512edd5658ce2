package domain

import "github.com/samber/lo"

// Team is an ordered group of participants. Order is insertion order.
type Team []Participant

// TotalSkill is the raw sum of skills of a team.
func TotalSkill(team Team) uint64 {
	return lo.SumBy(team, func(p Participant) uint64 {
		return uint64(p.Skill)
	})
}

// CountCaptains returns how many participants carry the captain flag.
func CountCaptains(participants []Participant) int {
	return lo.CountBy(participants, func(p Participant) bool {
		return p.IsCaptain
	})
}

// Clone returns a deep copy of the teams.
func Clone(teams []Team) []Team {
	return lo.Map(teams, func(team Team, _ int) Team {
		return append(Team(nil), team...)
	})
}
