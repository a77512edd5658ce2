// Package projection turns teams, rosters and wheels into text for people:
// the clipboard export and the terminal tables.
// It never touches storage or the engine.
package projection

import (
	"fmt"
	"strings"
	"team-lab/domain"
)

// ExportText formats teams the way they are pasted into a chat:
//
//	Team 1 (60):
//	- Alice (10)
//	- 👑 Bob (50)
//
// Sums and skills are left out when hideSkills is set.
func ExportText(result domain.PartitionResult, hideSkills bool) string {
	var sb strings.Builder
	for i, team := range result.Teams {
		if hideSkills {
			fmt.Fprintf(&sb, "Team %d:\n", i+1)
		} else {
			fmt.Fprintf(&sb, "Team %d (%d):\n", i+1, domain.TotalSkill(team))
		}
		for _, p := range team {
			fmt.Fprintf(&sb, "- %s\n", p.PrettyName(hideSkills))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
