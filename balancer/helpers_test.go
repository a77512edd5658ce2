package balancer

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"team-lab/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestEngine(config Config) *Engine {
	return NewEngine(slog.Default(), config)
}

func players(skills ...uint32) []domain.Participant {
	out := make([]domain.Participant, len(skills))
	for i, skill := range skills {
		out[i] = domain.Participant{
			ID:    uuid.New(),
			Name:  fmt.Sprintf("P%d", i+1),
			Skill: skill,
		}
	}
	return out
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func skillsOf(team domain.Team) []uint32 {
	skills := make([]uint32, len(team))
	for i, p := range team {
		skills[i] = p.Skill
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i] < skills[j] })
	return skills
}

// requireTruePartition checks multiset equality between input and teams plus exact sizes.
func requireTruePartition(t *testing.T, input []domain.Participant, teams []domain.Team, size int) {
	t.Helper()
	req := require.New(t)
	var flattened []domain.Participant
	for _, team := range teams {
		req.Len(team, size)
		flattened = append(flattened, team...)
	}
	req.ElementsMatch(input, flattened)
}
