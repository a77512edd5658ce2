package balancer

import (
	"log/slog"
	"team-lab/domain"
	"team-lab/errors"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestEngine_Partition_Exact_Finds_Perfect_Split(t *testing.T) {
	req := require.New(t)
	engine := NewEngine(logs.GetLoggerFromLevel(slog.LevelDebug), DefaultConfig())
	input := players(10, 20, 30, 40)

	result, err := engine.Partition(Request{Participants: input, TeamCount: 2}, nil)
	req.NoError(err)

	req.Equal(domain.StrategyExact, result.Strategy)
	req.Equal(domain.MetricAbsoluteDifference, result.Metric)
	req.Zero(result.Imbalance)
	req.Len(result.Teams, 2)
	req.Equal([]uint32{10, 40}, skillsOf(result.Teams[0]))
	req.Equal([]uint32{20, 30}, skillsOf(result.Teams[1]))
	requireTruePartition(t, input, result.Teams, 2)
}

func TestEngine_Partition_Exact_Keeps_First_Minimum(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())
	// {1,4} and {2,3} are both perfect; {1,4} is met first
	input := players(1, 2, 3, 4)

	result, err := engine.Partition(Request{Participants: input, TeamCount: 2}, nil)
	req.NoError(err)
	req.Equal([]domain.Participant{input[0], input[3]}, []domain.Participant(result.Teams[0]))
	req.Equal([]domain.Participant{input[1], input[2]}, []domain.Participant(result.Teams[1]))
}

func TestEngine_Partition_Completeness_And_Sizes(t *testing.T) {
	engine := newTestEngine(DefaultConfig())

	tests := []struct {
		name      string
		skills    []uint32
		teamCount int
		captains  CaptainAssignment
		flags     []int
		size      int
		search    Search
	}{
		{name: "Two teams exact", skills: []uint32{5, 9, 1, 7, 3, 8}, teamCount: 2, size: 3},
		{name: "Two teams heuristic", skills: []uint32{5, 9, 1, 7, 3, 8, 2, 2, 6, 4, 11, 0}, teamCount: 2, size: 6, search: SearchHeuristic},
		{name: "Four teams", skills: []uint32{5, 9, 1, 7, 3, 8, 2, 2, 6, 4, 11, 0}, teamCount: 4, size: 3},
		{name: "Single team", skills: []uint32{5, 9, 1}, teamCount: 1, size: 3},
		{name: "Flagged captains three teams", skills: []uint32{5, 9, 1, 7, 3, 8, 2, 2, 6}, teamCount: 3, captains: FlaggedCaptains(), flags: []int{0, 4, 8}, size: 3},
		{name: "Only captains", skills: []uint32{5, 9}, teamCount: 2, captains: FlaggedCaptains(), flags: []int{0, 1}, size: 1},
		{name: "Duplicated participants", skills: []uint32{3, 3, 3, 3}, teamCount: 2, size: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			input := players(tt.skills...)
			if tt.name == "Duplicated participants" {
				input = []domain.Participant{input[0], input[0], input[1], input[1]}
			}
			for _, idx := range tt.flags {
				input[idx].IsCaptain = true
			}

			result, err := engine.Partition(Request{
				Participants: input,
				TeamCount:    tt.teamCount,
				Captains:     tt.captains,
				Search:       tt.search,
			}, seeded(7))
			req.NoError(err)
			req.Len(result.Teams, tt.teamCount)
			requireTruePartition(t, input, result.Teams, tt.size)
		})
	}
}

func TestEngine_Partition_Explicit_Captains_Are_Anchored(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())
	input := players(50, 45, 10, 20)

	for _, search := range []Search{SearchAuto, SearchExact, SearchHeuristic} {
		result, err := engine.Partition(Request{
			Participants: input,
			TeamCount:    2,
			Captains:     ExplicitCaptains(lo.ToPtr(0), lo.ToPtr(1)),
			Search:       search,
		}, seeded(42))
		req.NoError(err)
		req.True(result.CaptainsAnchored)
		req.Equal(input[0], result.Teams[0][0])
		req.Equal(input[1], result.Teams[1][0])
		req.NotContains(result.Teams[0], input[1])
		req.NotContains(result.Teams[1], input[0])
		requireTruePartition(t, input, result.Teams, 2)
	}
}

func TestEngine_Partition_Explicit_Captains_Best_Split(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())
	input := players(50, 45, 10, 20, 30, 5)

	result, err := engine.Partition(Request{
		Participants: input,
		TeamCount:    2,
		Captains:     ExplicitCaptains(lo.ToPtr(0), lo.ToPtr(1)),
	}, nil)
	req.NoError(err)
	// 50+10+20 = 80 against 45+30+5 = 80
	req.Zero(result.Imbalance)
	req.Equal([]domain.Participant{input[0], input[2], input[3]}, []domain.Participant(result.Teams[0]))
	req.Equal([]domain.Participant{input[1], input[4], input[5]}, []domain.Participant(result.Teams[1]))
}

func TestEngine_Partition_Flagged_Captains_One_Per_Team(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())
	input := players(50, 45, 10, 20, 30, 5, 15, 25, 35)
	input[1].IsCaptain = true
	input[4].IsCaptain = true
	input[7].IsCaptain = true

	result, err := engine.Partition(Request{Participants: input, TeamCount: 3, Captains: FlaggedCaptains()}, seeded(3))
	req.NoError(err)
	req.True(result.CaptainsAnchored)
	req.Equal(domain.StrategyHeuristic, result.Strategy)
	req.Equal(domain.MetricSquaredDeviation, result.Metric)
	for team, captain := range []domain.Participant{input[1], input[4], input[7]} {
		req.Equal(captain, result.Teams[team][0])
		req.Equal(1, domain.CountCaptains(result.Teams[team]))
	}
}

func TestEngine_Partition_Flagged_Captain_Count_Mismatch_Falls_Back(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())
	// One captain for two teams: flags are ignored and everybody is distributed freely.
	input := players(40, 30, 20, 10)
	input[3].IsCaptain = true

	result, err := engine.Partition(Request{Participants: input, TeamCount: 2, Captains: FlaggedCaptains()}, nil)
	req.NoError(err)
	req.False(result.CaptainsAnchored)
	req.Zero(result.Imbalance)
	requireTruePartition(t, input, result.Teams, 2)

	// Same split as with no captains at all.
	plain, err := engine.Partition(Request{Participants: input, TeamCount: 2}, nil)
	req.NoError(err)
	req.Equal(plain.Teams, result.Teams)
}

func TestEngine_Partition_Validation(t *testing.T) {
	engine := newTestEngine(DefaultConfig())
	flagged := players(1, 2, 3, 4, 5)
	flagged[0].IsCaptain = true
	flagged[1].IsCaptain = true

	tests := []struct {
		name     string
		request  Request
		expected error
	}{
		{
			name:     "Five participants into two teams",
			request:  Request{Participants: players(1, 2, 3, 4, 5), TeamCount: 2},
			expected: errors.ErrInvalidTeamCount,
		},
		{
			name:     "Zero teams",
			request:  Request{Participants: players(1, 2), TeamCount: 0},
			expected: errors.ErrInvalidTeamCount,
		},
		{
			name:     "Negative teams",
			request:  Request{Participants: players(1, 2), TeamCount: -2},
			expected: errors.ErrInvalidTeamCount,
		},
		{
			name:     "Empty input",
			request:  Request{TeamCount: 2},
			expected: errors.ErrEmptyInput,
		},
		{
			name:     "Remaining participants do not split evenly",
			request:  Request{Participants: flagged, TeamCount: 2, Captains: FlaggedCaptains()},
			expected: errors.ErrInvalidTeamCount,
		},
		{
			name:     "Same explicit captain twice",
			request:  Request{Participants: players(1, 2, 3, 4), TeamCount: 2, Captains: ExplicitCaptains(lo.ToPtr(1), lo.ToPtr(1))},
			expected: errors.ErrDuplicateOrMissingCaptain,
		},
		{
			name:     "Only first explicit captain",
			request:  Request{Participants: players(1, 2, 3, 4), TeamCount: 2, Captains: ExplicitCaptains(lo.ToPtr(1), nil)},
			expected: errors.ErrDuplicateOrMissingCaptain,
		},
		{
			name:     "Only second explicit captain",
			request:  Request{Participants: players(1, 2, 3, 4), TeamCount: 2, Captains: ExplicitCaptains(nil, lo.ToPtr(2))},
			expected: errors.ErrDuplicateOrMissingCaptain,
		},
		{
			name:     "Explicit captain outside input",
			request:  Request{Participants: players(1, 2, 3, 4), TeamCount: 2, Captains: ExplicitCaptains(lo.ToPtr(0), lo.ToPtr(4))},
			expected: errors.ErrIndexOutOfRange,
		},
		{
			name:     "Explicit captains with three teams",
			request:  Request{Participants: players(1, 2, 3, 4, 5, 6, 7, 8, 9), TeamCount: 3, Captains: ExplicitCaptains(lo.ToPtr(0), lo.ToPtr(1))},
			expected: errors.ErrInvalidTeamCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := engine.Partition(tt.request, seeded(1))
			req.ErrorIs(err, tt.expected)
			req.Empty(result.Teams)
			req.Zero(result.Imbalance)
		})
	}
}

func TestEngine_Partition_Explicit_Captains_Unset_Means_None(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())
	input := players(10, 20, 30, 40)

	result, err := engine.Partition(Request{Participants: input, TeamCount: 2, Captains: ExplicitCaptains(nil, nil)}, nil)
	req.NoError(err)
	req.False(result.CaptainsAnchored)
	req.Zero(result.Imbalance)
}

func TestEngine_Partition_Does_Not_Touch_Input(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())
	input := players(9, 1, 8, 2, 7, 3, 6, 4, 5, 5, 11, 13)
	snapshot := append([]domain.Participant(nil), input...)

	_, err := engine.Partition(Request{Participants: input, TeamCount: 3, Search: SearchHeuristic}, seeded(11))
	req.NoError(err)
	req.Equal(snapshot, input)
}

func TestEngine_Partition_Is_Deterministic_For_A_Seed(t *testing.T) {
	req := require.New(t)
	input := players(9, 1, 8, 2, 7, 3, 6, 4, 5, 5, 11, 13, 21, 17, 19, 23)

	sequential := newTestEngine(Config{Workers: 1})
	parallel := newTestEngine(Config{Workers: 4})

	first, err := sequential.Partition(Request{Participants: input, TeamCount: 4}, seeded(2024))
	req.NoError(err)
	second, err := sequential.Partition(Request{Participants: input, TeamCount: 4}, seeded(2024))
	req.NoError(err)
	third, err := parallel.Partition(Request{Participants: input, TeamCount: 4}, seeded(2024))
	req.NoError(err)

	req.Equal(first, second)
	req.Equal(first, third)
}

func TestEngine_Partition_Trials_Depend_On_Input_Size(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())

	small, err := engine.Partition(Request{Participants: players(1, 2, 3, 4, 5, 6, 7, 8, 9), TeamCount: 3}, seeded(5))
	req.NoError(err)
	req.Equal(domain.StrategyHeuristic, small.Strategy)
	req.Equal(1000, small.Trials)

	large, err := engine.Partition(Request{Participants: players(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12), TeamCount: 3}, seeded(5))
	req.NoError(err)
	req.Equal(100, large.Trials)
}

func TestEngine_Partition_Large_Two_Team_Input_Uses_Heuristic(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(DefaultConfig())
	skills := make([]uint32, 24)
	for i := range skills {
		skills[i] = uint32(i*7%31 + 1)
	}
	input := players(skills...)

	result, err := engine.Partition(Request{Participants: input, TeamCount: 2}, seeded(9))
	req.NoError(err)
	req.Equal(domain.StrategyHeuristic, result.Strategy)
	requireTruePartition(t, input, result.Teams, 12)

	// Forcing the exact search past the limit falls back as well.
	forced, err := engine.Partition(Request{Participants: input, TeamCount: 2, Search: SearchExact}, seeded(9))
	req.NoError(err)
	req.Equal(domain.StrategyHeuristic, forced.Strategy)
}
