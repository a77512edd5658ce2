//go:generate go run go.uber.org/mock/mockgen -source=roster.go -destination=../mocks/mock_roster_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"team-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	RosterKey = "roster:current"
	TeamsKey  = "teams:last"
)

type IRosterRepository interface {
	GetRoster() (domain.Roster, error)
	SaveRoster(roster domain.Roster) error
	// GetTeams returns nil when no teams have been stored.
	GetTeams() (*domain.PartitionResult, error)
	SaveTeams(result domain.PartitionResult) error
	DeleteTeams() error
}

type RosterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRosterRepository(db *badger.DB, log *slog.Logger) RosterRepository {
	return RosterRepository{db: db, log: log}
}

type DiskParticipant struct {
	ID        string `msgpack:"id"`
	Name      string `msgpack:"name"`
	Skill     uint32 `msgpack:"skill"`
	IsCaptain bool   `msgpack:"is_captain"`
}

type DiskRoster struct {
	Participants []DiskParticipant `msgpack:"participants"`
	TeamCount    int               `msgpack:"team_count"`
}

type DiskTeams struct {
	Teams            [][]DiskParticipant `msgpack:"teams"`
	Imbalance        float64             `msgpack:"imbalance"`
	Metric           int                 `msgpack:"metric"`
	Strategy         int                 `msgpack:"strategy"`
	Trials           int                 `msgpack:"trials"`
	CaptainsAnchored bool                `msgpack:"captains_anchored"`
	Stale            bool                `msgpack:"stale"`
}

// GetRoster reads the stored roster. A missing key is not an error: the
// default roster is returned instead, like a fresh install.
func (r RosterRepository) GetRoster() (domain.Roster, error) {
	var disk DiskRoster
	found, err := r.get(RosterKey, &disk)
	if err != nil {
		return domain.Roster{}, err
	}
	if !found {
		r.log.Debug("No roster stored yet, using defaults")
		return domain.NewRoster(), nil
	}
	return toRoster(disk)
}

func (r RosterRepository) SaveRoster(roster domain.Roster) error {
	return r.set(RosterKey, fromRoster(roster))
}

func (r RosterRepository) GetTeams() (*domain.PartitionResult, error) {
	var disk DiskTeams
	found, err := r.get(TeamsKey, &disk)
	if err != nil || !found {
		return nil, err
	}
	result, err := toTeams(disk)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r RosterRepository) SaveTeams(result domain.PartitionResult) error {
	return r.set(TeamsKey, fromTeams(result))
}

func (r RosterRepository) DeleteTeams() error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(TeamsKey))
	})
}

func (r RosterRepository) get(key string, out any) (bool, error) {
	return getValue(r.db, key, out)
}

func (r RosterRepository) set(key string, value any) error {
	return setValue(r.db, key, value)
}

// getValue decodes the msgpack value stored under key. It reports false when the key is absent.
func getValue(db *badger.DB, key string, out any) (bool, error) {
	found := true
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, out)
		})
	})
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	return found, nil
}

func setValue(db *badger.DB, key string, value any) error {
	bytes, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

func fromParticipant(p domain.Participant) DiskParticipant {
	return DiskParticipant{
		ID:        p.ID.String(),
		Name:      p.Name,
		Skill:     p.Skill,
		IsCaptain: p.IsCaptain,
	}
}

func toParticipant(p DiskParticipant) (domain.Participant, error) {
	parsedID, err := uuid.Parse(p.ID)
	if err != nil {
		return domain.Participant{}, err
	}
	return domain.Participant{
		ID:        parsedID,
		Name:      p.Name,
		Skill:     p.Skill,
		IsCaptain: p.IsCaptain,
	}, nil
}

func toParticipants(disk []DiskParticipant) ([]domain.Participant, error) {
	var participants []domain.Participant
	for _, p := range disk {
		participant, err := toParticipant(p)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}
	return participants, nil
}

func fromRoster(roster domain.Roster) DiskRoster {
	return DiskRoster{
		Participants: lo.Map(roster.Participants, func(p domain.Participant, _ int) DiskParticipant {
			return fromParticipant(p)
		}),
		TeamCount: roster.TeamCount,
	}
}

func toRoster(disk DiskRoster) (domain.Roster, error) {
	participants, err := toParticipants(disk.Participants)
	if err != nil {
		return domain.Roster{}, err
	}
	return domain.Roster{Participants: participants, TeamCount: disk.TeamCount}, nil
}

func fromTeams(result domain.PartitionResult) DiskTeams {
	return DiskTeams{
		Teams: lo.Map(result.Teams, func(team domain.Team, _ int) []DiskParticipant {
			return lo.Map(team, func(p domain.Participant, _ int) DiskParticipant {
				return fromParticipant(p)
			})
		}),
		Imbalance:        result.Imbalance,
		Metric:           int(result.Metric),
		Strategy:         int(result.Strategy),
		Trials:           result.Trials,
		CaptainsAnchored: result.CaptainsAnchored,
		Stale:            result.Stale,
	}
}

func toTeams(disk DiskTeams) (domain.PartitionResult, error) {
	teams := make([]domain.Team, 0, len(disk.Teams))
	for _, members := range disk.Teams {
		team, err := toParticipants(members)
		if err != nil {
			return domain.PartitionResult{}, err
		}
		teams = append(teams, team)
	}
	return domain.PartitionResult{
		Teams:            teams,
		Imbalance:        disk.Imbalance,
		Metric:           domain.Metric(disk.Metric),
		Strategy:         domain.Strategy(disk.Strategy),
		Trials:           disk.Trials,
		CaptainsAnchored: disk.CaptainsAnchored,
		Stale:            disk.Stale,
	}, nil
}
