package services

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"math/rand"
	"team-lab/balancer"
	"team-lab/contract"
	"team-lab/domain"
	"team-lab/errors"
	"team-lab/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ITeamService interface {
	Roster() (domain.Roster, error)
	AddParticipant(p domain.Participant) (domain.Participant, error)
	UpdateParticipant(index int, p domain.Participant) (domain.Participant, error)
	RemoveParticipant(index int) (domain.Participant, error)
	ImportRoster(roster domain.Roster) error
	SetTeamCount(n int) error
	CanCreateTeams() (bool, error)
	CreateTeams(rng *rand.Rand) (domain.PartitionResult, error)
	Recreate(rng *rand.Rand) (domain.PartitionResult, error)
	Swap(teamA, playerA, teamB, playerB int) (domain.PartitionResult, error)
	Evaluate() (domain.PartitionResult, error)
	Teams() (domain.PartitionResult, error)
	Reset() error
}

var _ ITeamService = (*TeamService)(nil)

// TeamService is the caller around the partition engine: it owns the roster
// a user edits, gates team creation and keeps the last teams around for swaps.
type TeamService struct {
	repository  repositories.IRosterRepository
	partitioner contract.IPartitioner
	validate    *validator.Validate
	log         *slog.Logger
}

func NewTeamService(repository repositories.IRosterRepository, partitioner contract.IPartitioner, log *slog.Logger) *TeamService {
	return &TeamService{
		repository:  repository,
		partitioner: partitioner,
		validate:    validator.New(),
		log:         log,
	}
}

func (s *TeamService) Roster() (domain.Roster, error) {
	return s.repository.GetRoster()
}

func (s *TeamService) AddParticipant(p domain.Participant) (domain.Participant, error) {
	if err := s.validateParticipant(p); err != nil {
		return domain.Participant{}, err
	}
	roster, err := s.repository.GetRoster()
	if err != nil {
		return domain.Participant{}, err
	}
	if p.IsCaptain && domain.CountCaptains(roster.Participants) >= roster.TeamCount {
		return domain.Participant{}, errors.ErrTooManyCaptains
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	roster = roster.Clone()
	roster.Participants = append(roster.Participants, p)
	if err = s.repository.SaveRoster(roster); err != nil {
		return domain.Participant{}, err
	}
	s.log.Debug("Participant added", "name", p.DisplayName(), "skill", p.Skill, "captain", p.IsCaptain)
	return p, nil
}

// UpdateParticipant replaces the participant at index, keeping its ID.
func (s *TeamService) UpdateParticipant(index int, p domain.Participant) (domain.Participant, error) {
	if err := s.validateParticipant(p); err != nil {
		return domain.Participant{}, err
	}
	roster, err := s.repository.GetRoster()
	if err != nil {
		return domain.Participant{}, err
	}
	if index < 0 || index >= len(roster.Participants) {
		return domain.Participant{}, fmt.Errorf("%w: participant %d of %d", errors.ErrIndexOutOfRange, index, len(roster.Participants))
	}
	current := roster.Participants[index]
	if p.IsCaptain && !current.IsCaptain && domain.CountCaptains(roster.Participants) >= roster.TeamCount {
		return domain.Participant{}, errors.ErrTooManyCaptains
	}

	p.ID = current.ID
	roster = roster.Clone()
	roster.Participants[index] = p
	if err = s.repository.SaveRoster(roster); err != nil {
		return domain.Participant{}, err
	}
	return p, nil
}

func (s *TeamService) RemoveParticipant(index int) (domain.Participant, error) {
	roster, err := s.repository.GetRoster()
	if err != nil {
		return domain.Participant{}, err
	}
	if index < 0 || index >= len(roster.Participants) {
		return domain.Participant{}, fmt.Errorf("%w: participant %d of %d", errors.ErrIndexOutOfRange, index, len(roster.Participants))
	}
	removed := roster.Participants[index]
	roster = roster.Clone()
	roster.Participants = append(roster.Participants[:index], roster.Participants[index+1:]...)
	if err = s.repository.SaveRoster(roster); err != nil {
		return domain.Participant{}, err
	}
	return removed, nil
}

// ImportRoster replaces the whole roster, checking it the same way single edits are.
func (s *TeamService) ImportRoster(roster domain.Roster) error {
	if roster.TeamCount < domain.MinTeamCount || roster.TeamCount > domain.MaxTeamCount {
		return fmt.Errorf("%w: %d not in %d..%d", errors.ErrInvalidTeamCount, roster.TeamCount, domain.MinTeamCount, domain.MaxTeamCount)
	}
	if captains := domain.CountCaptains(roster.Participants); captains > roster.TeamCount {
		return fmt.Errorf("%w: %d captains for %d teams", errors.ErrTooManyCaptains, captains, roster.TeamCount)
	}
	roster = roster.Clone()
	for i, p := range roster.Participants {
		if err := s.validateParticipant(p); err != nil {
			return fmt.Errorf("participant %d: %w", i+1, err)
		}
		if p.ID == uuid.Nil {
			roster.Participants[i].ID = uuid.New()
		}
	}
	if err := s.repository.SaveRoster(roster); err != nil {
		return err
	}
	s.log.Info("Roster imported", "participants", len(roster.Participants), "teams", roster.TeamCount)
	return nil
}

// SetTeamCount changes the number of teams. Captain flags are cleared on
// change since they were picked for the previous count.
func (s *TeamService) SetTeamCount(n int) error {
	if n < domain.MinTeamCount || n > domain.MaxTeamCount {
		return fmt.Errorf("%w: %d not in %d..%d", errors.ErrInvalidTeamCount, n, domain.MinTeamCount, domain.MaxTeamCount)
	}
	roster, err := s.repository.GetRoster()
	if err != nil {
		return err
	}
	if roster.TeamCount == n {
		return nil
	}
	roster = roster.Clone()
	roster.TeamCount = n
	for i := range roster.Participants {
		roster.Participants[i].IsCaptain = false
	}
	return s.repository.SaveRoster(roster)
}

func (s *TeamService) CanCreateTeams() (bool, error) {
	roster, err := s.repository.GetRoster()
	if err != nil {
		return false, err
	}
	return roster.ReadyForTeams(), nil
}

func (s *TeamService) CreateTeams(rng *rand.Rand) (domain.PartitionResult, error) {
	roster, err := s.repository.GetRoster()
	if err != nil {
		return domain.PartitionResult{}, err
	}
	if !roster.ReadyForTeams() {
		return domain.PartitionResult{}, notReady(roster)
	}
	if err = s.repository.SaveRoster(roster); err != nil {
		return domain.PartitionResult{}, err
	}
	return s.partition(roster, rng)
}

// Recreate draws new teams from the stored roster, replacing the previous ones.
func (s *TeamService) Recreate(rng *rand.Rand) (domain.PartitionResult, error) {
	previous, err := s.repository.GetTeams()
	if err != nil {
		return domain.PartitionResult{}, err
	}
	if previous == nil {
		return domain.PartitionResult{}, errors.ErrNoTeams
	}
	roster, err := s.repository.GetRoster()
	if err != nil {
		return domain.PartitionResult{}, err
	}
	if !roster.ReadyForTeams() {
		return domain.PartitionResult{}, notReady(roster)
	}
	return s.partition(roster, rng)
}

func notReady(roster domain.Roster) error {
	return fmt.Errorf("%w: %d participants, %d teams, %d captains",
		errors.ErrRosterNotReady, len(roster.Participants), roster.TeamCount, domain.CountCaptains(roster.Participants))
}

func (s *TeamService) partition(roster domain.Roster, rng *rand.Rand) (domain.PartitionResult, error) {
	result, err := s.partitioner.Partition(balancer.Request{
		Participants: roster.Participants,
		TeamCount:    roster.TeamCount,
		Captains:     balancer.FlaggedCaptains(),
	}, rng)
	if err != nil {
		return domain.PartitionResult{}, err
	}
	if err = s.repository.SaveTeams(result); err != nil {
		return domain.PartitionResult{}, err
	}
	s.log.Info("Teams created", "teams", len(result.Teams), "imbalance", result.Imbalance, "strategy", result.Strategy.String())
	return result, nil
}

// Swap exchanges two participants of the last teams. Captains cannot be the
// target of a swap, although a captain may be the one moved.
func (s *TeamService) Swap(teamA, playerA, teamB, playerB int) (domain.PartitionResult, error) {
	result, err := s.Teams()
	if err != nil {
		return domain.PartitionResult{}, err
	}
	if teamA != teamB && teamB >= 0 && teamB < len(result.Teams) &&
		playerB >= 0 && playerB < len(result.Teams[teamB]) && result.Teams[teamB][playerB].IsCaptain {
		return domain.PartitionResult{}, fmt.Errorf("%w: %s", errors.ErrCaptainSwap, result.Teams[teamB][playerB].DisplayName())
	}
	result.Teams = domain.Clone(result.Teams)
	if err = balancer.Swap(&result, teamA, playerA, teamB, playerB); err != nil {
		return domain.PartitionResult{}, err
	}
	if err = s.repository.SaveTeams(result); err != nil {
		return domain.PartitionResult{}, err
	}
	return result, nil
}

// Evaluate refreshes the imbalance of the last teams after swaps.
func (s *TeamService) Evaluate() (domain.PartitionResult, error) {
	result, err := s.Teams()
	if err != nil {
		return domain.PartitionResult{}, err
	}
	if !result.Stale {
		return result, nil
	}
	result.Imbalance, result.Metric = balancer.Evaluate(result.Teams)
	result.Stale = false
	if err = s.repository.SaveTeams(result); err != nil {
		return domain.PartitionResult{}, err
	}
	return result, nil
}

func (s *TeamService) Teams() (domain.PartitionResult, error) {
	result, err := s.repository.GetTeams()
	if err != nil {
		return domain.PartitionResult{}, err
	}
	if result == nil {
		return domain.PartitionResult{}, errors.ErrNoTeams
	}
	return *result, nil
}

// Reset forgets every participant and team and restores the default team count.
func (s *TeamService) Reset() error {
	if err := s.repository.SaveRoster(domain.NewRoster()); err != nil {
		return err
	}
	return s.repository.DeleteTeams()
}

func (s *TeamService) validateParticipant(p domain.Participant) error {
	err := s.validate.Struct(p)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if stderrors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			if fe.Field() == "Skill" {
				return fmt.Errorf("%w: %d above %d", errors.ErrSkillOutOfRange, p.Skill, domain.MaxSkill)
			}
		}
	}
	return err
}
