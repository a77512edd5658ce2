package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"team-lab/domain"
	"team-lab/errors"
	"team-lab/repositories"
	"team-lab/wheel"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IWheelService interface {
	Wheel() (domain.Wheel, error)
	Add(label string, weight uint32) (domain.Choice, error)
	// Remove sets a choice aside when soft is true, otherwise forgets it.
	Remove(label string, soft bool) error
	Restore(label string) error
	// Clear empties the wheel, choices set aside included.
	Clear() error
	Spin(rng *rand.Rand) (domain.Choice, error)
}

var _ IWheelService = (*WheelService)(nil)

type WheelService struct {
	repository repositories.IWheelRepository
	log        *slog.Logger
}

func NewWheelService(repository repositories.IWheelRepository, log *slog.Logger) *WheelService {
	return &WheelService{repository: repository, log: log}
}

func (s *WheelService) Wheel() (domain.Wheel, error) {
	return s.repository.GetWheel()
}

// Add puts a new choice on the wheel. Labels are trimmed and kept on a single
// line; a zero weight defaults to 1.
func (s *WheelService) Add(label string, weight uint32) (domain.Choice, error) {
	label = strings.TrimSpace(strings.ReplaceAll(label, "\n", " "))
	if label == "" {
		return domain.Choice{}, errors.ErrEmptyLabel
	}
	if weight == 0 {
		weight = domain.DefaultWeight
	}
	current, err := s.repository.GetWheel()
	if err != nil {
		return domain.Choice{}, err
	}
	if len(current.Choices) >= domain.MaxWheelChoices {
		return domain.Choice{}, fmt.Errorf("%w: %d", errors.ErrWheelFull, domain.MaxWheelChoices)
	}

	choice := domain.Choice{ID: uuid.New(), Label: label, Weight: weight}
	current.Choices = append(append([]domain.Choice(nil), current.Choices...), choice)
	if err = s.repository.SaveWheel(current); err != nil {
		return domain.Choice{}, err
	}
	return choice, nil
}

func (s *WheelService) Remove(label string, soft bool) error {
	current, err := s.repository.GetWheel()
	if err != nil {
		return err
	}
	choice, index, found := lo.FindIndexOf(current.Choices, func(c domain.Choice) bool {
		return c.Label == label
	})
	if !found {
		return fmt.Errorf("%w: %q", errors.ErrChoiceNotFound, label)
	}
	current.Choices = lo.Without(current.Choices, choice)
	if soft {
		current.Removed = append(append([]domain.Choice(nil), current.Removed...), choice)
	}
	s.log.Debug("Choice removed", "label", label, "index", index, "soft", soft)
	return s.repository.SaveWheel(current)
}

// Restore moves a choice set aside back onto the wheel.
func (s *WheelService) Restore(label string) error {
	current, err := s.repository.GetWheel()
	if err != nil {
		return err
	}
	choice, found := lo.Find(current.Removed, func(c domain.Choice) bool {
		return c.Label == label
	})
	if !found {
		return fmt.Errorf("%w: %q", errors.ErrChoiceNotFound, label)
	}
	current.Removed = lo.Without(current.Removed, choice)
	current.Choices = append(append([]domain.Choice(nil), current.Choices...), choice)
	return s.repository.SaveWheel(current)
}

func (s *WheelService) Clear() error {
	if err := s.repository.SaveWheel(domain.Wheel{}); err != nil {
		return err
	}
	s.log.Debug("Wheel cleared")
	return nil
}

// Spin draws a winner without removing it; callers decide whether to set it aside.
func (s *WheelService) Spin(rng *rand.Rand) (domain.Choice, error) {
	current, err := s.repository.GetWheel()
	if err != nil {
		return domain.Choice{}, err
	}
	index, err := wheel.Draw(current.Choices, rng)
	if err != nil {
		return domain.Choice{}, err
	}
	winner := current.Choices[index]
	s.log.Info("Wheel spun", "winner", winner.Label)
	return winner, nil
}
