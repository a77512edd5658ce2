//go:generate go run go.uber.org/mock/mockgen -source=wheel.go -destination=../mocks/mock_wheel_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"team-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const WheelKey = "wheel:current"

type IWheelRepository interface {
	GetWheel() (domain.Wheel, error)
	SaveWheel(wheel domain.Wheel) error
}

type WheelRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewWheelRepository(db *badger.DB, log *slog.Logger) WheelRepository {
	return WheelRepository{db: db, log: log}
}

type DiskChoice struct {
	ID     string `msgpack:"id"`
	Label  string `msgpack:"label"`
	Weight uint32 `msgpack:"weight"`
}

type DiskWheel struct {
	Choices []DiskChoice `msgpack:"choices"`
	Removed []DiskChoice `msgpack:"removed"`
}

func (w WheelRepository) GetWheel() (domain.Wheel, error) {
	var disk DiskWheel
	found, err := getValue(w.db, WheelKey, &disk)
	if err != nil {
		return domain.Wheel{}, err
	}
	if !found {
		w.log.Debug("No wheel stored yet")
		return domain.Wheel{}, nil
	}
	choices, err := toChoices(disk.Choices)
	if err != nil {
		return domain.Wheel{}, err
	}
	removed, err := toChoices(disk.Removed)
	if err != nil {
		return domain.Wheel{}, err
	}
	return domain.Wheel{Choices: choices, Removed: removed}, nil
}

func (w WheelRepository) SaveWheel(wheel domain.Wheel) error {
	return setValue(w.db, WheelKey, DiskWheel{
		Choices: fromChoices(wheel.Choices),
		Removed: fromChoices(wheel.Removed),
	})
}

func fromChoices(choices []domain.Choice) []DiskChoice {
	return lo.Map(choices, func(c domain.Choice, _ int) DiskChoice {
		return DiskChoice{ID: c.ID.String(), Label: c.Label, Weight: c.Weight}
	})
}

func toChoices(disk []DiskChoice) ([]domain.Choice, error) {
	var choices []domain.Choice
	for _, c := range disk {
		parsedID, err := uuid.Parse(c.ID)
		if err != nil {
			return nil, err
		}
		choices = append(choices, domain.Choice{ID: parsedID, Label: c.Label, Weight: c.Weight})
	}
	return choices, nil
}
