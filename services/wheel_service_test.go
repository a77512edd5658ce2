package services

import (
	"log/slog"
	"math/rand"
	"strings"
	"team-lab/domain"
	"team-lab/errors"
	"team-lab/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func choice(label string, weight uint32) domain.Choice {
	return domain.Choice{ID: uuid.New(), Label: label, Weight: weight}
}

func TestWheelService_Add(t *testing.T) {
	t.Run("should trim the label and default the weight", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIWheelRepository(ctrl)
		svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

		repo.EXPECT().GetWheel().Return(domain.Wheel{}, nil)
		var saved domain.Wheel
		repo.EXPECT().SaveWheel(gomock.Any()).DoAndReturn(func(w domain.Wheel) error {
			saved = w
			return nil
		})

		added, err := svc.Add("  pizza\nnight ", 0)
		req.NoError(err)
		req.Equal("pizza night", added.Label)
		req.Equal(uint32(domain.DefaultWeight), added.Weight)
		req.NotEqual(uuid.Nil, added.ID)
		req.Equal([]domain.Choice{added}, saved.Choices)
	})

	t.Run("should refuse a blank label", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIWheelRepository(ctrl)
		svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

		repo.EXPECT().GetWheel().Times(0)
		_, err := svc.Add(" \n ", 3)
		req.ErrorIs(err, errors.ErrEmptyLabel)
	})

	t.Run("should refuse a full wheel", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIWheelRepository(ctrl)
		svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

		full := make([]domain.Choice, domain.MaxWheelChoices)
		for i := range full {
			full[i] = choice(strings.Repeat("x", i+1), 1)
		}
		repo.EXPECT().GetWheel().Return(domain.Wheel{Choices: full}, nil)
		repo.EXPECT().SaveWheel(gomock.Any()).Times(0)

		_, err := svc.Add("one more", 1)
		req.ErrorIs(err, errors.ErrWheelFull)
	})
}

func TestWheelService_Remove_And_Restore(t *testing.T) {
	tea := choice("tea", 1)
	coffee := choice("coffee", 2)

	t.Run("should set a choice aside then bring it back", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIWheelRepository(ctrl)
		svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

		setAside := domain.Wheel{Choices: []domain.Choice{coffee}, Removed: []domain.Choice{tea}}
		gomock.InOrder(
			repo.EXPECT().GetWheel().Return(domain.Wheel{Choices: []domain.Choice{tea, coffee}}, nil),
			repo.EXPECT().SaveWheel(setAside).Return(nil),
			repo.EXPECT().GetWheel().Return(setAside, nil),
			repo.EXPECT().SaveWheel(gomock.Any()).DoAndReturn(func(w domain.Wheel) error {
				req.Equal([]domain.Choice{coffee, tea}, w.Choices)
				req.Empty(w.Removed)
				return nil
			}),
		)

		req.NoError(svc.Remove("tea", true))
		req.NoError(svc.Restore("tea"))
	})

	t.Run("should forget a choice on hard remove", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIWheelRepository(ctrl)
		svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

		repo.EXPECT().GetWheel().Return(domain.Wheel{Choices: []domain.Choice{tea, coffee}}, nil)
		repo.EXPECT().SaveWheel(gomock.Any()).DoAndReturn(func(w domain.Wheel) error {
			req.Equal([]domain.Choice{tea}, w.Choices)
			req.Empty(w.Removed)
			return nil
		})

		req.NoError(svc.Remove("coffee", false))
	})

	t.Run("should report unknown labels", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIWheelRepository(ctrl)
		svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

		repo.EXPECT().GetWheel().Return(domain.Wheel{Choices: []domain.Choice{tea}}, nil).Times(2)
		repo.EXPECT().SaveWheel(gomock.Any()).Times(0)

		req.ErrorIs(svc.Remove("juice", true), errors.ErrChoiceNotFound)
		req.ErrorIs(svc.Restore("tea"), errors.ErrChoiceNotFound)
	})
}

func TestWheelService_Spin(t *testing.T) {
	t.Run("should only land on weighted choices", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIWheelRepository(ctrl)
		svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

		never := choice("never", 0)
		always := choice("always", 5)
		repo.EXPECT().GetWheel().Return(domain.Wheel{Choices: []domain.Choice{never, always}}, nil).AnyTimes()
		repo.EXPECT().SaveWheel(gomock.Any()).Times(0)

		rng := rand.New(rand.NewSource(7))
		for range 20 {
			winner, err := svc.Spin(rng)
			req.NoError(err)
			req.Equal(always, winner)
		}
	})

	t.Run("should fail on an empty wheel", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIWheelRepository(ctrl)
		svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

		repo.EXPECT().GetWheel().Return(domain.Wheel{}, nil)
		_, err := svc.Spin(rand.New(rand.NewSource(1)))
		req.ErrorIs(err, errors.ErrEmptyWheel)
	})
}

func TestWheelService_Clear(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIWheelRepository(ctrl)
	svc := NewWheelService(repo, logs.GetLoggerFromLevel(slog.LevelDebug))

	repo.EXPECT().GetWheel().Times(0)
	repo.EXPECT().SaveWheel(domain.Wheel{}).Return(nil)

	req.NoError(svc.Clear())
}
