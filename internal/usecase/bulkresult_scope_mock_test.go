package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/playoff"
	"github.com/predictpool/backend/internal/platform/logging"
)

type mockGroupRepo struct{ mock.Mock }

func (m *mockGroupRepo) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(group.Group), args.Bool(1), args.Error(2)
}

func (m *mockGroupRepo) ListByTournament(ctx context.Context, tournamentID string) ([]group.Group, error) {
	args := m.Called(ctx, tournamentID)
	return args.Get(0).([]group.Group), args.Error(1)
}

func (m *mockGroupRepo) TeamIDs(ctx context.Context, groupID string) ([]string, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]string), args.Error(1)
}

type mockPlayoffRepo struct{ mock.Mock }

func (m *mockPlayoffRepo) GetRoundByID(ctx context.Context, roundID string) (playoff.Round, bool, error) {
	args := m.Called(ctx, roundID)
	return args.Get(0).(playoff.Round), args.Bool(1), args.Error(2)
}

func (m *mockPlayoffRepo) ListRoundsByTournament(ctx context.Context, tournamentID string) ([]playoff.Round, error) {
	args := m.Called(ctx, tournamentID)
	return args.Get(0).([]playoff.Round), args.Error(1)
}

func TestAutoFill_ScopeLookupsUsingMocks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	groupRepo := &mockGroupRepo{}
	playoffRepo := &mockPlayoffRepo{}
	games := &stubGameRepo{byGroup: map[string][]game.Game{}}
	results := newStubResultRepo()
	pipeline := &stubPipeline{}

	svc := NewBulkResultService(adminAuth(), groupRepo, playoffRepo, games, results, nil, pipeline, 0, logging.NewNop())

	groupRepo.
		On("GetByID", mock.Anything, "grp-missing").
		Return(group.Group{}, false, nil).
		Once()
	playoffRepo.
		On("GetRoundByID", mock.Anything, "rd-missing").
		Return(playoff.Round{}, false, nil).
		Once()

	if out := svc.AutoFill(ctx, GroupScope("grp-missing")); out.Error != CodeGroupNotFound {
		t.Fatalf("unknown group outcome = %+v, want group-not-found code", out)
	}
	if out := svc.AutoFill(ctx, PlayoffScope("rd-missing")); out.Error != CodePlayoffRoundNotFound {
		t.Fatalf("unknown round outcome = %+v, want round-not-found code", out)
	}

	groupRepo.AssertExpectations(t)
	playoffRepo.AssertExpectations(t)
}
