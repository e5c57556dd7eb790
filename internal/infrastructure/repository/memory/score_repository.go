package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/predictpool/backend/internal/domain/score"
)

type userScoreKey struct {
	tournamentID string
	userID       string
}

type ScoreRepository struct {
	mu      sync.RWMutex
	scores  map[userScoreKey]score.UserScore
	history []score.HistoryEntry
	now     func() time.Time
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{
		scores: make(map[userScoreKey]score.UserScore),
		now:    time.Now,
	}
}

func (r *ScoreRepository) ListByTournament(_ context.Context, tournamentID string) ([]score.UserScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]score.UserScore, 0)
	for key, item := range r.scores {
		if key.tournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (r *ScoreRepository) SetGamePoints(_ context.Context, tournamentID string, points map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rewrite(tournamentID, points, func(s *score.UserScore, pts int) {
		s.GamePoints = pts
	})
	return nil
}

func (r *ScoreRepository) SetBonusPoints(_ context.Context, tournamentID string, points map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rewrite(tournamentID, points, func(s *score.UserScore, pts int) {
		s.BonusPoints = pts
	})
	return nil
}

// rewrite applies one side of the tally for every known user and every user
// in points, then refreshes totals. Callers hold the write lock.
func (r *ScoreRepository) rewrite(tournamentID string, points map[string]int, apply func(*score.UserScore, int)) {
	seen := make(map[string]bool, len(points))
	stamp := r.now()
	for key, item := range r.scores {
		if key.tournamentID != tournamentID {
			continue
		}
		seen[key.userID] = true
		apply(&item, points[key.userID])
		item.TotalPoints = item.GamePoints + item.BonusPoints
		item.UpdatedAt = stamp
		r.scores[key] = item
	}
	for userID, pts := range points {
		if seen[userID] {
			continue
		}
		item := score.UserScore{TournamentID: tournamentID, UserID: userID, UpdatedAt: stamp}
		apply(&item, pts)
		item.TotalPoints = item.GamePoints + item.BonusPoints
		r.scores[userScoreKey{tournamentID: tournamentID, userID: userID}] = item
	}
}

func (r *ScoreRepository) AppendHistory(_ context.Context, entries []score.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, entries...)
	return nil
}

// History exposes appended snapshots for tests and the read-only HTTP surface.
func (r *ScoreRepository) History(_ context.Context, tournamentID string) ([]score.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]score.HistoryEntry, 0)
	for _, entry := range r.history {
		if entry.TournamentID == tournamentID {
			out = append(out, entry)
		}
	}
	return out, nil
}
