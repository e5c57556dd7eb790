package simulation

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func newTestSampler(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

func TestPoisson_MeanTracksLambda(t *testing.T) {
	t.Parallel()

	s := newTestSampler(1)

	const draws = 20000
	lambda := DefaultLambda

	sum := 0
	for i := 0; i < draws; i++ {
		n, err := s.Poisson(lambda)
		if err != nil {
			t.Fatalf("Poisson returned error: %v", err)
		}
		if n < 0 {
			t.Fatalf("Poisson returned negative draw %d", n)
		}
		sum += n
	}

	mean := float64(sum) / draws
	if math.Abs(mean-lambda) > 0.1 {
		t.Fatalf("sample mean %.3f too far from lambda %.3f", mean, lambda)
	}
}

func TestPoisson_RejectsNonPositiveLambda(t *testing.T) {
	t.Parallel()

	s := newTestSampler(2)

	for _, lambda := range []float64{0, -1, -0.001} {
		if _, err := s.Poisson(lambda); !errors.Is(err, ErrInvalidLambda) {
			t.Fatalf("Poisson(%v) error = %v, want ErrInvalidLambda", lambda, err)
		}
	}
}

func TestPoisson_LargeLambdaUsesNormalApproximation(t *testing.T) {
	t.Parallel()

	s := newTestSampler(3)

	// Past the Knuth cutoff the sampler must still terminate and stay close
	// to the requested mean.
	const lambda = 1000.0
	const draws = 2000

	sum := 0
	for i := 0; i < draws; i++ {
		n, err := s.Poisson(lambda)
		if err != nil {
			t.Fatalf("Poisson returned error: %v", err)
		}
		if n < 0 {
			t.Fatalf("Poisson returned negative draw %d", n)
		}
		sum += n
	}

	mean := float64(sum) / draws
	if math.Abs(mean-lambda) > 5 {
		t.Fatalf("sample mean %.1f too far from lambda %.1f", mean, lambda)
	}
}

func TestMatchScore_GroupGamesNeverGetPenalties(t *testing.T) {
	t.Parallel()

	s := newTestSampler(4)

	for i := 0; i < 500; i++ {
		sc, err := s.MatchScore(DefaultLambda, false)
		if err != nil {
			t.Fatalf("MatchScore returned error: %v", err)
		}
		if sc.HasPenalties() {
			t.Fatalf("group game %d got penalties: %+v", i, sc)
		}
		if sc.HomeGoals < 0 || sc.AwayGoals < 0 {
			t.Fatalf("negative goals: %+v", sc)
		}
	}
}

func TestMatchScore_DrawnPlayoffAlwaysHasStrictShootoutWinner(t *testing.T) {
	t.Parallel()

	s := newTestSampler(5)

	draws := 0
	for i := 0; i < 2000; i++ {
		sc, err := s.MatchScore(DefaultLambda, true)
		if err != nil {
			t.Fatalf("MatchScore returned error: %v", err)
		}

		if !sc.IsDraw() {
			if sc.HasPenalties() {
				t.Fatalf("decided playoff game got penalties: %+v", sc)
			}
			continue
		}
		draws++

		if !sc.HasPenalties() {
			t.Fatalf("drawn playoff game has no shootout: %+v", sc)
		}
		hp, ap := *sc.HomePenalties, *sc.AwayPenalties
		if hp == ap {
			t.Fatalf("shootout ended level %d-%d", hp, ap)
		}
		if hp < 0 || ap < 0 || hp > maxPenaltyGoals || ap > maxPenaltyGoals {
			t.Fatalf("shootout goals %d-%d outside [0,%d]", hp, ap, maxPenaltyGoals)
		}
	}

	// With lambda 1.35 roughly a quarter of games end level; 2000 samples
	// without a single draw would mean the draw path is dead.
	if draws == 0 {
		t.Fatal("no drawn playoff game in 2000 samples")
	}
}

func TestMatchScore_PropagatesInvalidLambda(t *testing.T) {
	t.Parallel()

	s := newTestSampler(6)

	if _, err := s.MatchScore(0, true); !errors.Is(err, ErrInvalidLambda) {
		t.Fatalf("MatchScore(0) error = %v, want ErrInvalidLambda", err)
	}
}

func TestNewSampler_NilSourceSelfSeeds(t *testing.T) {
	t.Parallel()

	s := NewSampler(nil)
	if _, err := s.Poisson(DefaultLambda); err != nil {
		t.Fatalf("self-seeded sampler failed: %v", err)
	}
}
