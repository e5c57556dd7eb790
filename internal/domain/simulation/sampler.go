package simulation

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultLambda is the goal expectancy used when filling match results;
	// it lands the tie frequency in the 20-30% band typical of football.
	DefaultLambda = 1.35

	penaltyLambda   = 3.0
	maxPenaltyGoals = 5

	// Above this lambda e^-lambda underflows to zero and Knuth's loop never
	// terminates, so sampling falls back to a normal approximation.
	knuthLambdaLimit = 700
)

// ErrInvalidLambda flags a non-positive goal expectancy. Callers pass
// compile-time constants, so this surfaces as a hard failure instead of
// being folded into an operation result.
var ErrInvalidLambda = errors.New("lambda must be > 0")

// Score is a synthesized match outcome. Penalty fields are set only when a
// playoff game finished level after regular time; in that case they always
// name a strict winner.
type Score struct {
	HomeGoals     int
	AwayGoals     int
	HomePenalties *int
	AwayPenalties *int
}

func (s Score) IsDraw() bool {
	return s.HomeGoals == s.AwayGoals
}

func (s Score) HasPenalties() bool {
	return s.HomePenalties != nil && s.AwayPenalties != nil
}

// Sampler draws statistically plausible match outcomes. It is not safe for
// concurrent use; give each goroutine its own instance.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler backed by rng, or by a time-seeded source
// when rng is nil.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// Poisson draws a goal count distributed Poisson(lambda). Knuth's
// multiplicative algorithm is exact and fast for realistic lambdas; large
// values switch to a Box-Muller normal approximation N(lambda, sqrt(lambda))
// rounded and clamped at zero.
func (s *Sampler) Poisson(lambda float64) (int, error) {
	if lambda <= 0 {
		return 0, ErrInvalidLambda
	}

	if lambda > knuthLambdaLimit {
		u1 := s.rng.Float64()
		for u1 == 0 {
			u1 = s.rng.Float64()
		}
		u2 := s.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		draw := int(math.Round(lambda + math.Sqrt(lambda)*z))
		if draw < 0 {
			draw = 0
		}
		return draw, nil
	}

	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for p > l {
		k++
		p *= s.rng.Float64()
	}
	return k - 1, nil
}

// MatchScore draws a full result: two independent Poisson goal counts, and a
// penalty shootout when a playoff game ends level. Home advantage is
// deliberately not modelled.
func (s *Sampler) MatchScore(lambda float64, playoff bool) (Score, error) {
	home, err := s.Poisson(lambda)
	if err != nil {
		return Score{}, err
	}
	away, err := s.Poisson(lambda)
	if err != nil {
		return Score{}, err
	}

	score := Score{HomeGoals: home, AwayGoals: away}
	if !playoff || home != away {
		return score, nil
	}

	hp, err := s.penaltyGoals()
	if err != nil {
		return Score{}, err
	}
	ap, err := s.penaltyGoals()
	if err != nil {
		return Score{}, err
	}

	if hp == ap {
		// A shootout always has a winner: bump a random side, and when the
		// bump would leave the clamp ceiling tied, push the other side down.
		if s.rng.Intn(2) == 0 {
			hp++
		} else {
			ap++
		}
		if hp > maxPenaltyGoals {
			hp = maxPenaltyGoals
			ap = maxPenaltyGoals - 1
		}
		if ap > maxPenaltyGoals {
			ap = maxPenaltyGoals
			hp = maxPenaltyGoals - 1
		}
	}

	score.HomePenalties = &hp
	score.AwayPenalties = &ap
	return score, nil
}

func (s *Sampler) penaltyGoals() (int, error) {
	n, err := s.Poisson(penaltyLambda)
	if err != nil {
		return 0, err
	}
	if n > maxPenaltyGoals {
		n = maxPenaltyGoals
	}
	return n, nil
}
