package mdp

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidDistribution = errors.New("invalid probability distribution")

// Uniform draws values in [0,1).
type Uniform interface {
	Float64() float64
}

// Rand is the random source threaded through sampling and noise draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Uniform
	NormFloat64() float64
}

type ProbabilityDistribution[Category comparable] interface {
	Choose(Uniform) (Category, error)
}

type Probability float64

type Outcome[Category comparable] struct {
	Value Category
	Prob  Probability
}

// DiscretePdf keeps its outcomes in declaration order. Choose walks them
// cumulatively, so reordering the outcomes changes which value a draw maps to.
type DiscretePdf[Category comparable] struct {
	Outcomes []Outcome[Category]
}

func NewDiscretePdf[Category comparable](outcomes ...Outcome[Category]) DiscretePdf[Category] {
	return DiscretePdf[Category]{Outcomes: append([]Outcome[Category](nil), outcomes...)}
}

func (p DiscretePdf[Category]) Choose(rng Uniform) (Category, error) {
	v := rng.Float64()
	for _, o := range p.Outcomes {
		if v < float64(o.Prob) {
			return o.Value, nil
		}
		v -= float64(o.Prob)
	}
	var zero Category
	return zero, fmt.Errorf("%w: %s", ErrInvalidDistribution, p)
}

// Check reports negative probabilities or a total away from 1.
func (p DiscretePdf[Category]) Check() error {
	if len(p.Outcomes) == 0 {
		return fmt.Errorf("%w: no outcomes", ErrInvalidDistribution)
	}
	sum := 0.0
	for _, o := range p.Outcomes {
		if o.Prob < 0 {
			return fmt.Errorf("%w: negative probability %v for %v", ErrInvalidDistribution, o.Prob, o.Value)
		}
		sum += float64(o.Prob)
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: probabilities sum to %v", ErrInvalidDistribution, sum)
	}
	return nil
}

func (p DiscretePdf[Category]) String() string {
	s := "{"
	for i, o := range p.Outcomes {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v: %v", o.Value, o.Prob)
	}
	return s + "}"
}
