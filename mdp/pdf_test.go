package mdp

import (
	"errors"
	"math/rand/v2"
	"testing"
)

type fixedDraw float64

func (f fixedDraw) Float64() float64 { return float64(f) }

func salesPdf() DiscretePdf[int] {
	return NewDiscretePdf(
		Outcome[int]{Value: 3, Prob: 0.2},
		Outcome[int]{Value: 5, Prob: 0.3},
		Outcome[int]{Value: 7, Prob: 0.3},
		Outcome[int]{Value: 10, Prob: 0.2},
	)
}

func TestChooseNormalisedAlwaysReturns(t *testing.T) {
	pdf := salesPdf()
	rng := rand.New(rand.NewPCG(7, 11))
	seen := map[int]int{}
	for i := 0; i < 10000; i++ {
		v, err := pdf.Choose(rng)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		seen[v]++
	}
	for _, o := range pdf.Outcomes {
		if seen[o.Value] == 0 {
			t.Errorf("outcome %d never drawn", o.Value)
		}
	}
}

func TestChooseCumulativeOrder(t *testing.T) {
	pdf := salesPdf()
	cases := []struct {
		draw float64
		want int
	}{
		{0, 3},
		{0.19, 3},
		{0.2, 5},
		{0.49, 5},
		{0.5, 7},
		{0.79, 7},
		{0.8, 10},
		{0.999, 10},
	}
	for _, c := range cases {
		got, err := pdf.Choose(fixedDraw(c.draw))
		if err != nil {
			t.Fatalf("draw %v: %v", c.draw, err)
		}
		if got != c.want {
			t.Errorf("draw %v: got %d, want %d", c.draw, got, c.want)
		}
	}

	// same probabilities, reversed order
	reversed := NewDiscretePdf(
		Outcome[int]{Value: 10, Prob: 0.2},
		Outcome[int]{Value: 7, Prob: 0.3},
		Outcome[int]{Value: 5, Prob: 0.3},
		Outcome[int]{Value: 3, Prob: 0.2},
	)
	got, _ := reversed.Choose(fixedDraw(0.1))
	if got != 10 {
		t.Errorf("reversed draw 0.1: got %d, want 10", got)
	}
}

func TestChooseUndersizedDistribution(t *testing.T) {
	pdf := NewDiscretePdf(
		Outcome[string]{Value: "a", Prob: 0.3},
		Outcome[string]{Value: "b", Prob: 0.3},
	)
	if _, err := pdf.Choose(fixedDraw(0.59)); err != nil {
		t.Fatalf("draw inside coverage: %v", err)
	}
	_, err := pdf.Choose(fixedDraw(0.6))
	if !errors.Is(err, ErrInvalidDistribution) {
		t.Fatalf("expected ErrInvalidDistribution, got %v", err)
	}
}

func TestChooseEmpty(t *testing.T) {
	_, err := DiscretePdf[int]{}.Choose(fixedDraw(0))
	if !errors.Is(err, ErrInvalidDistribution) {
		t.Fatalf("expected ErrInvalidDistribution, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	if err := salesPdf().Check(); err != nil {
		t.Fatalf("sales distribution: %v", err)
	}
	bad := []DiscretePdf[int]{
		{},
		NewDiscretePdf(Outcome[int]{Value: 1, Prob: 0.5}),
		NewDiscretePdf(Outcome[int]{Value: 1, Prob: 1.5}, Outcome[int]{Value: 2, Prob: -0.5}),
	}
	for i, pdf := range bad {
		if err := pdf.Check(); !errors.Is(err, ErrInvalidDistribution) {
			t.Errorf("case %d: expected ErrInvalidDistribution, got %v", i, err)
		}
	}
}
