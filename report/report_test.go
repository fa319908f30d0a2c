package report

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/CodeStranger-Fred/inventory/mdp"
	"github.com/CodeStranger-Fred/inventory/store"
)

type fixedRand struct{ u, n float64 }

func (r fixedRand) Float64() float64     { return r.u }
func (r fixedRand) NormFloat64() float64 { return r.n }

func run(t *testing.T, rng mdp.Rand, steps int) (*store.SmartphoneEnvironment, *store.SmartphoneAgent) {
	t.Helper()
	env, err := store.NewSmartphoneEnvironment(store.DefaultEnvironmentParams(), rng)
	if err != nil {
		t.Fatalf("NewSmartphoneEnvironment: %v", err)
	}
	agent := store.NewSmartphoneAgent(store.DefaultAgentParams())
	if err := store.NewSimulation(agent, env).Run(steps); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return env, agent
}

func TestSummarizeDeterministic(t *testing.T) {
	// 10 units sold every day, no noise
	env, agent := run(t, fixedRand{u: 0.99}, 3)
	s := Summarize(env, agent)

	// stock 50 -> 40 -> 30 -> 20, prices 600 -> 580 -> 585 -> 570
	if s.Steps != 3 || s.FinalStock != 20 || s.MinStock != 20 {
		t.Fatalf("unexpected stock summary %+v", s)
	}
	if s.MinPrice != 570 || s.MaxPrice != 600 {
		t.Fatalf("price range %v..%v", s.MinPrice, s.MaxPrice)
	}
	if s.MeanPrice != (600+580+585+570)/4.0 {
		t.Fatalf("mean price %v", s.MeanPrice)
	}
	if s.Units != 0 || s.TotalSpent != 0 || s.StockOuts != 0 {
		t.Fatalf("agent should not have bought: %+v", s)
	}
}

func TestSummarizeStockOuts(t *testing.T) {
	env, agent := run(t, rand.New(rand.NewPCG(2, 3)), 100)
	s := Summarize(env, agent)
	zeros := 0
	for _, v := range env.StockHistory()[1:] {
		if v == 0 {
			zeros++
		}
	}
	if s.StockOuts != zeros {
		t.Fatalf("stock-outs %d, want %d", s.StockOuts, zeros)
	}
	if s.Units != agent.UnitsBought() {
		t.Fatalf("units %d, want %d", s.Units, agent.UnitsBought())
	}
}

func TestRenderSummary(t *testing.T) {
	env, agent := run(t, rand.New(rand.NewPCG(1, 1)), 10)
	out := RenderSummary(Summarize(env, agent))
	for _, label := range []string{"Steps", "Total spent", "Stock-outs"} {
		if !strings.Contains(out, label) {
			t.Errorf("summary missing %q:\n%s", label, out)
		}
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	trace := Trace(&buf)
	trace(0, store.Percept{Price: 600, Stock: 50}, store.Action{Buy: 0})
	trace(1, store.Percept{Price: 400, Stock: 20}, store.Action{Buy: 15})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.Contains(lines[0], "600.00") || !strings.Contains(lines[1], "15") {
		t.Fatalf("unexpected trace output: %q", lines)
	}
}
