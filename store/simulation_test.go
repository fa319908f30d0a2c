package store

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestRunZeroSteps(t *testing.T) {
	env := newEnv(t, rand.New(rand.NewPCG(1, 1)))
	agent := NewSmartphoneAgent(DefaultAgentParams())
	sim := NewSimulation(agent, env)
	if err := sim.Run(0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(agent.BuyHistory()) != 0 {
		t.Fatalf("buy history %v", agent.BuyHistory())
	}
	ph, sh := env.PriceHistory(), env.StockHistory()
	if len(ph) != 1 || ph[0] != 600 || len(sh) != 1 || sh[0] != 50 {
		t.Fatalf("histories %v %v", ph, sh)
	}
}

func TestTotalSpentMatchesObservedPrices(t *testing.T) {
	env := newEnv(t, rand.New(rand.NewPCG(42, 0)))
	agent := NewSmartphoneAgent(DefaultAgentParams())
	if err := NewSimulation(agent, env).Run(200); err != nil {
		t.Fatalf("Run: %v", err)
	}

	buys, prices := agent.BuyHistory(), env.PriceHistory()
	if len(buys) != 200 || len(prices) != 201 {
		t.Fatalf("lengths %d/%d", len(buys), len(prices))
	}
	// decision i is made on the percept recorded at index i
	want := 0.0
	for i, b := range buys {
		want += float64(b) * prices[i]
	}
	if math.Abs(agent.TotalSpent()-want) > 1e-6*math.Max(1, want) {
		t.Fatalf("spent %v, want %v", agent.TotalSpent(), want)
	}
}

func TestRunReproducible(t *testing.T) {
	run := func() []float64 {
		env := newEnv(t, rand.New(rand.NewPCG(9, 9)))
		if err := NewSimulation(NewSmartphoneAgent(DefaultAgentParams()), env).Run(50); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return env.PriceHistory()
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRunRepeatedly(t *testing.T) {
	res, err := RunRepeatedly(DefaultEnvironmentParams(), DefaultAgentParams(), 5, 20, 30)
	if err != nil {
		t.Fatalf("RunRepeatedly: %v", err)
	}
	if res.Runs != 20 || len(res.MeanStock) != 31 || len(res.MeanPrice) != 31 {
		t.Fatalf("unexpected shape: %+v", res)
	}
	if res.MeanStock[0] != 50 || res.MeanPrice[0] != 600 {
		t.Fatalf("initial means %v %v", res.MeanStock[0], res.MeanPrice[0])
	}
	for i, s := range res.MeanStock {
		if s < 0 {
			t.Fatalf("step %d: negative mean stock %v", i, s)
		}
	}

	again, _ := RunRepeatedly(DefaultEnvironmentParams(), DefaultAgentParams(), 5, 20, 30)
	if again.MeanSpent != res.MeanSpent || again.MeanPrice[30] != res.MeanPrice[30] {
		t.Fatal("batch not reproducible for a fixed seed")
	}

	if _, err := RunRepeatedly(DefaultEnvironmentParams(), DefaultAgentParams(), 5, 0, 30); err == nil {
		t.Fatal("zero runs accepted")
	}
}
