package store

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
)

// BatchResult averages independent runs step by step. MeanStock and
// MeanPrice have Steps+1 entries, the first being the initial state.
type BatchResult struct {
	Runs        int
	Steps       int
	MeanStock   []float64
	MeanPrice   []float64
	MeanSpent   float64
	StdDevSpent float64
	MeanUnits   float64
}

// RunRepeatedly runs fresh agent/environment pairs. Run i draws from
// PCG(seed, i), so a batch is reproducible from its seed.
func RunRepeatedly(envParams EnvironmentParams, agentParams AgentParams, seed uint64, runs, steps int) (BatchResult, error) {
	if runs <= 0 {
		return BatchResult{}, errors.New("batch: runs must be positive")
	}
	if steps < 0 {
		steps = 0
	}

	stocks := make([][]float64, steps+1)
	prices := make([][]float64, steps+1)
	for t := range stocks {
		stocks[t] = make([]float64, runs)
		prices[t] = make([]float64, runs)
	}
	spent := make([]float64, runs)
	units := make([]float64, runs)

	for i := 0; i < runs; i++ {
		rng := rand.New(rand.NewPCG(seed, uint64(i)))
		env, err := NewSmartphoneEnvironment(envParams, rng)
		if err != nil {
			return BatchResult{}, err
		}
		agent := NewSmartphoneAgent(agentParams)
		if err := NewSimulation(agent, env).Run(steps); err != nil {
			return BatchResult{}, fmt.Errorf("run %d: %w", i, err)
		}

		stockHistory, priceHistory := env.StockHistory(), env.PriceHistory()
		for t := 0; t <= steps; t++ {
			stocks[t][i] = stockHistory[t]
			prices[t][i] = priceHistory[t]
		}
		spent[i] = agent.TotalSpent()
		units[i] = float64(agent.UnitsBought())
	}

	res := BatchResult{
		Runs:      runs,
		Steps:     steps,
		MeanStock: make([]float64, steps+1),
		MeanPrice: make([]float64, steps+1),
		MeanSpent: stat.Mean(spent, nil),
		MeanUnits: stat.Mean(units, nil),
	}
	if runs > 1 {
		res.StdDevSpent = stat.StdDev(spent, nil)
	}
	for t := 0; t <= steps; t++ {
		res.MeanStock[t] = stat.Mean(stocks[t], nil)
		res.MeanPrice[t] = stat.Mean(prices[t], nil)
	}
	return res, nil
}
