package store

import "github.com/CodeStranger-Fred/inventory/mdp"

type EnvironmentParams struct {
	InitialStock float64
	InitialPrice float64
	// PriceDelta is indexed by time modulo its length after time advances,
	// so the first update uses PriceDelta[1].
	PriceDelta  []float64
	NoiseStdDev float64
	DailySales  mdp.DiscretePdf[int]
}

func DefaultEnvironmentParams() EnvironmentParams {
	return EnvironmentParams{
		InitialStock: 50,
		InitialPrice: 600,
		PriceDelta:   []float64{10, -20, 5, -15, 0, 25, -30, 20, -5, 0},
		NoiseStdDev:  5,
		DailySales: mdp.NewDiscretePdf(
			mdp.Outcome[int]{Value: 3, Prob: 0.2},
			mdp.Outcome[int]{Value: 5, Prob: 0.3},
			mdp.Outcome[int]{Value: 7, Prob: 0.3},
			mdp.Outcome[int]{Value: 10, Prob: 0.2},
		),
	}
}

type AgentParams struct {
	InitialAveragePrice float64
	Smoothing           float64
	// A bulk order needs price < DiscountRatio*average and stock > DiscountStockFloor.
	DiscountRatio      float64
	DiscountStockFloor float64
	// A restock order needs stock < ReorderPoint.
	ReorderPoint float64
	BulkOrder    int
	RestockOrder int
}

func DefaultAgentParams() AgentParams {
	return AgentParams{
		InitialAveragePrice: 600,
		Smoothing:           0.1,
		DiscountRatio:       0.8,
		DiscountStockFloor:  10,
		ReorderPoint:        10,
		BulkOrder:           15,
		RestockOrder:        10,
	}
}
