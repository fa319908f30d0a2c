package store

import "github.com/shopspring/decimal"

// SmartphoneAgent reorders stock with a fixed rule. Its only belief is an
// exponential moving average of the price.
type SmartphoneAgent struct {
	params       AgentParams
	averagePrice float64
	buyHistory   []int
	spent        decimal.Decimal
}

func NewSmartphoneAgent(params AgentParams) *SmartphoneAgent {
	return &SmartphoneAgent{
		params:       params,
		averagePrice: params.InitialAveragePrice,
		buyHistory:   []int{},
		spent:        decimal.Zero,
	}
}

func (a *SmartphoneAgent) Name() string { return "smartphone-reorder" }

func (a *SmartphoneAgent) SelectAction(p Percept) Action {
	a.averagePrice += (p.Price - a.averagePrice) * a.params.Smoothing

	var tobuy int
	switch {
	case p.Price < a.params.DiscountRatio*a.averagePrice && p.Stock > a.params.DiscountStockFloor:
		// price dip with enough stock on hand
		tobuy = a.params.BulkOrder
	case p.Stock < a.params.ReorderPoint:
		tobuy = a.params.RestockOrder
	default:
		tobuy = 0
	}

	// valued at the observed price
	cost := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(tobuy)))
	a.spent = a.spent.Add(cost)
	a.buyHistory = append(a.buyHistory, tobuy)

	return Action{Buy: tobuy}
}

func (a *SmartphoneAgent) AveragePrice() float64 { return a.averagePrice }

func (a *SmartphoneAgent) BuyHistory() []int {
	return append([]int{}, a.buyHistory...)
}

func (a *SmartphoneAgent) TotalSpent() float64 {
	f, _ := a.spent.Float64()
	return f
}

// UnitsBought is the sum of every order placed so far.
func (a *SmartphoneAgent) UnitsBought() int {
	n := 0
	for _, b := range a.buyHistory {
		n += b
	}
	return n
}
