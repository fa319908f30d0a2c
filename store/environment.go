package store

import (
	"errors"
	"fmt"
	"math"

	"github.com/CodeStranger-Fred/inventory/mdp"
)

var ErrNegativeOrder = errors.New("negative order quantity")

type SmartphoneEnvironment struct {
	params EnvironmentParams
	rng    mdp.Rand

	time  int
	stock float64
	price float64

	stockHistory []float64
	priceHistory []float64
}

func NewSmartphoneEnvironment(params EnvironmentParams, rng mdp.Rand) (*SmartphoneEnvironment, error) {
	if rng == nil {
		return nil, errors.New("environment: nil random source")
	}
	if len(params.PriceDelta) == 0 {
		return nil, errors.New("environment: empty price delta sequence")
	}
	if len(params.DailySales.Outcomes) == 0 {
		return nil, fmt.Errorf("environment: daily sales: %w", mdp.ErrInvalidDistribution)
	}
	params.PriceDelta = append([]float64(nil), params.PriceDelta...)

	return &SmartphoneEnvironment{
		params:       params,
		rng:          rng,
		stock:        params.InitialStock,
		price:        params.InitialPrice,
		stockHistory: []float64{params.InitialStock},
		priceHistory: []float64{params.InitialPrice},
	}, nil
}

func (e *SmartphoneEnvironment) InitialPercept() Percept {
	return e.percept()
}

// DoAction sells a random number of units, adds the order to the stock and
// moves the price one step along the seasonal pattern. Units demanded beyond
// what is on hand are lost. A rejected action leaves the state untouched.
func (e *SmartphoneEnvironment) DoAction(action Action) (Percept, error) {
	if action.Buy < 0 {
		return e.percept(), fmt.Errorf("%w: %d", ErrNegativeOrder, action.Buy)
	}
	sales, err := e.params.DailySales.Choose(e.rng)
	if err != nil {
		return e.percept(), fmt.Errorf("daily sales: %w", err)
	}

	e.stock = math.Max(0, e.stock+float64(action.Buy)-float64(sales))

	e.time++
	delta := e.params.PriceDelta[e.time%len(e.params.PriceDelta)]
	e.price += delta + e.rng.NormFloat64()*e.params.NoiseStdDev

	e.stockHistory = append(e.stockHistory, e.stock)
	e.priceHistory = append(e.priceHistory, e.price)

	return e.percept(), nil
}

func (e *SmartphoneEnvironment) percept() Percept {
	return Percept{Price: e.price, Stock: e.stock}
}

func (e *SmartphoneEnvironment) Time() int      { return e.time }
func (e *SmartphoneEnvironment) Stock() float64 { return e.stock }
func (e *SmartphoneEnvironment) Price() float64 { return e.price }

func (e *SmartphoneEnvironment) StockHistory() []float64 {
	return append([]float64(nil), e.stockHistory...)
}

func (e *SmartphoneEnvironment) PriceHistory() []float64 {
	return append([]float64(nil), e.priceHistory...)
}
