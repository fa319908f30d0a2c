// Package store simulates a smartphone shop: an environment whose stock is
// drained by random daily sales and whose price drifts seasonally, and a
// fixed-policy agent that decides how many units to reorder.
package store

import "github.com/CodeStranger-Fred/inventory/mdp"

// Percept is what the agent sees at each step.
type Percept struct {
	Price float64
	Stock float64
}

// Action is the number of units the agent orders.
type Action struct {
	Buy int
}

type Simulation = mdp.Simulation[Percept, Action]

// NewSimulation wires an agent and an environment into a driver.
func NewSimulation(agent *SmartphoneAgent, env *SmartphoneEnvironment, opts ...mdp.Option[Percept, Action]) *Simulation {
	return mdp.NewSimulation[Percept, Action](agent, env, opts...)
}
