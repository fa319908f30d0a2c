package mdp

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Observer sees every decision together with the percept it was made on.
type Observer[Percept, Action any] func(step int, percept Percept, action Action)

type Simulation[Percept, Action any] struct {
	agent    Agent[Percept, Action]
	env      Environment[Percept, Action]
	percept  Percept
	steps    int
	logger   *log.Logger
	observer Observer[Percept, Action]
}

type Option[Percept, Action any] func(*Simulation[Percept, Action])

func WithLogger[Percept, Action any](logger *log.Logger) Option[Percept, Action] {
	return func(s *Simulation[Percept, Action]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithObserver[Percept, Action any](fn Observer[Percept, Action]) Option[Percept, Action] {
	return func(s *Simulation[Percept, Action]) {
		s.observer = fn
	}
}

func NewSimulation[Percept, Action any](agent Agent[Percept, Action], env Environment[Percept, Action], opts ...Option[Percept, Action]) *Simulation[Percept, Action] {
	s := &Simulation[Percept, Action]{
		agent:   agent,
		env:     env,
		percept: env.InitialPercept(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run alternates agent decisions and environment updates. It stops at the
// first environment error.
func (s *Simulation[Percept, Action]) Run(steps int) error {
	s.logger.Info("simulation started", "steps", steps, "from", s.steps)
	for t := 0; t < steps; t++ {
		step := s.steps
		action := s.agent.SelectAction(s.percept)
		if s.observer != nil {
			s.observer(step, s.percept, action)
		}

		next, err := s.env.DoAction(action)
		if err != nil {
			s.logger.Error("environment rejected action", "step", step, "action", action, "err", err)
			return fmt.Errorf("step %d: %w", step, err)
		}
		s.logger.Debug("step", "t", step, "percept", s.percept, "action", action, "next", next)

		s.percept = next
		s.steps++
	}
	s.logger.Info("simulation finished", "steps", s.steps)
	return nil
}

func (s *Simulation[Percept, Action]) Percept() Percept {
	return s.percept
}

// Steps is the number of completed decision steps across all Run calls.
func (s *Simulation[Percept, Action]) Steps() int {
	return s.steps
}
