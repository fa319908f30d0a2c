package mdp

// Environment owns the world state. DoAction applies one action and
// returns what the agent observes next.
type Environment[Percept, Action any] interface {
	InitialPercept() Percept
	DoAction(Action) (Percept, error)
}

type Agent[Percept, Action any] interface {
	SelectAction(Percept) Action
}
