package store

// fixedRand returns the same uniform draw and the same normal draw forever.
type fixedRand struct {
	u, n float64
}

func (r fixedRand) Float64() float64     { return r.u }
func (r fixedRand) NormFloat64() float64 { return r.n }
