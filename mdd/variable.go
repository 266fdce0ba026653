package mdd

// A Variable is identified by a stable integer ID in [0, n). It carries an
// assigned integer value once bound; unbound otherwise. Variables are
// immutable except for the single assignment transition (Assign).
type Variable struct {
	ID    int
	Value int
	Bound bool
}

// NewVariable returns the unbound variable with the given id.
func NewVariable(id int) Variable {
	return Variable{ID: id}
}

// Assign returns a copy of v bound to value. It does not mutate v.
func (v Variable) Assign(value int) Variable {
	v.Value = value
	v.Bound = true
	return v
}
