package env

import (
	"errors"

	"github.com/chidiwilliams/minilox/value"
)

// ErrUndefined is returned when retrieving an undefined variable
var ErrUndefined = errors.New("undefined variable")

// Environment holds the variables of one execution unit. There is a
// single flat namespace: no enclosing environments, no shadowing.
// Get, Has and Len treat a nil *Environment as empty.
type Environment struct {
	values map[string]value.Value
}

// New returns an empty environment
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// Define stores a key-value pair, replacing any previous value for name
func (e *Environment) Define(name string, val value.Value) {
	if e.values == nil {
		e.values = make(map[string]value.Value)
	}
	e.values[name] = val
}

// Get returns the value of the pair with the given name,
// or ErrUndefined if it has never been defined.
func (e *Environment) Get(name string) (value.Value, error) {
	if e == nil {
		return nil, ErrUndefined
	}
	if val, ok := e.values[name]; ok {
		return val, nil
	}
	return nil, ErrUndefined
}

// Has returns true if a key-value pair with the given name exists
func (e *Environment) Has(name string) bool {
	if e == nil {
		return false
	}
	_, ok := e.values[name]
	return ok
}

// Len returns the number of defined variables
func (e *Environment) Len() int {
	if e == nil {
		return 0
	}
	return len(e.values)
}
