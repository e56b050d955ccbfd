// Package value defines the runtime values produced by evaluation.
package value

import (
	"math"
	"strconv"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	}
	return "null"
}

// Value is one of Number, String, Boolean or Null.
// String renders the value the way print writes it.
type Value interface {
	Kind() Kind
	String() string
}

type Number float64

func (Number) Kind() Kind { return KindNumber }

// String renders n with the fewest digits that read back to the same
// float64, without an exponent.
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type String string

func (String) Kind() Kind { return KindString }

func (s String) String() string { return string(s) }

type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

// Null is the value of nil, of a declaration without an initializer,
// and of any expression whose evaluation failed.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) String() string { return "null" }
