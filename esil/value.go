package esil

import "fmt"

// Location classifies where a Value lives. It is decided once when the
// value is built from a token and never revised.
type Location uint8

const (
	Memory Location = iota
	Register
	Constant
	Temporary
	Unknown
	Null
)

var locationNames = []string{"memory", "register", "constant", "temporary", "unknown", "null"}

func (loc Location) String() string {
	if int(loc) < len(locationNames) {
		return locationNames[loc]
	}
	return "invalid"
}

// Value is an operand to, or result of, an instruction.
type Value struct {
	Name     string
	Size     uint8 // width in bits
	Location Location
	Literal  int64 // evaluated value for Constant operands

	// Typeset is reserved for typeset-based inference; always 0 for now.
	Typeset uint32
}

// nullValue is the sentinel for an absent operand or destination slot.
func nullValue() Value {
	return Value{Location: Null}
}

// IsNull reports whether v is the absent-operand sentinel.
func (v Value) IsNull() bool {
	return v.Location == Null
}

func tmpValue(i uint64) Value {
	return Value{Name: fmt.Sprintf("tmp_%x", i), Location: Temporary}
}
