package esil

import (
	"errors"
	"fmt"
)

// ErrUnderflow marks an operator that needed more operands than the stack
// held. The instruction is abandoned and parsing continues.
var ErrUnderflow = errors.New("operand stack underflow")

// OpError reports an unknown sub-operator inside a composite token. It
// aborts the parse call that produced it.
type OpError struct {
	Pos   int    // token position within the parsed string, 0-based
	Token string // the composite token
	Sub   string // the sub-token that failed operator lookup
}

func (e *OpError) Error() string {
	return fmt.Sprintf("unknown operator %q in composite %q at token %v", e.Sub, e.Token, e.Pos)
}

// Diagnostic records one abandoned instruction from an otherwise
// successful parse call.
type Diagnostic struct {
	Pos   int
	Token string
	Err   error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%q at token %v: %v", d.Token, d.Pos, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }
