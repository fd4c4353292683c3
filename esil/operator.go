package esil

// Arity is the number of stack operands an operator consumes.
type Arity uint8

const (
	Zero Arity = iota
	Unary
	Binary
	Ternary // reserved; no table entry uses it
)

// Operands returns the operand count for the arity.
func (ar Arity) Operands() int {
	switch ar {
	case Unary:
		return 1
	case Binary:
		return 2
	case Ternary:
		return 3
	}
	return 0
}

var arityNames = []string{"zero", "unary", "binary", "ternary"}

func (ar Arity) String() string {
	if int(ar) < len(arityNames) {
		return arityNames[ar]
	}
	return "invalid"
}

// Operator is one entry of an operator table: a symbol and its arity.
type Operator struct {
	Sym   string
	Arity Arity
}

const assignSym = "="

// opAssign is the plain assignment operator, also synthesized during
// composite expansion.
var opAssign = Operator{Sym: assignSym, Arity: Binary}

// pops is the number of values the evaluator removes from the stack for
// this operator. The block-closing token is Zero arity but still consumes
// the single value left on top of it.
func (op Operator) pops() int {
	if n := op.Arity.Operands(); n > 0 {
		return n
	}
	return 1
}

// Opset looks operator tokens up by exact match.
type Opset interface {
	Op(token string) (Operator, bool)
}

// Regset looks register names up by exact match, yielding the register
// width in bits.
type Regset interface {
	Register(name string) (uint8, bool)
}

// MapOpset is a map-backed Opset.
type MapOpset map[string]Operator

func (m MapOpset) Op(token string) (Operator, bool) {
	op, ok := m[token]
	return op, ok
}

// MapRegset is a map-backed Regset.
type MapRegset map[string]uint8

func (m MapRegset) Register(name string) (uint8, bool) {
	size, ok := m[name]
	return size, ok
}

// DefaultOpset returns a fresh copy of the built-in ESIL operator table.
func DefaultOpset() MapOpset {
	ops := make(MapOpset, 21)
	for _, op := range []Operator{
		{"==", Binary},
		{"<", Binary},
		{">", Binary},
		{"<=", Binary},
		{">=", Binary},
		{"<<", Binary},
		{">>", Binary},
		{"&", Binary},
		{"|", Binary},
		{"=", Binary},
		{"*", Binary},
		{"^", Binary},
		{"+", Binary},
		{"-", Binary},
		{"/", Binary},
		{"%", Binary},
		{"?{", Unary},
		{"!", Unary},
		{"--", Unary},
		{"++", Unary},
		{"}", Zero},
	} {
		ops[op.Sym] = op
	}
	return ops
}

// DefaultRegset returns a fresh copy of the built-in x86-64 register table.
func DefaultRegset() MapRegset {
	return MapRegset{
		"rax": 64,
		"rbx": 64,
		"rcx": 64,
		"rdx": 64,
		"rsp": 64,
		"rbp": 64,
		"rsi": 64,
		"rdi": 64,
		"rip": 64,
	}
}
