package esil

import (
	"strconv"
	"strings"
)

// Parser evaluates comma-delimited ESIL token streams into a flat
// three-address instruction sequence. Instructions accumulate across Parse
// calls; retrieve them with Instructions.
type Parser struct {
	stack []Value
	insts []Instruction
	diags []Diagnostic

	opset       Opset
	regset      Regset
	tmpIndex    uint64
	defaultSize uint8

	logfn func(mess string, args ...interface{})
}

// Parse evaluates one ESIL string. It returns nil even when instructions
// were abandoned for lack of operands (those are recorded, see Diags); it
// returns an *OpError, discarding the rest of the string, when a composite
// token names an unknown operator.
func (p *Parser) Parse(esil string) error {
	for i, token := range strings.Split(esil, ",") {
		if op, ok := p.opset.Op(token); ok {
			p.eval(i, token, op)
			continue
		}

		if !strings.ContainsRune(token, '=') {
			v := p.operand(token)
			p.logf("push %v %q", v.Location, v.Name)
			p.push(v)
			continue
		}

		if err := p.expand(i, token); err != nil {
			p.logf("abort %v", err)
			return err
		}
	}
	return nil
}

// operand classifies a non-operator token. Classification never fails:
// names absent from the register table that do not read as a base-10
// integer are Unknown operands of the default width.
func (p *Parser) operand(token string) Value {
	if size, ok := p.regset.Register(token); ok {
		return Value{Name: token, Size: size, Location: Register}
	}
	v := Value{Name: token, Size: p.defaultSize, Location: Unknown}
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		v.Location = Constant
		v.Literal = n
	}
	return v
}

// eval applies one operator to the stack, emitting at most one
// instruction. An operator that needs more operands than the stack holds
// leaves the stack untouched and records a diagnostic instead.
func (p *Parser) eval(pos int, token string, op Operator) {
	if need := op.pops(); len(p.stack) < need {
		p.drop(pos, token)
		return
	}

	in := Instruction{Opcode: op, Dest: nullValue(), Op1: nullValue(), Op2: nullValue()}
	switch op.Arity {
	case Binary:
		// popped in LIFO order, stored in source order
		in.Op2 = p.pop()
		in.Op1 = p.pop()
	case Unary:
		in.Op2 = p.pop()
	default:
		// the Zero-arity block close still consumes the value left on
		// top of it; Ternary is reserved with no table entries
		in.Op1 = p.pop()
	}
	if op.Sym != assignSym {
		in.Dest = p.tmp()
	}
	p.insts = append(p.insts, in)
	p.push(in.Dest)
	p.logf("emit %v", in)
}

// expand rewrites a composite operate-and-assign token into basic
// instructions: the operation into a fresh temporary, then an assignment
// of that temporary back into the operation's leftmost operand.
func (p *Parser) expand(pos int, token string) error {
	subs := strings.Split(token, "=")
	if n := len(subs) - 1; subs[n] == "" {
		subs = subs[:n]
	}

	for _, sub := range subs {
		op, ok := p.opset.Op(sub)
		if !ok {
			return &OpError{Pos: pos, Token: token, Sub: sub}
		}
		need := op.pops()
		if len(p.stack) < need {
			p.drop(pos, token)
			continue
		}

		dst := p.stack[len(p.stack)-need]
		p.eval(pos, token, op)

		// reinsert the target beneath the computed result so that the
		// synthetic assignment reads dst = result
		res := p.pop()
		p.push(dst)
		p.push(res)
		p.eval(pos, token, opAssign)
	}
	return nil
}

func (p *Parser) drop(pos int, token string) {
	p.diags = append(p.diags, Diagnostic{Pos: pos, Token: token, Err: ErrUnderflow})
	p.logf("drop %q: %v", token, ErrUnderflow)
}

func (p *Parser) push(v Value) {
	p.stack = append(p.stack, v)
}

func (p *Parser) pop() (v Value) {
	i := len(p.stack) - 1
	v, p.stack = p.stack[i], p.stack[:i]
	return v
}

func (p *Parser) tmp() Value {
	p.tmpIndex++
	return tmpValue(p.tmpIndex)
}

// Instructions returns a copy of every instruction accumulated so far,
// across all Parse calls on this Parser.
func (p *Parser) Instructions() []Instruction {
	return append([]Instruction(nil), p.insts...)
}

// Diags returns a copy of the diagnostics accumulated so far. An empty
// result means every applied operator emitted its instruction.
func (p *Parser) Diags() []Diagnostic {
	return append([]Diagnostic(nil), p.diags...)
}

func (p *Parser) logf(mess string, args ...interface{}) {
	if p.logfn != nil {
		p.logfn(mess, args...)
	}
}
