package esil

import "fmt"

// Instruction is one three-address evaluation step: Dest = Op1 <Opcode> Op2.
// Assignment instructions are the two-operand exception: Dest is the null
// sentinel and the effect is Op1 = Op2.
type Instruction struct {
	Opcode Operator
	Dest   Value
	Op1    Value
	Op2    Value
}

func (in Instruction) String() string {
	if in.Opcode.Sym == assignSym {
		return fmt.Sprintf("%v %v %v", in.Op1.Name, in.Opcode.Sym, in.Op2.Name)
	}
	return fmt.Sprintf("%v = %v %v %v", in.Dest.Name, in.Op1.Name, in.Opcode.Sym, in.Op2.Name)
}
