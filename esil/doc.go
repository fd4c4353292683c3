/* Package esil translates ESIL strings into a three-address IR.

ESIL (Evaluable Strings Intermediate Language) is the IL emitted by the
radare2 disassembler. A statement is a comma-delimited token stream over an
implicit stack: operand tokens (registers, integer constants, anything
else) push values, operator tokens consume them. This package evaluates
such streams symbolically, flattening each operator application into one
Instruction whose result is a uniquely named Temporary, ready for a
downstream analysis pipeline.

Operand tokens never fail to classify: register names take their width
from the register table, base-10 integers become Constants, and everything
else degrades to an Unknown operand of the default width. Composite tokens
such as "+=" expand into the basic operation followed by an assignment
back into the operation's leftmost operand:

	p := esil.New()
	if err := p.Parse("eax,ebx,^="); err != nil {
		// unknown operator inside a composite token
	}
	for _, in := range p.Instructions() {
		fmt.Println(in)
	}
	// tmp_1 = eax ^ ebx
	// eax = tmp_1

A Parse call has one of three outcomes: err != nil means an unknown
composite sub-operator aborted the call and the rest of the string was
discarded; err == nil with a non-empty Diags means some operators were
dropped for lack of stack operands and the instruction sequence is
incomplete relative to the input; err == nil with empty Diags means every
operator was applied.

The operator and register tables are injected at construction (see the
arch package for named architectures); the built-in defaults model x86-64.
A Parser must not be shared between goroutines, but Opset and Regset
values are read-only after construction and may back any number of
Parsers.
*/
package esil
