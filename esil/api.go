package esil

// DefaultSize is the bit width given to Constant and Unknown operands when
// no option overrides it.
const DefaultSize = 64

// New builds a Parser over the built-in x86-64 tables, then applies opts.
func New(opts ...Option) *Parser {
	p := &Parser{
		opset:       DefaultOpset(),
		regset:      DefaultRegset(),
		defaultSize: DefaultSize,
	}
	p.apply(opts...)
	return p
}

func WithOpset(ops Opset) Option        { return opsetOption{ops} }
func WithRegset(regs Regset) Option     { return regsetOption{regs} }
func WithDefaultSize(bits uint8) Option { return defaultSizeOption(bits) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }
