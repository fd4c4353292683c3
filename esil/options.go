package esil

// Option configures a Parser at construction time.
type Option interface{ apply(p *Parser) }

func (p *Parser) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(p)
		}
	}
}

type opsetOption struct{ Opset }
type regsetOption struct{ Regset }
type defaultSizeOption uint8
type logfnOption func(mess string, args ...interface{})

func (o opsetOption) apply(p *Parser)       { p.opset = o.Opset }
func (o regsetOption) apply(p *Parser)      { p.regset = o.Regset }
func (o defaultSizeOption) apply(p *Parser) { p.defaultSize = uint8(o) }
func (o logfnOption) apply(p *Parser)       { p.logfn = o }
