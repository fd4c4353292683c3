package arch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shpala/radeco-lib/esil"
)

type archDoc struct {
	Name        string            `yaml:"name"`
	DefaultSize uint8             `yaml:"default_size"`
	Registers   map[string]uint8  `yaml:"registers"`
	Operators   map[string]string `yaml:"operators"`
}

// FromYAML builds an Arch from a document of the form:
//
//	name: riscv64
//	default_size: 64
//	registers:
//	  a0: 64
//	  sp: 64
//	operators: # optional additions to the standard ESIL opset
//	  "<<<": binary
func FromYAML(data []byte) (*Arch, error) {
	var doc archDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("architecture document missing name")
	}
	if doc.DefaultSize == 0 {
		doc.DefaultSize = esil.DefaultSize
	}

	a := &Arch{
		Name:        doc.Name,
		DefaultSize: doc.DefaultSize,
		Opset:       esil.DefaultOpset(),
		Regset:      make(esil.MapRegset, len(doc.Registers)),
	}
	for name, size := range doc.Registers {
		a.Regset[name] = size
	}
	for sym, arity := range doc.Operators {
		ar, err := parseArity(arity)
		if err != nil {
			return nil, fmt.Errorf("operator %q: %w", sym, err)
		}
		a.Opset[sym] = esil.Operator{Sym: sym, Arity: ar}
	}
	return a, nil
}

// LoadFile reads one architecture document from path and registers it.
func LoadFile(path string) (*Arch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Register(a)
	return a, nil
}

func parseArity(s string) (esil.Arity, error) {
	switch s {
	case "zero":
		return esil.Zero, nil
	case "unary":
		return esil.Unary, nil
	case "binary":
		return esil.Binary, nil
	case "ternary":
		return esil.Ternary, nil
	}
	return 0, fmt.Errorf("unknown arity %q", s)
}
