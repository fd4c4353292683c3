// Package arch names operator/register table sets for the esil parser.
//
// The parser itself takes whatever tables it is given; this package keeps
// a registry of them keyed by architecture identifier, ships the x86
// families as built-ins, and loads custom sets from YAML.
package arch

import (
	"sort"
	"sync"

	"github.com/shpala/radeco-lib/esil"
)

// Arch bundles the lookup tables and defaults of one target architecture.
type Arch struct {
	Name        string
	DefaultSize uint8
	Opset       esil.MapOpset
	Regset      esil.MapRegset
}

// Options returns the parser options selecting this architecture.
func (a *Arch) Options() []esil.Option {
	return []esil.Option{
		esil.WithOpset(a.Opset),
		esil.WithRegset(a.Regset),
		esil.WithDefaultSize(a.DefaultSize),
	}
}

var (
	mu       sync.RWMutex
	registry = make(map[string]*Arch)
)

// Register adds an architecture to the global registry, replacing any
// prior entry with the same name.
func Register(a *Arch) {
	mu.Lock()
	defer mu.Unlock()
	registry[a.Name] = a
}

// Lookup returns the named architecture, or (nil, false) if not found.
func Lookup(name string) (*Arch, bool) {
	mu.RLock()
	defer mu.RUnlock()
	a, ok := registry[name]
	return a, ok
}

// Names returns the registered architecture names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(&Arch{
		Name:        "x86_64",
		DefaultSize: 64,
		Opset:       esil.DefaultOpset(),
		Regset:      esil.DefaultRegset(),
	})
	Register(&Arch{
		Name:        "x86",
		DefaultSize: 32,
		Opset:       esil.DefaultOpset(),
		Regset: esil.MapRegset{
			"eax": 32,
			"ebx": 32,
			"ecx": 32,
			"edx": 32,
			"esp": 32,
			"ebp": 32,
			"esi": 32,
			"edi": 32,
			"eip": 32,
		},
	})
}
