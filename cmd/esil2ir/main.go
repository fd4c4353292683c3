package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/shpala/radeco-lib/arch"
	"github.com/shpala/radeco-lib/esil"
	"github.com/shpala/radeco-lib/internal/dump"
)

func main() {
	var archName string
	var archFile string
	var trace bool
	var asTable bool
	flag.StringVar(&archName, "arch", "x86_64", "architecture tables to parse against")
	flag.StringVar(&archFile, "arch-file", "", "register an extra architecture from a YAML file")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&asTable, "table", false, "render results as a table")
	flag.Parse()

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })

	if archFile != "" {
		if _, err := arch.LoadFile(archFile); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			atexit.Exit(1)
		}
	}

	a, ok := arch.Lookup(archName)
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: unknown arch %q (have %v)\n", archName, arch.Names())
		atexit.Exit(1)
	}

	opts := a.Options()
	if trace {
		opts = append(opts, esil.WithLogf(log.Printf))
	}
	p := esil.New(opts...)

	for _, stmt := range statements() {
		if err := p.Parse(stmt); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			atexit.Exit(1)
		}
	}

	if asTable {
		dump.Instructions(out, p.Instructions())
		dump.Diags(out, p.Diags())
	} else {
		for _, in := range p.Instructions() {
			fmt.Fprintln(out, in)
		}
		for _, d := range p.Diags() {
			fmt.Fprintf(os.Stderr, "WARNING: dropped %v\n", d)
		}
	}
	atexit.Exit(0)
}

// statements returns the ESIL statements to translate: the positional
// arguments if any were given, otherwise non-blank stdin lines.
func statements() []string {
	if args := flag.Args(); len(args) > 0 {
		return args
	}
	var stmts []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			stmts = append(stmts, line)
		}
	}
	return stmts
}
