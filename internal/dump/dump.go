// Package dump renders translation results for human inspection.
package dump

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/shpala/radeco-lib/esil"
)

// Instructions writes the sequence as an aligned table, one row per
// instruction. Null-sentinel slots render as "-".
func Instructions(w io.Writer, insts []esil.Instruction) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Instructions")
	tw.AppendHeader(table.Row{"#", "Dest", "Op1", "Opcode", "Op2", "Rendered"})
	for i, in := range insts {
		tw.AppendRow(table.Row{i, slot(in.Dest), slot(in.Op1), in.Opcode.Sym, slot(in.Op2), in.String()})
	}
	tw.Render()
}

// Diags writes one row per abandoned instruction.
func Diags(w io.Writer, diags []esil.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Dropped")
	tw.AppendHeader(table.Row{"Token #", "Token", "Cause"})
	for _, d := range diags {
		tw.AppendRow(table.Row{d.Pos, d.Token, d.Err})
	}
	tw.Render()
}

func slot(v esil.Value) string {
	if v.IsNull() {
		return "-"
	}
	return v.Name
}
