package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"skibidi/interpreter-go/pkg/ast"
	"skibidi/interpreter-go/pkg/interpreter"
	"skibidi/interpreter-go/pkg/runtime"
)

type colorReporter struct {
	w         io.Writer
	errColor  *color.Color
	warnColor *color.Color
}

// newReporter picks the diagnostic writer for a color mode. "auto" colors
// only when w itself is a terminal.
func newReporter(w io.Writer, mode string) interpreter.Reporter {
	switch strings.ToLower(mode) {
	case "never":
		return interpreter.NewWriterReporter(w)
	case "always":
	default:
		if !isTerminal(w) {
			return interpreter.NewWriterReporter(w)
		}
	}
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	errColor.EnableColor()
	warnColor.EnableColor()
	return &colorReporter{w: w, errColor: errColor, warnColor: warnColor}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *colorReporter) Report(diag interpreter.Diagnostic) {
	c := r.errColor
	if diag.Severity == interpreter.SeverityWarning {
		c = r.warnColor
	}
	c.Fprintln(r.w, diag.String())
}

// renderSymbols prints the bindings in the order they were first assigned.
func renderSymbols(w io.Writer, symbols *runtime.SymbolTable) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Name", "Value"})
	table.SetAutoFormatHeaders(false)
	for idx, binding := range symbols.Snapshot() {
		table.Append([]string{strconv.Itoa(idx + 1), binding.Name, strconv.FormatInt(binding.Value, 10)})
	}
	capacity := "unbounded"
	if symbols.Capacity() > 0 {
		capacity = strconv.Itoa(symbols.Capacity())
	}
	table.SetFooter([]string{"", "capacity", capacity})
	table.Render()
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dumpTree(w io.Writer, node ast.Node) {
	dumpConfig.Fdump(w, node)
}
