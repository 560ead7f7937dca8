// Command optika runs one optics simulation from the terminal and prints
// its report. It can also write the report (PDF or .txt) and the diagram
// (PNG) to files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"Optika/internal/calc/report"
	"Optika/internal/calc/simulation"
	"Optika/internal/catalog"
	"Optika/internal/plot"
)

// paramFlags collects repeated -p name=value flags.
type paramFlags map[string]float64

func (p paramFlags) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (p paramFlags) Set(s string) error {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	p[strings.TrimSpace(name)] = v
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: optika -kind <kind> [-p name=value ...] [-report file.pdf|file.txt] [-diagram file.png]")
	fmt.Fprintln(w, "       optika -list")
	fmt.Fprintln(w)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func listKinds(w io.Writer) {
	for _, sim := range catalog.Default().All() {
		fmt.Fprintf(w, "%-15s %s\n", sim.Kind, sim.Title)
		for _, p := range sim.Params {
			unit := p.Unit
			if unit != "" {
				unit = " " + unit
			}
			fmt.Fprintf(w, "    %-8s %s, %g..%g%s (default %g)\n", p.Name, p.Label, p.Min, p.Max, unit, p.Default)
		}
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("optika", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	params := paramFlags{}
	var kind, reportPath, diagramPath string
	var list bool
	fs.StringVar(&kind, "kind", "", "Simulation kind (see -list)")
	fs.Var(params, "p", "Parameter as name=value, repeatable")
	fs.StringVar(&reportPath, "report", "", "Write the report to this file (.txt for plain text, PDF otherwise)")
	fs.StringVar(&diagramPath, "diagram", "", "Write the diagram to this PNG file")
	fs.BoolVar(&list, "list", false, "List simulation kinds and their parameters")
	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		printUsage(fs, stderr)
		return 2
	}

	if list {
		listKinds(stdout)
		return 0
	}
	if kind == "" {
		printUsage(fs, stderr)
		return 2
	}

	out, err := simulation.Run(simulation.Kind(kind), params)
	if err != nil {
		fmt.Fprintf(stderr, "optika: %v\n", err)
		return 1
	}
	doc := out.Report(time.Now(), reportPath != "" && !isText(reportPath))
	fmt.Fprint(stdout, doc.Text())

	if reportPath != "" {
		var renderers []report.Renderer
		if !isText(reportPath) {
			renderers = append(renderers, report.PDFRenderer{})
		}
		a := report.Generate(doc, renderers...)
		if err := os.WriteFile(reportPath, a.Data, 0o644); err != nil {
			fmt.Fprintf(stderr, "optika: write report: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "report written to %s (%s)\n", reportPath, a.MIME)
	}
	if diagramPath != "" {
		png, err := plot.PNG(out.Diagram, plot.DefaultWidth, plot.DefaultHeight)
		if err != nil {
			fmt.Fprintf(stderr, "optika: render diagram: %v\n", err)
			return 1
		}
		if err := os.WriteFile(diagramPath, png, 0o644); err != nil {
			fmt.Fprintf(stderr, "optika: write diagram: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "diagram written to %s\n", diagramPath)
	}
	return 0
}

func isText(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
