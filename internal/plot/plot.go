// Package plot rasterizes diagrams produced by the formula packages.
package plot

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"Optika/internal/optics"
)

const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch

	defaultLineWidth = 2.0
)

// PNG draws d and returns the encoded image.
func PNG(d optics.Diagram, width, height vg.Length) ([]byte, error) {
	p, err := build(d)
	if err != nil {
		return nil, err
	}
	w, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("render diagram: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode diagram: %w", err)
	}
	return buf.Bytes(), nil
}

func build(d optics.Diagram) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = d.Title
	p.HideAxes()
	p.Legend.Top = true

	for i, s := range d.Segments {
		l, err := plotter.NewLine(plotter.XYs{{X: s.From.X, Y: s.From.Y}, {X: s.To.X, Y: s.To.Y}})
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		l.LineStyle.Color = colorOf(s.Color, i)
		width := s.Width
		if width <= 0 {
			width = defaultLineWidth
		}
		l.LineStyle.Width = vg.Points(width)
		if s.Dashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(l)
		if s.Label != "" {
			p.Legend.Add(s.Label, l)
		}
	}

	for i, m := range d.Markers {
		sc, err := plotter.NewScatter(plotter.XYs{{X: m.At.X, Y: m.At.Y}})
		if err != nil {
			return nil, fmt.Errorf("marker %d: %w", i, err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  colorOf(m.Color, len(d.Segments)+i),
			Radius: vg.Points(4),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(sc)
		if m.Label != "" {
			p.Legend.Add(m.Label, sc)
		}
	}

	// Add widens the ranges to the data; the diagram's bounds win.
	b := d.Bounds
	if b.MaxX > b.MinX && b.MaxY > b.MinY {
		p.X.Min, p.X.Max = b.MinX, b.MaxX
		p.Y.Min, p.Y.Max = b.MinY, b.MaxY
	}
	return p, nil
}

// colorOf maps a colour name to RGBA, falling back to the plotutil palette.
func colorOf(name string, i int) color.Color {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return plotutil.Color(i)
}
