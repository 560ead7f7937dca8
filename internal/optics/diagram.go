package optics

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polar returns the point at distance r from origin o in direction deg
// (degrees, counter-clockwise from +X).
func Polar(o Point, r, deg float64) Point {
	return Point{X: o.X + r*CosDeg(deg), Y: o.Y + r*SinDeg(deg)}
}

type Segment struct {
	From   Point   `json:"from"`
	To     Point   `json:"to"`
	Color  string  `json:"color"`
	Label  string  `json:"label,omitempty"`
	Dashed bool    `json:"dashed,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

type Marker struct {
	At    Point  `json:"at"`
	Color string `json:"color"`
	Label string `json:"label,omitempty"`
}

type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Diagram is an ordered list of segments and markers for the plotting layer.
type Diagram struct {
	Title    string    `json:"title"`
	Segments []Segment `json:"segments"`
	Markers  []Marker  `json:"markers"`
	Bounds   Bounds    `json:"bounds"`
}

func (d *Diagram) Line(from, to Point, color, label string) {
	d.Segments = append(d.Segments, Segment{From: from, To: to, Color: color, Label: label})
}

func (d *Diagram) Dashed(from, to Point, color, label string) {
	d.Segments = append(d.Segments, Segment{From: from, To: to, Color: color, Label: label, Dashed: true})
}

func (d *Diagram) Mark(at Point, color, label string) {
	d.Markers = append(d.Markers, Marker{At: at, Color: color, Label: label})
}

// Polyline appends consecutive segments through pts.
func (d *Diagram) Polyline(pts []Point, color, label string) {
	for i := 1; i < len(pts); i++ {
		l := ""
		if i == 1 {
			l = label
		}
		d.Line(pts[i-1], pts[i], color, l)
	}
}

// Fit sets Bounds to enclose every segment and marker with a relative margin.
func (d *Diagram) Fit(margin float64) {
	first := true
	var b Bounds
	grow := func(p Point) {
		if !Finite(p.X, p.Y) {
			return
		}
		if first {
			b = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
			first = false
			return
		}
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	for _, s := range d.Segments {
		grow(s.From)
		grow(s.To)
	}
	for _, m := range d.Markers {
		grow(m.At)
	}
	if first {
		d.Bounds = Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
		return
	}
	dx := (b.MaxX - b.MinX) * margin
	dy := (b.MaxY - b.MinY) * margin
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	d.Bounds = Bounds{MinX: b.MinX - dx, MaxX: b.MaxX + dx, MinY: b.MinY - dy, MaxY: b.MaxY + dy}
}

// Arrow draws a vertical arrow standing on base with the given signed height.
func (d *Diagram) Arrow(base Point, height float64, color, label string) {
	tip := Point{X: base.X, Y: base.Y + height}
	d.Line(base, tip, color, label)
	head := math.Abs(height) * 0.2
	dir := 1.0
	if height < 0 {
		dir = -1
	}
	d.Line(tip, Point{X: tip.X - head*0.5, Y: tip.Y - dir*head}, color, "")
	d.Line(tip, Point{X: tip.X + head*0.5, Y: tip.Y - dir*head}, color, "")
}

// DropNonFinite removes segments and markers with a NaN or infinite
// coordinate, so the diagram can always be encoded and drawn.
func (d *Diagram) DropNonFinite() {
	segs := d.Segments[:0]
	for _, s := range d.Segments {
		if Finite(s.From.X, s.From.Y, s.To.X, s.To.Y) {
			segs = append(segs, s)
		}
	}
	d.Segments = segs
	marks := d.Markers[:0]
	for _, m := range d.Markers {
		if Finite(m.At.X, m.At.Y) {
			marks = append(marks, m)
		}
	}
	d.Markers = marks
	if !Finite(d.Bounds.MinX, d.Bounds.MaxX, d.Bounds.MinY, d.Bounds.MaxY) {
		d.Fit(0.1)
	}
}
