package optics

import (
	"math"
	"testing"
)

func TestRadiansDegreesRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 30, 45, 90, 180, -60, 359.5} {
		got := Degrees(Radians(deg))
		if math.Abs(got-deg) > 1e-12 {
			t.Errorf("round trip %.3f: got %.15f", deg, got)
		}
	}
	if math.Abs(Radians(180)-math.Pi) > 1e-15 {
		t.Errorf("Radians(180) = %v", Radians(180))
	}
}

func TestAsinDomain(t *testing.T) {
	if _, ok := Asin(1.0000001); ok {
		t.Fatal("expected out of domain above 1")
	}
	if _, ok := Asin(-1.5); ok {
		t.Fatal("expected out of domain below -1")
	}
	if _, ok := Asin(math.NaN()); ok {
		t.Fatal("expected NaN to be rejected")
	}
	deg, ok := Asin(1)
	if !ok || math.Abs(deg-90) > 1e-12 {
		t.Fatalf("Asin(1) = %v, %v", deg, ok)
	}
	// rounding noise on the boundary is absorbed
	deg, ok = Asin(1 + 1e-14)
	if !ok || deg != 90 {
		t.Fatalf("Asin(1+1e-14) = %v, %v", deg, ok)
	}
}

func TestAngleValue(t *testing.T) {
	if v, ok := AngleOK(12.5).Value(); !ok || v != 12.5 {
		t.Errorf("AngleOK value = %v, %v", v, ok)
	}
	a := AngleWithStatus(StatusTotalInternalReflection)
	if v, ok := a.Value(); ok || v != 0 {
		t.Errorf("TIR angle value = %v, %v", v, ok)
	}
}

func TestStatusCategory(t *testing.T) {
	tests := []struct {
		s    Status
		want Category
	}{
		{StatusOK, CategoryNone},
		{StatusAtInfinity, CategorySingularity},
		{StatusTotalInternalReflection, CategoryDomainViolation},
		{StatusNoSolution, CategoryDomainViolation},
		{StatusNotApplicable, CategoryDomainViolation},
		{StatusInvalidInput, CategoryDomainViolation},
	}
	for _, tt := range tests {
		if got := tt.s.Category(); got != tt.want {
			t.Errorf("%s: category %q, want %q", tt.s, got, tt.want)
		}
		if tt.s != StatusOK && tt.s.Warning() == "" {
			t.Errorf("%s: empty warning", tt.s)
		}
	}
}

func TestWorst(t *testing.T) {
	if got := Worst(StatusOK, StatusOK); got != StatusOK {
		t.Errorf("Worst(ok, ok) = %s", got)
	}
	if got := Worst(StatusOK, StatusAtInfinity, StatusNoSolution); got != StatusAtInfinity {
		t.Errorf("Worst = %s, want at_infinity", got)
	}
}

func TestValidIndex(t *testing.T) {
	if ValidIndex(0.99) || ValidIndex(math.Inf(1)) || ValidIndex(math.NaN()) {
		t.Error("invalid index accepted")
	}
	if !ValidIndex(1) || !ValidIndex(2.4) {
		t.Error("valid index rejected")
	}
}

func TestDiagramFit(t *testing.T) {
	var d Diagram
	d.Line(Point{X: -2, Y: 0}, Point{X: 2, Y: 1}, "red", "ray")
	d.Mark(Point{X: 3, Y: -1}, "blue", "object")
	d.Fit(0.1)
	b := d.Bounds
	if b.MinX >= -2 || b.MaxX <= 3 || b.MinY >= -1 || b.MaxY <= 1 {
		t.Fatalf("bounds do not enclose content: %+v", b)
	}

	var empty Diagram
	empty.Fit(0.1)
	if empty.Bounds != (Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}) {
		t.Fatalf("empty bounds = %+v", empty.Bounds)
	}
}

func TestPolylineLabelsFirstSegmentOnly(t *testing.T) {
	var d Diagram
	d.Polyline([]Point{{0, 0}, {1, 0}, {1, 1}}, "black", "mirror")
	if len(d.Segments) != 2 {
		t.Fatalf("got %d segments", len(d.Segments))
	}
	if d.Segments[0].Label != "mirror" || d.Segments[1].Label != "" {
		t.Fatalf("labels = %q, %q", d.Segments[0].Label, d.Segments[1].Label)
	}
}

func TestDropNonFinite(t *testing.T) {
	var d Diagram
	d.Line(Point{0, 0}, Point{1, 1}, "red", "kept")
	d.Line(Point{0, 0}, Point{math.NaN(), 1}, "red", "nan")
	d.Line(Point{math.Inf(-1), 0}, Point{1, 1}, "red", "inf")
	d.Mark(Point{2, 2}, "blue", "kept")
	d.Mark(Point{2, math.Inf(1)}, "blue", "inf")
	d.Bounds = Bounds{MinX: math.NaN()}

	d.DropNonFinite()
	if len(d.Segments) != 1 || d.Segments[0].Label != "kept" {
		t.Fatalf("segments = %+v", d.Segments)
	}
	if len(d.Markers) != 1 || d.Markers[0].Label != "kept" {
		t.Fatalf("markers = %+v", d.Markers)
	}
	b := d.Bounds
	if !Finite(b.MinX, b.MaxX, b.MinY, b.MaxY) || b.MinX >= 0 || b.MaxX <= 2 {
		t.Fatalf("bounds = %+v", b)
	}
}
