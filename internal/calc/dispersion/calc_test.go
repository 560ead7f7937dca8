package dispersion

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSpectrumRays(t *testing.T) {
	rays := SpectrumRays(60, DefaultColors)
	if len(rays) != len(DefaultColors) {
		t.Fatalf("got %d rays", len(rays))
	}
	for k, r := range rays {
		if r.Color != DefaultColors[k] {
			t.Errorf("ray %d colour %q", k, r.Color)
		}
		if r.Start.X != 0 || r.Start.Y != 0 {
			t.Errorf("ray %d does not start at origin: %+v", k, r.Start)
		}
		want := 60 + float64(k)*SpreadDeg
		if !scalar.EqualWithinAbs(r.AngleDeg, want, 1e-12) {
			t.Errorf("ray %d angle %v, want %v", k, r.AngleDeg, want)
		}
		if l := math.Hypot(r.End.X, r.End.Y); !scalar.EqualWithinAbs(l, rayLength, 1e-12) {
			t.Errorf("ray %d length %v", k, l)
		}
	}
}

func TestSpectrumRays_Restartable(t *testing.T) {
	a := SpectrumRays(45, []string{"red", "blue"})
	b := SpectrumRays(45, []string{"red", "blue"})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("ray %d differs between calls", i)
		}
	}
	// iterating twice gives the same sequence
	var first, second []string
	for _, r := range a {
		first = append(first, r.Color)
	}
	for _, r := range a {
		second = append(second, r.Color)
	}
	if len(first) != 2 || first[0] != second[0] || first[1] != second[1] {
		t.Fatalf("iteration mismatch: %v vs %v", first, second)
	}
}

func TestSpectrumRays_Empty(t *testing.T) {
	if rays := SpectrumRays(60, nil); rays == nil || len(rays) != 0 {
		t.Fatalf("rays = %#v", rays)
	}
	if rays := SpectrumRays(math.NaN(), DefaultColors); len(rays) != 0 {
		t.Fatalf("NaN angle produced %d rays", len(rays))
	}
}

func TestCalculate_DefaultColors(t *testing.T) {
	res, err := Calculate(Input{PrismAngleDeg: 60})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rays) != 7 || res.Rays[0].Color != "violet" || res.Rays[6].Color != "red" {
		t.Fatalf("rays = %+v", res.Rays)
	}
	d := Diagram(res.Rays)
	if len(d.Segments) != 7 || d.Segments[3].Width != 6 {
		t.Fatalf("diagram = %+v", d.Segments)
	}
}
