package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	want := []string{
		"mirror-flat", "mirror-concave", "mirror-convex", "refraction", "critical-angle",
		"prism", "lens-concave", "lens-convex", "lens-system", "dispersion",
	}
	got := c.Kinds()
	if len(got) != len(want) {
		t.Fatalf("kinds = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLookupDefaults(t *testing.T) {
	s, ok := Default().Lookup("lens-convex")
	if !ok {
		t.Fatal("lens-convex missing")
	}
	d := s.Defaults()
	if d["f"] != 10 || d["d_o"] != 25 {
		t.Fatalf("defaults = %v", d)
	}
	p, ok := s.Param("d_o")
	if !ok || p.Min != 1 || p.Max != 300 || p.Unit != "cm" {
		t.Fatalf("d_o = %+v", p)
	}
	if _, ok := s.Param("nope"); ok {
		t.Fatal("unexpected parameter")
	}
	if _, ok := Default().Lookup("hologram"); ok {
		t.Fatal("unexpected kind")
	}
}

func TestDefaultsIsCopy(t *testing.T) {
	s, _ := Default().Lookup("prism")
	d := s.Defaults()
	d["A"] = 1
	if again := s.Defaults(); again["A"] != 60 {
		t.Fatalf("defaults mutated: %v", again)
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := map[string]string{
		"duplicate": "simulations:\n  - kind: a\n  - kind: a\n",
		"no kind":   "simulations:\n  - title: x\n",
		"range":     "simulations:\n  - kind: a\n    params:\n      - {name: p, min: 5, max: 1, default: 2}\n",
		"syntax":    "simulations: [",
	}
	for name, doc := range tests {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	c, err := Parse([]byte(strings.TrimSpace("simulations:\n  - kind: a\n")))
	if err != nil || len(c.All()) != 1 {
		t.Fatalf("minimal catalog: %v, %v", c, err)
	}
}
