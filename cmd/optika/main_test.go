package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPrintsReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-kind", "lens-convex", "-p", "f=10", "-p", "d_o=25"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	for _, want := range []string{"Kind: lens-convex", "d_i: 16.6667 cm", "M: -0.6667", "status: ok"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("output missing %q:\n%s", want, stdout.String())
		}
	}
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "out.pdf")
	txt := filepath.Join(dir, "out.txt")
	png := filepath.Join(dir, "out.png")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-kind", "prism", "-report", pdf, "-diagram", png}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if code := run([]string{"-kind", "prism", "-report", txt}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}

	check := func(path, prefix string) {
		t.Helper()
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte(prefix)) {
			t.Errorf("%s starts with %q", filepath.Base(path), data[:min(8, len(data))])
		}
	}
	check(pdf, "%PDF")
	check(png, "\x89PNG")
	check(txt, "Triangular Prism")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		args []string
		code int
	}{
		{nil, 2},
		{[]string{"-p", "f"}, 2},
		{[]string{"-kind", "telescope"}, 1},
		{[]string{"-kind", "prism", "-p", "f=1"}, 1},
	}
	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		if code := run(tt.args, &stdout, &stderr); code != tt.code {
			t.Errorf("run(%q) = %d, want %d", tt.args, code, tt.code)
		}
	}
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout.String(), "critical-angle") || !strings.Contains(stdout.String(), "theta_i") {
		t.Errorf("list output:\n%s", stdout.String())
	}
}
