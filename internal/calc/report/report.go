// Package report turns a finished simulation into a downloadable summary.
package report

import (
	"fmt"
	"strings"
	"time"
)

type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Document is the content of a report independent of its file format.
type Document struct {
	// ID identifies one download. It goes to file metadata, never to the body.
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	Author      string    `json:"author,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Inputs      []Field   `json:"inputs"`
	Outputs     []Field   `json:"outputs"`
	Status      string    `json:"status"`
	Warning     string    `json:"warning,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	// Diagram is an optional PNG image; only rich formats use it.
	Diagram []byte `json:"-"`
}

// Lines returns the key:value body of the report, without the title. The
// body depends only on the content and GeneratedAt; ID is kept out of it.
func (d Document) Lines() []string {
	lines := []string{
		"Kind: " + d.Kind,
		"Date: " + d.GeneratedAt.Format(time.RFC3339),
	}
	if d.Author != "" {
		lines = append(lines, "Author: "+d.Author)
	}
	for _, f := range d.Inputs {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Key, f.Value))
	}
	for _, f := range d.Outputs {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Key, f.Value))
	}
	lines = append(lines, "status: "+d.Status)
	if d.Warning != "" {
		lines = append(lines, "warning: "+d.Warning)
	}
	if d.Notes != "" {
		lines = append(lines, "notes: "+d.Notes)
	}
	return lines
}

// Text is the plain serialization: the title followed by one key:value per line.
func (d Document) Text() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteByte('\n')
	for _, l := range d.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Filename is the download name for kind with the artifact extension.
func Filename(kind, ext string) string {
	if kind == "" {
		kind = "simulation"
	}
	return "report-" + kind + ext
}
