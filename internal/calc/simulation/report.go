package simulation

import (
	"log"
	"time"

	"Optika/internal/calc/report"
	"Optika/internal/plot"

	"github.com/google/uuid"
)

// Report builds the report document for the outcome. The diagram is
// rasterized when withDiagram is set; a failed rasterization only drops
// the picture.
func (o Outcome) Report(at time.Time, withDiagram bool) report.Document {
	doc := report.Document{
		ID:          uuid.NewString(),
		Title:       o.Title,
		Kind:        string(o.Kind),
		GeneratedAt: at,
		Inputs:      fields(o.Inputs),
		Outputs:     fields(o.Outputs),
		Status:      string(o.Status),
		Warning:     o.Warning,
		Notes:       o.Notes,
	}
	if withDiagram {
		png, err := plot.PNG(o.Diagram, plot.DefaultWidth, plot.DefaultHeight)
		if err != nil {
			log.Printf("report %s: diagram skipped: %v", o.Kind, err)
		} else {
			doc.Diagram = png
		}
	}
	return doc
}

func fields(qs []Quantity) []report.Field {
	out := make([]report.Field, 0, len(qs))
	for _, q := range qs {
		out = append(out, report.Field{Key: q.Name, Value: q.Format()})
	}
	return out
}
