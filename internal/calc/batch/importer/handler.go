package importer

import (
	"bytes"
	"log"
	"net/http"

	"Optika/internal/calc/batch"
	"Optika/internal/calc/simulation"
)

// maxUpload bounds the multipart form held in memory.
const maxUpload = 8 << 20

type Handler struct{}

// Import runs the queries of an uploaded workbook. The answer is JSON, or
// a results workbook with ?format=xlsx.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	items, err := Read(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := batch.Calculate(batch.Input{Items: items})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		var buf bytes.Buffer
		if err := Write(&buf, res); err != nil {
			log.Printf("batch export: %v", err)
			http.Error(w, "Export error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", XLSXMIME)
		w.Header().Set("Content-Disposition", `attachment; filename="batch-results.xlsx"`)
		w.Write(buf.Bytes())
		return
	}
	simulation.WriteJSON(w, res)
}
