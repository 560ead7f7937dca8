package simulation

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"Optika/internal/calc/report"
	"Optika/internal/catalog"
	"Optika/internal/plot"
	"Optika/internal/share"

	"github.com/gorilla/mux"
)

// Request is the body of every simulation route.
type Request struct {
	Params map[string]float64 `json:"params"`
	Author string             `json:"author,omitempty"`
}

type ShareResponse struct {
	Kind  Kind   `json:"kind"`
	Token string `json:"token"`
	Path  string `json:"path"`
}

type Handler struct {
	Signer *share.Signer
	Now    func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// List returns the catalog: every simulation with its parameter ranges.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, catalog.Default().All())
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	out, _, ok := h.run(w, r)
	if !ok {
		return
	}
	WriteJSON(w, out)
}

// Report downloads the outcome as PDF, or as plain text with ?format=text.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	out, req, ok := h.run(w, r)
	if !ok {
		return
	}
	var renderers []report.Renderer
	if r.URL.Query().Get("format") != "text" {
		renderers = append(renderers, report.PDFRenderer{})
	}
	doc := out.Report(h.now(), len(renderers) > 0)
	doc.Author = req.Author
	a := report.Generate(doc, renderers...)

	w.Header().Set("Content-Type", a.MIME)
	w.Header().Set("X-Report-ID", doc.ID)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename(string(out.Kind), a.Ext)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	w.Write(a.Data)
}

func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	out, _, ok := h.run(w, r)
	if !ok {
		return
	}
	png, err := plot.PNG(out.Diagram, plot.DefaultWidth, plot.DefaultHeight)
	if err != nil {
		http.Error(w, "Diagram error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// Share signs the resolved parameters into a link token.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	out, _, ok := h.run(w, r)
	if !ok {
		return
	}
	token, err := h.Signer.Sign(string(out.Kind), out.Params())
	if err != nil {
		http.Error(w, "Could not sign link", http.StatusInternalServerError)
		return
	}
	WriteJSON(w, ShareResponse{Kind: out.Kind, Token: token, Path: "/api/share/" + token})
}

// Shared reruns the simulation stored in a share token.
func (h *Handler) Shared(w http.ResponseWriter, r *http.Request) {
	kind, params, err := h.Signer.Parse(mux.Vars(r)["token"])
	if err != nil {
		http.Error(w, "Invalid or expired link", http.StatusBadRequest)
		return
	}
	out, err := Run(Kind(kind), params)
	if err != nil {
		http.Error(w, "Invalid or expired link", http.StatusBadRequest)
		return
	}
	WriteJSON(w, out)
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (Outcome, Request, bool) {
	var req Request
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return Outcome{}, req, false
		}
	}
	out, err := Run(Kind(mux.Vars(r)["kind"]), req.Params)
	switch {
	case errors.Is(err, ErrUnknownKind):
		http.Error(w, err.Error(), http.StatusNotFound)
		return Outcome{}, req, false
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return Outcome{}, req, false
	}
	return out, req, true
}

// WriteJSON encodes v before writing, so an encoding failure becomes a 500
// instead of a truncated 200.
func WriteJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("encode %T: %v", v, err)
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}
