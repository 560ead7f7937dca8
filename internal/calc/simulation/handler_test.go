package simulation

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Optika/internal/share"

	"github.com/gorilla/mux"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	signer, err := share.NewSigner([]byte("test-key"), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	h := &Handler{Signer: signer, Now: func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }}
	r := mux.NewRouter()
	r.HandleFunc("/api/simulations", h.List).Methods("GET")
	r.HandleFunc("/api/simulations/{kind}/calc", h.Calc).Methods("POST")
	r.HandleFunc("/api/simulations/{kind}/report", h.Report).Methods("POST")
	r.HandleFunc("/api/simulations/{kind}/diagram", h.Diagram).Methods("POST")
	r.HandleFunc("/api/simulations/{kind}/share", h.Share).Methods("POST")
	r.HandleFunc("/api/share/{token}", h.Shared).Methods("GET")
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCalc(t *testing.T) {
	r := newRouter(t)
	rec := serve(r, "POST", "/api/simulations/lens-convex/calc", `{"params":{"f":10,"d_o":20}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var out Outcome
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Kind != KindLensConvex || math.Abs(output(t, out, "d_i").Value-20) > 1e-9 {
		t.Fatalf("outcome = %+v", out)
	}

	// an empty body runs the defaults
	if rec := serve(r, "POST", "/api/simulations/prism/calc", ""); rec.Code != http.StatusOK {
		t.Errorf("defaults status %d", rec.Code)
	}

	errs := []struct {
		path, body string
		code       int
	}{
		{"/api/simulations/telescope/calc", `{}`, http.StatusNotFound},
		{"/api/simulations/prism/calc", `{"params":{"f":1}}`, http.StatusBadRequest},
		{"/api/simulations/prism/calc", `{`, http.StatusBadRequest},
	}
	for _, e := range errs {
		if rec := serve(r, "POST", e.path, e.body); rec.Code != e.code {
			t.Errorf("%s %s: status %d, want %d", e.path, e.body, rec.Code, e.code)
		}
	}
}

func TestHandlerList(t *testing.T) {
	rec := serve(newRouter(t), "GET", "/api/simulations", "")
	var sims []struct {
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&sims); err != nil {
		t.Fatal(err)
	}
	if len(sims) != len(Kinds()) {
		t.Fatalf("listed %d simulations", len(sims))
	}
}

func TestHandlerReport(t *testing.T) {
	r := newRouter(t)
	rec := serve(r, "POST", "/api/simulations/refraction/report", `{"params":{"theta1":45},"author":"Lab 3"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a PDF")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "report-refraction.pdf") {
		t.Errorf("disposition %q", cd)
	}
	if rec.Header().Get("X-Report-ID") == "" {
		t.Error("missing X-Report-ID")
	}

	rec = serve(r, "POST", "/api/simulations/refraction/report?format=text", `{"params":{"theta1":45},"author":"Lab 3"}`)
	body := rec.Body.String()
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("content type %q", rec.Header().Get("Content-Type"))
	}
	for _, want := range []string{"Author: Lab 3", "Date: 2024-05-01T00:00:00Z", "theta1: 45 deg"} {
		if !strings.Contains(body, want) {
			t.Errorf("text report missing %q:\n%s", want, body)
		}
	}
}

func TestHandlerDiagram(t *testing.T) {
	rec := serve(newRouter(t), "POST", "/api/simulations/dispersion/diagram", `{"params":{"angle":45}}`)
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("status %d type %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatal("body is not a PNG")
	}
}

func TestHandlerShareRoundTrip(t *testing.T) {
	r := newRouter(t)
	rec := serve(r, "POST", "/api/simulations/mirror-concave/share", `{"params":{"d_o":30}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var link ShareResponse
	if err := json.NewDecoder(rec.Body).Decode(&link); err != nil {
		t.Fatal(err)
	}
	if link.Path != "/api/share/"+link.Token {
		t.Fatalf("path %q", link.Path)
	}

	rec = serve(r, "GET", link.Path, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("shared status %d: %s", rec.Code, rec.Body.String())
	}
	var out Outcome
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Kind != KindMirrorConcave || out.Params()["d_o"] != 30 || out.Params()["f"] != 10 {
		t.Fatalf("shared outcome = %+v", out.Inputs)
	}

	if rec := serve(r, "GET", "/api/share/not-a-token", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad token status %d", rec.Code)
	}
}

func TestWriteJSONEncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, map[string]float64{"d_i": math.Inf(1)})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, body %q", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Header().Get("Content-Type"), "json") {
		t.Errorf("content type %q on failure", rec.Header().Get("Content-Type"))
	}
}
