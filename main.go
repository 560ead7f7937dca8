package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Optika/internal/calc/batch"
	"Optika/internal/calc/batch/importer"
	"Optika/internal/calc/dispersion"
	"Optika/internal/calc/lens"
	"Optika/internal/calc/mirror"
	"Optika/internal/calc/prism"
	"Optika/internal/calc/refraction"
	"Optika/internal/calc/simulation"
	"Optika/internal/config"
	"Optika/internal/limit"
	"Optika/internal/share"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}

func HandleList(mux *mux.Router, cfg config.Config, signer *share.Signer) {
	limiter := limit.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	simH := &simulation.Handler{Signer: signer}
	api.HandleFunc("/simulations", simH.List).Methods("GET")
	api.HandleFunc("/simulations/{kind}/calc", simH.Calc).Methods("POST")
	api.HandleFunc("/simulations/{kind}/report", simH.Report).Methods("POST")
	api.HandleFunc("/simulations/{kind}/diagram", simH.Diagram).Methods("POST")
	api.HandleFunc("/simulations/{kind}/share", simH.Share).Methods("POST")
	api.HandleFunc("/share/{token}", simH.Shared).Methods("GET")

	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	api.HandleFunc("/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/batch/import", importH.Import).Methods("POST")

	mirrorH := &mirror.Handler{}
	refractionH := &refraction.Handler{}
	prismH := &prism.Handler{}
	lensH := &lens.Handler{}
	dispersionH := &dispersion.Handler{}

	api.HandleFunc("/tools/mirror/calc", mirrorH.Calc).Methods("POST")
	api.HandleFunc("/tools/refraction/calc", refractionH.Calc).Methods("POST")
	api.HandleFunc("/tools/prism/calc", prismH.Calc).Methods("POST")
	api.HandleFunc("/tools/lens/calc", lensH.Calc).Methods("POST")
	api.HandleFunc("/tools/dispersion/calc", dispersionH.Calc).Methods("POST")
}

func newServer(cfg config.Config) (*http.Server, error) {
	signer, err := share.NewSigner(cfg.TokenKey, cfg.ShareTTL)
	if err != nil {
		return nil, err
	}
	if len(cfg.TokenKey) == 0 {
		log.Println("TOKEN_KEY is not set, share links last until restart")
	}
	router := mux.NewRouter()
	HandleList(router, cfg, signer)

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           logRequests(CORS(cfg.CORSOrigin, router)),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	server, err := newServer(cfg)
	if err != nil {
		log.Fatalf("Server setup error: %v", err)
	}
	log.Printf("Starting server on %s (tls=%t)", cfg.Addr, cfg.TLS())

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
