package server

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/collector"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/snapshot"
)

//go:embed web/index.html
var indexHTML []byte

// handler bundles the dependencies the HTTP endpoints need.
type handler struct {
	collector *collector.Collector
	snapshots *snapshot.Manager
}

// New builds the HTTP server for the explorer API and the embedded page.
func New(addr string, col *collector.Collector, snaps *snapshot.Manager) *http.Server {
	h := &handler{collector: col, snapshots: snaps}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/countries", h.countries)
		r.Get("/indicator", h.indicator)
		r.Get("/indicator.csv", h.indicatorCSV)
		r.Get("/latest", h.latest)
		r.Get("/calculator", h.calculate)
	})

	return &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// live fetches walk many countries sequentially with pacing
		WriteTimeout: 3 * time.Minute,
	}
}
