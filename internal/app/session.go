package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/toko-cli/internal/cart"
	"github.com/noah-isme/toko-cli/internal/catalog"
	"github.com/noah-isme/toko-cli/internal/events"
	"github.com/noah-isme/toko-cli/internal/obs"
)

// Banner is printed once before the catalog is announced.
const Banner = "El producto 2 hace un descuento del 10% con strategy"

// DefaultSubscribers are the shoppers notified of every introduced product.
var DefaultSubscribers = []string{"Usuario1", "Usuario2"}

// SessionConfig groups the inputs needed to assemble a shopping session.
type SessionConfig struct {
	Out              io.Writer
	Logger           zerolog.Logger
	MetricsNamespace string
	Registry         *prometheus.Registry
	TracerProvider   trace.TracerProvider
	Seeds            []catalog.Seed
	Subscribers      []string
}

// Session is the state shared by one run of the shop. It owns the only cart of the process.
type Session struct {
	Out      io.Writer
	Logger   zerolog.Logger
	Catalog  *catalog.Catalog
	Bus      *events.Bus
	Cart     *cart.Cart
	Metrics  *obs.SessionMetrics
	Registry *prometheus.Registry
	Tracer   trace.Tracer
}

// NewSession wires the catalog, notification bus and cart. Nothing is printed until Start.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Out == nil {
		return nil, errors.New("app: output writer is required")
	}
	seeds := cfg.Seeds
	if seeds == nil {
		seeds = catalog.DefaultSeeds()
	}
	names := cfg.Subscribers
	if names == nil {
		names = DefaultSubscribers
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	cat, err := catalog.New(seeds)
	if err != nil {
		return nil, err
	}
	metrics := obs.NewSessionMetrics(cfg.MetricsNamespace, reg)
	bus := events.NewBus(cfg.Logger.With().Str("component", "events").Logger(), metrics.NotificationsDelivered)
	for _, name := range names {
		bus.Attach(events.NewUserSubscriber(name, cfg.Out))
	}

	return &Session{
		Out:      cfg.Out,
		Logger:   cfg.Logger,
		Catalog:  cat,
		Bus:      bus,
		Cart:     cart.New(cfg.Out, cfg.Logger.With().Str("component", "cart").Logger(), metrics),
		Metrics:  metrics,
		Registry: reg,
		Tracer:   tp.Tracer("github.com/noah-isme/toko-cli"),
	}, nil
}

// Start prints the banner and introduces every catalog product to the subscribers.
func (s *Session) Start() {
	fmt.Fprintln(s.Out, Banner)
	for _, p := range s.Catalog.Products() {
		s.Bus.IntroduceProduct(p.Name)
		s.Logger.Info().
			Str("product_id", p.ID.String()).
			Str("product", p.Name).
			Str("strategy", p.Strategy.Kind()).
			Msg("product_introduced")
	}
}
