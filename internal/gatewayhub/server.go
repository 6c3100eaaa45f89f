// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
	"github.com/rc3/fleet-controller/internal/rerrors"
)

// Config is the gateway hub's runtime configuration, grounded on teacher
// cmd/cluster-gateway/main.go's flag-based Config (port, timeouts,
// heartbeat knobs) plus the rednet-specific config path spec.md §6 names.
type Config struct {
	// Port serves /link and /gateway.
	Port int
	// HealthPort serves /healthz and /metrics on a separate,
	// unauthenticated listener, matching the teacher's split httpServer /
	// healthServer.
	HealthPort int
	// RednetConfigPath is the route-table YAML file, read from the
	// ROCKET_REDNET environment variable.
	RednetConfigPath string
	// GatewayTimeout bounds how long a /gateway request waits for an RPC
	// reply before responding 504. Default 5s per spec.md §5.
	GatewayTimeout time.Duration
	// MaxBodyBytes bounds the request body read. Default 1 MiB per
	// original_source's ByteUnit::Mebibyte(1).
	MaxBodyBytes int64
	// HeartbeatInterval is how often the hub pings a connected listener.
	HeartbeatInterval time.Duration
	// HeartbeatTimeout is how long the hub waits for a pong before
	// considering the listener dead.
	HeartbeatTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Port:              8000,
		HealthPort:        8081,
		GatewayTimeout:    5 * time.Second,
		MaxBodyBytes:      1 << 20,
		HeartbeatInterval: 30 * time.Second,
		HeartbeatTimeout:  60 * time.Second,
	}
}

// Server is the rednet RPC broker: a stateless HTTP<->WebSocket bridge.
// Restart drops all in-flight requests — spec.md §6 "Persisted state:
// None" — so Server holds nothing that needs to survive a restart.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	conns    *ConnectionManager
	inflight *InFlightTable
	metrics  *Metrics
	registry *prometheus.Registry
	upgrader websocket.Upgrader
}

func New(cfg Config, logger *slog.Logger) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		cfg:      cfg,
		logger:   logger,
		conns:    NewConnectionManager(),
		inflight: NewInFlightTable(),
		metrics:  NewMetrics(reg),
		registry: reg,
		upgrader: websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096},
	}
}

// Start runs the gateway's two HTTP servers until ctx is cancelled, then
// shuts both down gracefully. Grounded on teacher server.go's Start():
// signal-driven shutdown, a separate health server, sized shutdown
// timeout.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/link/", s.handleLink)
	mux.HandleFunc("/gateway/", s.handleGateway)
	httpServer := &http.Server{Addr: fmt.Sprintf(":%d", s.cfg.Port), Handler: mux}

	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	healthMux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	healthServer := &http.Server{Addr: fmt.Sprintf(":%d", s.cfg.HealthPort), Handler: healthMux}

	errCh := make(chan error, 2)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("gateway server: %w", err)
		}
	}()
	go func() {
		if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("health server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		s.logger.Error("gateway hub server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	_ = healthServer.Shutdown(shutdownCtx)
	return nil
}

// handleGateway serves ANY /gateway/<path...>, matching spec.md §6's HTTP
// surface: 404/502/504/500/passthrough per the taxonomy in §7.
func (s *Server) handleGateway(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := getOrGenerateRequestID(r)
	logger := s.logger.With("httpRequestID", requestID)

	path := strings.TrimPrefix(r.URL.Path, "/gateway")
	if path == "" {
		path = "/"
	}

	cfg, err := LoadRednetConfig(s.cfg.RednetConfigPath)
	if err != nil {
		logger.Error("failed to load rednet config", "error", err)
		s.respondStatus(w, start, http.StatusBadGateway)
		return
	}

	route, ok := MatchRoute(cfg.Routes, path)
	if !ok {
		s.metrics.RouteMatches.WithLabelValues("no_match").Inc()
		s.respondStatus(w, start, http.StatusNotFound)
		return
	}
	s.metrics.RouteMatches.WithLabelValues("matched").Inc()

	body, err := readBodyLimited(r.Body, s.cfg.MaxBodyBytes)
	if err != nil {
		logger.Error("failed to read request body", "error", rerrors.NewBodyReadFailure(err))
		s.respondStatus(w, start, http.StatusInternalServerError)
		return
	}

	envelope := RPCRequest{
		Dest:      route.Backend,
		RequestID: uuid.New(),
		Payload: HTTPRequest{
			Method:  r.Method,
			URI:     path,
			Headers: r.Header,
			Body:    string(body),
		},
	}

	// Install the reply slot BEFORE enqueueing the outbound send — the
	// Open Question resolution in DESIGN.md. This ordering closes the
	// race in original_source's Server::new_request, which sends first
	// and only then records the slot.
	reply, release := s.inflight.Install(envelope.RequestID)
	defer func() {
		release()
		s.metrics.InFlightRequests.Set(float64(s.inflight.Len()))
	}()
	s.metrics.InFlightRequests.Set(float64(s.inflight.Len()))

	outbound, err := s.resolveListener(envelope.Dest)
	if err != nil {
		logger.Warn("no listener for request", "error", err)
		var noListeners *rerrors.NoListeners
		if errors.As(err, &noListeners) {
			s.respondStatus(w, start, http.StatusBadGateway)
			return
		}
		s.respondStatus(w, start, http.StatusInternalServerError)
		return
	}

	select {
	case outbound <- envelope:
	default:
		logger.Error("listener outbound queue full, treating as listener failure")
		s.respondStatus(w, start, http.StatusInternalServerError)
		return
	}

	timer := time.NewTimer(s.cfg.GatewayTimeout)
	defer timer.Stop()

	select {
	case resp, ok := <-reply:
		if !ok {
			s.respondStatus(w, start, http.StatusBadGateway)
			return
		}
		s.writeUpstreamResponse(w, resp)
		s.metrics.RequestDuration.WithLabelValues(fmt.Sprint(resp.Status)).Observe(time.Since(start).Seconds())
	case <-timer.C:
		s.respondStatus(w, start, http.StatusGatewayTimeout)
	case <-r.Context().Done():
		s.respondStatus(w, start, http.StatusGatewayTimeout)
	}
}

// resolveListener picks the outbound queue a request should be sent down.
// Every backend kind resolves the same way: snapshot the current listener
// set and pick one uniformly at random (original_source's
// Server::new_request never branches on dest to select a connection — dest
// is only forwarded in the envelope payload for the computer on the other
// end to interpret).
func (s *Server) resolveListener(dest fleetv1alpha1.RednetBackend) (chan RPCRequest, error) {
	switch dest.Kind {
	case fleetv1alpha1.RednetBackendAnycast, fleetv1alpha1.RednetBackendComputer, fleetv1alpha1.RednetBackendHostname:
		_, outbound, err := s.conns.RandomListener()
		return outbound, err
	default:
		return nil, fmt.Errorf("unknown rednet backend kind %q", dest.Kind)
	}
}

func (s *Server) writeUpstreamResponse(w http.ResponseWriter, resp HTTPResponse) {
	for k, vs := range resp.Headers {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.Status)
	_, _ = io.WriteString(w, resp.Body)
}

func (s *Server) respondStatus(w http.ResponseWriter, start time.Time, status int) {
	w.WriteHeader(status)
	s.metrics.RequestDuration.WithLabelValues(fmt.Sprint(status)).Observe(time.Since(start).Seconds())
}

func readBodyLimited(r io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(r, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("body exceeds %d byte limit", limit)
	}
	return data, nil
}

// getOrGenerateRequestID reads X-Request-ID if present, otherwise
// generates one. This is a distinct id from the RPC envelope's requestID:
// it exists purely for operator log correlation on the HTTP side, matching
// teacher server.go's getOrGenerateRequestID.
func getOrGenerateRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("t%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
