package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/aretw0/todi/api"
	"github.com/aretw0/todi/internal/logging"
	"github.com/aretw0/todi/pkg/notation"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package http -generate types -o api.gen.go ../../../api/openapi.yaml

const (
	// MaxAlternatives caps k of a generate request.
	MaxAlternatives = 50
	// MaxTokens bounds the length of a sequence sent to generate.
	MaxTokens = 64
	// MaxBodyBytes bounds every request body.
	MaxBodyBytes = 1 << 20
)

// Server serves the notation operations over HTTP.
type Server struct {
	normalizer *notation.Normalizer
	metrics    *Metrics
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithNormalizer replaces the default normalizer.
func WithNormalizer(n *notation.Normalizer) Option {
	return func(s *Server) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithMetrics sets the collectors the server records into.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a Server with defaults for anything not configured.
func NewServer(opts ...Option) *Server {
	s := &Server{
		normalizer: notation.NewNormalizer(),
		metrics:    NewMetrics(),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates the HTTP handler for the API.
func NewHandler(opts ...Option) http.Handler {
	return NewServer(opts...).Routes()
}

// Routes builds the router. Requests to documented operations are validated against
// the OpenAPI document before they reach a handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.limitBody(MaxBodyBytes))
	r.Use(s.validateRequests(api.MustLoad()))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Document())
	})
	r.Get("/healthz", s.Health)
	r.Post("/normalize", s.Normalize)
	r.Post("/generate", s.Generate)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// Normalize handles POST /normalize.
func (s *Server) Normalize(w http.ResponseWriter, r *http.Request) {
	var body NormalizeJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.metrics.normalizeRequests.WithLabelValues(resultInvalid).Inc()
		s.logger.Warn("Normalize: invalid request body", "error", err)
		s.writeError(w, bodyStatus(err), "invalid request body")
		return
	}

	res, ok := s.normalizer.Normalize(body.Text)
	result := resultOK
	if !ok {
		result = resultTooShort
	}
	s.metrics.normalizeRequests.WithLabelValues(result).Inc()

	s.writeJSON(w, http.StatusOK, NormalizeResponse{
		Ok:         ok,
		Words:      res.Words,
		Todi:       res.Notation,
		WellFormed: res.Notation != "" && notation.WellFormed(res.Notation),
	})
}

// Generate handles POST /generate. Every request draws from its own source.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	var body GenerateJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("Generate: invalid request body", "error", err)
		s.writeError(w, bodyStatus(err), "invalid request body")
		return
	}
	switch {
	case len(body.Todi) == 0:
		s.writeError(w, http.StatusBadRequest, "todi must not be empty")
		return
	case len(body.Todi) > MaxTokens:
		s.writeError(w, http.StatusBadRequest, "todi has too many tokens")
		return
	case body.K <= 0:
		s.writeError(w, http.StatusBadRequest, "k must be positive")
		return
	}
	k := min(body.K, MaxAlternatives)

	seed := rand.Uint64()
	if body.Seed != nil {
		seed = *body.Seed
	}
	gen := notation.NewGenerator(rand.New(rand.NewPCG(seed, seed)))

	seqs := make([][]string, 0, k)
	for seq := range gen.Alternatives(body.Todi, k) {
		seqs = append(seqs, seq)
	}
	s.metrics.generatedSequences.Add(float64(len(seqs)))
	s.metrics.underYield.Observe(float64(k - len(seqs)))

	s.writeJSON(w, http.StatusOK, GenerateResponse{Sequences: seqs, Seed: seed})
}

// bodyStatus maps a body read error to 413 when the size limit was hit.
func bodyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, Error{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}
