// Package server exposes diagram generation over HTTP.
//
// Routes:
//
//	GET  /healthz                       liveness check with build info
//	POST /v1/erd?format=dot|svg|png|pdf generate a diagram
//
// The request body for /v1/erd is JSON:
//
//	{
//	  "relationships": [[["orders", "customer_id"], ["customers", "id"]]],
//	  "colors": {"customers": "lightyellow"}
//	}
//
// relationships accepts the same shapes as relationship files (see pkg/io).
// Errors are returned as {"code": "...", "error": "..."} with status 400 for
// INVALID_* and NOT_FOUND codes and 500 otherwise.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/erdot/pkg/buildinfo"
	"github.com/matzehuels/erdot/pkg/erd"
	"github.com/matzehuels/erdot/pkg/errors"
	erdio "github.com/matzehuels/erdot/pkg/io"
	"github.com/matzehuels/erdot/pkg/render"
)

// DefaultMaxBody bounds request bodies.
const DefaultMaxBody = 1 << 20

// Server handles diagram requests. It holds no per-request state.
type Server struct {
	logger  *log.Logger
	maxBody int64
}

// New returns a Server that logs to logger.
func New(logger *log.Logger) *Server {
	return &Server{logger: logger, maxBody: DefaultMaxBody}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "healthy", "build": buildinfo.Get()})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/erd", s.handleERD)
	})
	return r
}

type erdRequest struct {
	Relationships erdio.Relationships `json:"relationships"`
	Colors        map[string]string   `json:"colors"`
}

func (s *Server) handleERD(w http.ResponseWriter, r *http.Request) {
	format := render.FormatDOT
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := render.ParseFormat(q)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		format = f
	}

	var req erdRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody)).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if err := req.Relationships.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	rels := []erd.Relationship(req.Relationships)
	dot := erd.ToDOT(rels, erd.NewColors(req.Colors))
	out, err := render.Render(r.Context(), dot, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.IsClientError(err) {
		status = http.StatusBadRequest
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.logger.Warn("request failed", "path", r.URL.Path, "code", code, "err", err)
	writeJSON(w, status, map[string]string{
		"code":  string(code),
		"error": errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"id", middleware.GetReqID(r.Context()),
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	})
}
