// Package server exposes stored trees over an HTTP API.
//
// # Endpoints
//
//	GET    /v1/trees                      list stored trees
//	GET    /v1/trees/{name}               fetch a tree entry (flat records)
//	PUT    /v1/trees/{name}               store a tree from flat records
//	DELETE /v1/trees/{name}               delete a tree
//	GET    /v1/trees/{name}/nodes/{path}  fetch a single subtree
//
// Responses are JSON. Errors carry a machine-readable code in the body:
//
//	{"error": {"code": "TREE_NOT_FOUND", "message": "no tree named \"x\""}}
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/store"
	"github.com/matzehuels/arbor/pkg/tree"
)

// Server handles HTTP requests against a tree store.
type Server struct {
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by the given store.
func New(s store.Store, logger *log.Logger) *Server {
	srv := &Server{
		store:  s,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(srv.logRequests)

	r.Route("/v1/trees", func(r chi.Router) {
		r.Get("/", srv.handleList)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", srv.handleGet)
			r.Put("/", srv.handlePut)
			r.Delete("/", srv.handleDelete)
			r.Get("/nodes/*", srv.handleGetNode)
		})
	})

	srv.router = r
	return srv
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server until the context is cancelled, then shuts
// down gracefully with a short drain timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// logRequests logs each request with method, path, status, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	infos, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if infos == nil {
		infos = []store.Info{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"trees": infos})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, err := s.store.Load(r.Context(), name)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			s.writeError(w, errors.New(errors.ErrCodeTreeNotFound, "no tree named %q", name))
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateEntryName(name); err != nil {
		s.writeError(w, err)
		return
	}

	var payload struct {
		Records []tree.Record `json:"records"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	root, err := tree.Build(payload.Records)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid tree records"))
		return
	}

	entry, err := s.store.Save(r.Context(), name, root)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Delete(r.Context(), name); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetNode(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	path := chi.URLParam(r, "*")
	if err := errors.ValidateNodePath(path); err != nil {
		s.writeError(w, err)
		return
	}

	entry, err := s.store.Load(r.Context(), name)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			s.writeError(w, errors.New(errors.ErrCodeTreeNotFound, "no tree named %q", name))
			return
		}
		s.writeError(w, err)
		return
	}

	root, err := entry.Build()
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "rebuilding stored tree"))
		return
	}

	node := root
	if path != "" {
		if node = root.FindPath(path); node == nil {
			s.writeError(w, errors.New(errors.ErrCodeNodeNotFound, "no node at path %q", path))
			return
		}
	}

	records, err := node.Flatten()
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "flattening subtree"))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"path":    node.Path(),
		"records": records,
	})
}

// =============================================================================
// Responses
// =============================================================================

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

// writeError maps an error to an HTTP status and a JSON error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	s.writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": errors.UserMessage(err),
		},
	})
}

func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidName,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPolicy,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeTreeNotFound, errors.ErrCodeNodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeConflict, errors.ErrCodeDuplicateName,
		errors.ErrCodeCycle, errors.ErrCodeFrozen:
		return http.StatusConflict
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
