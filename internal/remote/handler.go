package remote

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"containment/internal/domain"
	"containment/internal/input"
	"containment/internal/store"
)

// maxBodyBytes bounds the size of a POST /solve body.
const maxBodyBytes = 64 << 20

type errorBody struct {
	Error string `json:"error"`
}

type handler struct {
	runs  domain.RunService
	log   *slog.Logger
	limit int
}

// NewHandler returns the containmentd HTTP API backed by runs. limit caps the
// number of motes and of devices per problem (0 selects the input default).
func NewHandler(runs domain.RunService, log *slog.Logger, limit int) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &handler{runs: runs, log: log, limit: limit}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /solve", h.solve)
	mux.HandleFunc("GET /reports/{id}", h.report)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return h.accessLog(mux)
}

func (h *handler) solve(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var p domain.Problem
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := input.Validate(p, h.limit); err != nil {
		status := http.StatusBadRequest
		var allocErr *input.AllocationError
		if errors.As(err, &allocErr) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err)
		return
	}

	rep, err := h.runs.Run(r.Context(), p, domain.RunOptions{Save: true})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *handler) report(w http.ResponseWriter, r *http.Request) {
	rep, err := h.runs.Report(domain.ReportID(r.PathValue("id")))
	if errors.Is(err, store.ErrReportNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// accessLog records method, path, remote, status, bytes and duration for each request.
func (h *handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		h.log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
			slog.Int("status", rec.status),
			slog.Int("bytes", rec.bytes),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}
