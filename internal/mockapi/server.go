// Package mockapi serves OpenF1-shaped fixtures for offline runs and
// integration tests.
package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alecappe-boss/OpenF1/pkg/logger"
)

// Server replays canned OpenF1 payloads.
type Server struct {
	log logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets a custom logger for the server.
func WithLogger(log logger.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// NewServer constructs a fixture server.
func NewServer(opts ...Option) *Server {
	s := &Server{}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	return s
}

// Router builds the endpoint routes under /v1, mirroring the upstream API.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/sessions", s.serve(sessionFixtures)).Methods(http.MethodGet)
	v1.HandleFunc("/drivers", s.serve(driverFixtures)).Methods(http.MethodGet)
	v1.HandleFunc("/position", s.serve(positionFixtures)).Methods(http.MethodGet)
	v1.HandleFunc("/laps", s.serve(lapFixtures)).Methods(http.MethodGet)
	v1.HandleFunc("/location", s.serve(locationFixtures)).Methods(http.MethodGet)
	return r
}

// serve filters a fixture set by the request's query params. Every param
// is matched against the fixture field of the same name; records are
// served with internal filter fields intact, the way the real API leaks
// session_key on every endpoint.
func (s *Server) serve(fixtures []map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]map[string]any, 0, len(fixtures))
		for _, record := range fixtures {
			if matches(record, r) {
				out = append(out, record)
			}
		}

		s.log.Debug(r.Context(), "serving fixtures",
			logger.String("path", r.URL.Path),
			logger.Int("count", len(out)),
		)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}

func matches(record map[string]any, r *http.Request) bool {
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		field, ok := record[key]
		if !ok {
			return false
		}
		if fmt.Sprintf("%v", field) != values[0] {
			return false
		}
	}
	return true
}
