// Package api serves the running circuit over HTTP.
// GET endpoints are public (read-only observation).
// POST control endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/AUDRM-4824/Pre-float/internal/engine"
	"github.com/AUDRM-4824/Pre-float/internal/model"
	"github.com/AUDRM-4824/Pre-float/internal/plant"
)

const maxSSEConns = 2

// sweepMaxPoints caps a single sweep request.
const sweepMaxPoints = 200

// Server serves the circuit session over HTTP.
type Server struct {
	Session  *plant.Session
	Eng      *engine.Engine
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
	RelayKey string // Bearer token for the SSE stream. Empty = streaming disabled.

	// Active SSE connection count (atomic).
	sseConns int32
}

// Handler builds the route table. Exposed so tests can drive the server
// through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	sweepLimiter := NewRateLimiter(30, time.Minute)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only — anyone can watch the circuit).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/evaluation", s.handleEvaluation)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	mux.HandleFunc("/api/v1/streams", s.handleStreams)
	mux.HandleFunc("/api/v1/targets", s.handleTargets)
	mux.HandleFunc("/api/v1/guidance", s.handleGuidance)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/sweep", RateLimitMiddleware(sweepLimiter, s.handleSweep))

	// Stateless evaluation of arbitrary inputs (the pure model surface).
	mux.HandleFunc("/api/v1/evaluate", s.handleEvaluate)

	// SSE sample stream (GET, requires bearer token — relay only).
	mux.HandleFunc("/api/v1/stream", s.handleStream)

	// Admin endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/setpoints", s.adminOnly(s.handleSetpoints))
	mux.HandleFunc("/api/v1/feed", s.adminOnly(s.handleFeed))
	mux.HandleFunc("/api/v1/mode", s.adminOnly(s.handleMode))
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))
	mux.HandleFunc("/api/v1/reset", s.adminOnly(s.handleReset))

	return corsMiddleware(mux)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "", "relay_auth", s.RelayKey != "")

	handler := s.Handler()
	go func() {
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS to a comma-separated list of extra allowed origins;
// localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) checkBearerToken(r *http.Request, key string) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == key
}

func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no FLOATSIM_ADMIN_KEY set)", http.StatusForbidden)
				return
			}
			if !s.checkBearerToken(r, s.AdminKey) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	in := s.Session.Inputs()
	ev := s.Session.Current()

	status := map[string]any{
		"name":      "Pre-float",
		"run_id":    s.Session.RunID,
		"tick":      s.Eng.Tick,
		"sim_time":  engine.SimTime(s.Eng.Tick),
		"speed":     s.Eng.Speed,
		"running":   s.Eng.Running,
		"mode":      s.Session.Mode(),
		"setpoints": in,
		"recovery":  ev.Recovery,
		"zn_loss":   ev.ZnLoss,
		"warnings":  len(s.Session.Warnings()),
	}
	writeJSON(w, status)
}

func (s *Server) handleEvaluation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Session.Current())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	samples := s.Session.HistorySamples()

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		if limit < len(samples) {
			samples = samples[len(samples)-limit:]
		}
	}
	writeJSON(w, samples)
}

// handleStreams reports the three process streams the way the control
// room board does: mass, grade and contained carbon per stream.
func (s *Server) handleStreams(w http.ResponseWriter, r *http.Request) {
	ev := s.Session.Current()

	type stream struct {
		Mass         float64 `json:"mass_t"`
		Grade        float64 `json:"carbon_pct"`
		CarbonTonnes float64 `json:"carbon_t"`
	}

	writeJSON(w, map[string]stream{
		"feed": {
			Mass:         model.FeedTonnage,
			Grade:        ev.Inputs.FeedCarbon,
			CarbonTonnes: model.CarbonTonnes(model.FeedTonnage, ev.Inputs.FeedCarbon),
		},
		"concentrate": {
			Mass:         ev.ConcMass,
			Grade:        ev.ConcCarbon,
			CarbonTonnes: model.CarbonTonnes(ev.ConcMass, ev.ConcCarbon),
		},
		"tailings": {
			Mass:         ev.TailMass,
			Grade:        ev.TailCarbon,
			CarbonTonnes: model.CarbonTonnes(ev.TailMass, ev.TailCarbon),
		},
	})
}

func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"targets":  s.Session.Targets(),
		"warnings": s.Session.Warnings(),
	})
}

func (s *Server) handleGuidance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Session.Guidance())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	var since uint64
	if v := r.URL.Query().Get("since"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid since", http.StatusBadRequest)
			return
		}
		since = n
	}
	writeJSON(w, s.Session.Events(since))
}

// handleEvaluate runs the stateless model over caller-provided inputs.
// Public: it touches no session state and is cheap to compute.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in model.Inputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	writeJSON(w, model.Evaluate(in))
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	v, err := model.ParseVariable(q.Get("var"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	from, to := v.Range()
	if s := q.Get("from"); s != "" {
		if from, err = strconv.ParseFloat(s, 64); err != nil {
			http.Error(w, "invalid from", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("to"); s != "" {
		if to, err = strconv.ParseFloat(s, 64); err != nil {
			http.Error(w, "invalid to", http.StatusBadRequest)
			return
		}
	}

	points := 20
	if s := q.Get("points"); s != "" {
		if points, err = strconv.Atoi(s); err != nil || points < 2 {
			http.Error(w, "invalid points", http.StatusBadRequest)
			return
		}
	}
	if points > sweepMaxPoints {
		http.Error(w, fmt.Sprintf("points capped at %d", sweepMaxPoints), http.StatusBadRequest)
		return
	}

	base := s.Session.Inputs()
	writeJSON(w, map[string]any{
		"var":    v,
		"base":   base,
		"points": model.Sweep(base, v, from, to, points),
	})
}

func (s *Server) handleSetpoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		RougherAir float64 `json:"rougher_air"`
		JamesonAir float64 `json:"jameson_air"`
		Luproset   float64 `json:"luproset"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := s.Session.SetSetpoints(s.Eng.Tick, req.RougherAir, req.JamesonAir, req.Luproset); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"success": true, "evaluation": s.Session.Current()})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		FeedCarbon float64 `json:"feed_carbon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := s.Session.SetFeedCarbon(s.Eng.Tick, req.FeedCarbon); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"success": true, "evaluation": s.Session.Current()})
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := s.Session.SetMode(s.Eng.Tick, plant.Mode(req.Mode)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"mode": s.Session.Mode()})
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var req struct {
			Speed float64 `json:"speed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Speed < 0 || req.Speed > 1000 {
			http.Error(w, "speed must be 0-1000", http.StatusBadRequest)
			return
		}
		s.Eng.Speed = req.Speed
		slog.Info("speed changed", "speed", req.Speed)
	}

	writeJSON(w, map[string]float64{"speed": s.Eng.Speed})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.Session.ResetTrends(s.Eng.Tick)
	writeJSON(w, map[string]any{"success": true, "tick": s.Eng.Tick})
}

// handleStream pushes one evaluation sample per second over SSE.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	// Auth check — uses the separate relay key, not the admin key.
	if s.RelayKey == "" {
		http.Error(w, "streaming disabled (no relay key)", http.StatusForbidden)
		return
	}
	if !s.checkBearerToken(r, s.RelayKey) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// Connection limit.
	current := atomic.AddInt32(&s.sseConns, 1)
	if current > maxSSEConns {
		atomic.AddInt32(&s.sseConns, -1)
		http.Error(w, "too many SSE connections", http.StatusServiceUnavailable)
		return
	}
	defer atomic.AddInt32(&s.sseConns, -1)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	slog.Info("SSE client connected", "remote", r.RemoteAddr)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			data, err := json.Marshal(s.Session.Current())
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: sample\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
