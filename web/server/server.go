package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jeremzan/ray-tracing/pkg/output"
	"github.com/jeremzan/ray-tracing/pkg/scene"
)

// Request limits shared by the render and inspect endpoints
const (
	minSize  = 1
	maxSize  = 2000
	minDepth = 1
	maxDepth = 50
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	uploader *output.S3Uploader // nil disables uploads
	mux      *http.ServeMux
}

// NewServer creates a new web server. A nil uploader disables the upload parameter.
func NewServer(port int, uploader *output.S3Uploader) *Server {
	s := &Server{
		port:     port,
		uploader: uploader,
		mux:      http.NewServeMux(),
	}

	// API endpoints
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)

	return s
}

// Handler returns the HTTP handler serving every endpoint
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the preset scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.ByName(sceneName)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":    sceneObj.Config.Width,
			"height":   sceneObj.Config.Height,
			"maxDepth": sceneObj.Config.MaxDepth,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minSize, "max": maxSize},
			"height":   map[string]int{"min": minSize, "max": maxSize},
			"maxDepth": map[string]int{"min": minDepth, "max": maxDepth},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses an optional boolean parameter from URL query
func parseBoolParam(values url.Values, key string) (bool, error) {
	value := values.Get(key)
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
