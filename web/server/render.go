package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jeremzan/ray-tracing/pkg/output"
	"github.com/jeremzan/ray-tracing/pkg/renderer"
	"github.com/jeremzan/ray-tracing/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string // Scene name (e.g., "mirrors")
	Width    int    // Image width, 0 keeps the scene default
	Height   int    // Image height, 0 keeps the scene default
	MaxDepth int    // Recursion depth, 0 keeps the scene default
	Upload   bool   // Also store the PNG in S3
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", 0, minDepth, maxDepth); err != nil {
		return nil, err
	}
	if req.Upload, err = parseBoolParam(query, "upload"); err != nil {
		return nil, err
	}

	return req, nil
}

// createScene builds the requested preset with the request overrides applied
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		return nil, err
	}
	if req.Width > 0 {
		sceneObj.Config.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Config.Height = req.Height
	}
	if req.MaxDepth > 0 {
		sceneObj.Config.MaxDepth = req.MaxDepth
	}

	// Performance warning
	if isLargeRender(sceneObj.Config) {
		log.Printf("Render warning: %dx%d image may render slowly", sceneObj.Config.Width, sceneObj.Config.Height)
	}
	return sceneObj, nil
}

// isLargeRender reports whether the resolved image exceeds one megapixel
func isLargeRender(config renderer.Config) bool {
	return config.Width*config.Height > 1000*1000
}

// handleRender renders a preset scene and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Upload && s.uploader == nil {
		writeError(w, http.StatusBadRequest, errors.New("uploads are not configured"))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	raytracer, err := renderer.NewRaytracer(sceneObj, sceneObj.Config, NewWebLogger(renderID))
	if err != nil {
		if errors.Is(err, renderer.ErrInvalidConfig) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	// Use request context to detect client disconnection
	img, stats, err := raytracer.Render(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("Render %s cancelled by client", renderID)
			return
		}
		log.Printf("Render %s failed: %v", renderID, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	data, err := output.EncodePNG(img.ToRGBA())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if req.Upload {
		key, err := s.uploader.UploadPNG(r.Context(), data, renderID+".png")
		if err != nil {
			log.Printf("Render %s upload failed: %v", renderID, err)
			writeError(w, http.StatusBadGateway, err)
			return
		}
		w.Header().Set("X-Upload-Key", key)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Render %s: failed to write response: %v", renderID, err)
	}
}
