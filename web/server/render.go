package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// BandUpdate represents a single band update sent via SSE
type BandUpdate struct {
	BandY      int    `json:"bandY"`      // Top row of the band
	BandHeight int    `json:"bandHeight"` // Rows in the band
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this band
	BandNumber int    `json:"bandNumber"` // Bands finished so far (1-based)
	TotalBands int    `json:"totalBands"` // Total number of bands in the image
}

// CompleteUpdate is the payload of the final SSE event
type CompleteUpdate struct {
	Scene          string  `json:"scene"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	ElapsedMs      int64   `json:"elapsedMs"`
	PrimitiveCount int     `json:"primitiveCount"`
	PrimaryRays    int     `json:"primaryRays"`
	SecondaryRays  int     `json:"secondaryRays"`
	ShadowRays     int     `json:"shadowRays"`
	HitRatio       float64 `json:"hitRatio"`
	Workers        int     `json:"workers"`
	Luminance      float64 `json:"averageLuminance"`
	Summary        string  `json:"summary"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "band", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene band by band, streaming each finished band via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	s.setSSEHeaders(w)

	// Cancelled when the client goes away or a write fails, so the render stops and
	// nothing blocks on a full event channel
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Single writer goroutine owns the response body. The handler waits for it to drain
	// before returning.
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer cancel()
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	// Parse and validate request
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	webLogger.Printf("Rendering %s (%d spheres, %d lights) at %dx%d, depth %d\n",
		sceneObj.Name, len(sceneObj.Spheres), len(sceneObj.Lights),
		sceneObj.Config.Width, sceneObj.Config.Height, sceneObj.Config.MaxDepth)

	config := renderer.ParallelConfig{
		BandHeight: req.BandHeight,
		NumWorkers: 0, // Auto-detect
	}
	raytracer := renderer.NewParallelRaytracer(sceneObj, config, webLogger)

	// Band callbacks run on this goroutine, so console messages are forwarded in order
	startTime := time.Now()
	_, stats, err := raytracer.Render(ctx, func(band renderer.BandCompletion) {
		s.forwardConsoleMessages(ctx, consoleChan, sseEventChan)
		s.handleBandUpdate(ctx, sseEventChan, band)
	})
	if err == nil {
		webLogger.Printf("%s\n", stats.Summary())
	}
	s.forwardConsoleMessages(ctx, consoleChan, sseEventChan)

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	complete := CompleteUpdate{
		Scene:          sceneObj.Name,
		Width:          sceneObj.Config.Width,
		Height:         sceneObj.Config.Height,
		ElapsedMs:      time.Since(startTime).Milliseconds(),
		PrimitiveCount: sceneObj.GetPrimitiveCount(),
		PrimaryRays:    stats.Rays.PrimaryRays,
		SecondaryRays:  stats.Rays.SecondaryRays,
		ShadowRays:     stats.Rays.ShadowRays,
		HitRatio:       stats.HitRatio(),
		Workers:        stats.Workers,
		Luminance:      stats.AverageLuminance,
		Summary:        stats.Summary(),
	}
	data, err := json.Marshal(complete)
	if err != nil {
		log.Printf("Error marshaling completion: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: string(data)}:
	case <-ctx.Done():
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				// Channel closed
				return
			}

			// Write SSE event
			_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data)
			if err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// forwardConsoleMessages moves every queued console message to the SSE channel
// without blocking
func (s *Server) forwardConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for {
		select {
		case consoleMsg := <-consoleChan:
			data, err := json.Marshal(consoleMsg)
			if err != nil {
				log.Printf("Error marshaling console message: %v", err)
				continue
			}

			select {
			case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
			case <-ctx.Done():
				return
			default:
				// Channel full, skip message to avoid blocking
			}

		default:
			return
		}
	}
}

// handleBandUpdate encodes a finished band and sends it to the SSE channel
func (s *Server) handleBandUpdate(ctx context.Context, sseEventChan chan SSEEvent, band renderer.BandCompletion) {
	// Check if client is still connected
	select {
	case <-ctx.Done():
		return
	default:
	}

	bandData, err := s.imageToBase64PNG(band.Image)
	if err != nil {
		log.Printf("Error encoding band image %d: %v", band.Band.ID, err)
		return
	}

	update := BandUpdate{
		BandY:      band.Band.Bounds.Min.Y,
		BandHeight: band.Band.Bounds.Dy(),
		ImageData:  bandData,
		BandNumber: band.BandNumber,
		TotalBands: band.TotalBands,
	}

	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Error marshaling band update: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "band", Data: string(data)}:
	case <-ctx.Done():
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	if req.BandHeight, err = parseIntParam(r.URL.Query(), "bandHeight", DefaultBandHeight, MinBandHeight, MaxBandHeight); err != nil {
		return nil, err
	}

	return req, nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
