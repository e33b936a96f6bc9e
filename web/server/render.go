package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // Pixel position of the tile's top-left corner
	Y          int    `json:"y"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completion order (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// CompleteUpdate is the final event of a streamed render
type CompleteUpdate struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG of the full image
	Stats     Stats  `json:"stats"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string // "console", "tile", "error", "complete"
	Data string // JSON-encoded data
}

// handleRender renders a scene and streams each finished tile via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("streaming not supported"))
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err)
		return
	}

	s.setSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	sseEventChan := make(chan SSEEvent, 100)
	consoleChan := make(chan ConsoleMessage, 50)

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	logger := NewWebLogger(renderID, consoleChan, s.echo)
	raytracer := renderer.NewRaytracer(sceneObj.World, sceneObj.Camera, s.config, logger)

	go func() {
		defer close(sseEventChan)

		img, stats, err := raytracer.Render(ctx, func(result renderer.TileCompletionResult) {
			s.handleTileUpdate(ctx, sseEventChan, result)
		})
		if err != nil {
			s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Render error: %v", err))
			return
		}

		imageData, err := imageToBase64PNG(img.ToRGBA())
		if err != nil {
			s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Failed to encode image: %v", err))
			return
		}
		s.sendJSONEvent(ctx, sseEventChan, "complete", CompleteUpdate{
			Width:     img.Width(),
			Height:    img.Height(),
			ImageData: imageData,
			Stats:     newStats(stats),
		})
	}()

	s.writeSSEEvents(ctx, w, flusher, sseEventChan, consoleChan)
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents is the only writer to w. It returns once the render
// goroutine closes sseEventChan or the client disconnects.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, flusher http.Flusher,
	sseEventChan <-chan SSEEvent, consoleChan <-chan ConsoleMessage) {

	write := func(event SSEEvent) bool {
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}
	writeConsole := func(msg ConsoleMessage) bool {
		data, err := json.Marshal(msg)
		if err != nil {
			return true
		}
		return write(SSEEvent{Type: "console", Data: string(data)})
	}

	for {
		select {
		case msg := <-consoleChan:
			if !writeConsole(msg) {
				return
			}
		case event, ok := <-sseEventChan:
			if !ok {
				// Flush console lines logged after the last event
				for len(consoleChan) > 0 {
					if !writeConsole(<-consoleChan) {
						return
					}
				}
				return
			}
			if !write(event) {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// handleTileUpdate encodes a finished tile and queues it for the client
func (s *Server) handleTileUpdate(ctx context.Context, sseEventChan chan<- SSEEvent, result renderer.TileCompletionResult) {
	imageData, err := imageToBase64PNG(result.TileImage)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Failed to encode tile: %v", err))
		return
	}

	s.sendJSONEvent(ctx, sseEventChan, "tile", TileUpdate{
		TileX:      result.TileX,
		TileY:      result.TileY,
		X:          result.Bounds.Min.X,
		Y:          result.Bounds.Min.Y,
		ImageData:  imageData,
		TileNumber: result.TileNumber,
		TotalTiles: result.TotalTiles,
	})
}

func (s *Server) sendJSONEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}
	s.sendEvent(ctx, sseEventChan, eventType, string(data))
}

// sendEvent queues an event, giving up if the client has disconnected
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType, data string) {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
