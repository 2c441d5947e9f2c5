// Package web provides the real-time bracelet dashboard: the three.js
// viewer, the REST API and the WebSocket scene/camera streams.
package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/ameliaong/go-bracelet/pkg/engine"
	"github.com/ameliaong/go-bracelet/pkg/hub"
)

// Server is the dashboard server. It owns the WebSocket hubs; the
// engine pushes scene snapshots into the scene hub, the camera source
// pushes preview frames into the camera hub.
type Server struct {
	app  *fiber.App
	port string

	engine *engine.Engine

	sceneHub  *hub.Hub
	cameraHub *hub.Hub
}

// NewServer creates the dashboard server for an engine.
func NewServer(port string, eng *engine.Engine) *Server {
	s := &Server{
		port:      port,
		engine:    eng,
		sceneHub:  hub.New("scene"),
		cameraHub: hub.New("camera"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Bracelet Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// Static viewer files
	app.Static("/", "./web")

	// API routes
	api := app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/config", s.handleConfig)
	api.Get("/tuning", s.handleGetTuning)
	api.Post("/tuning", s.handleSetTuning)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/scene", websocket.New(s.handleSceneWS))
	app.Get("/ws/camera", websocket.New(s.handleCameraWS))

	s.app = app
	return s
}

// SceneHub returns the hub the engine should broadcast snapshots to.
func (s *Server) SceneHub() *hub.Hub {
	return s.sceneHub
}

// Start starts the web server. Blocks.
func (s *Server) Start() error {
	fmt.Printf("🌐 Bracelet dashboard: http://localhost:%s\n", s.port)

	go s.sceneHub.Run()
	go s.cameraHub.Run()

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			fmt.Printf("⚠️  Web server error: %v\n", err)
		}
	}()
}

// SendCameraFrame broadcasts a JPEG preview frame to camera viewers.
func (s *Server) SendCameraFrame(jpegData []byte) {
	if s.cameraHub.ClientCount() == 0 {
		return
	}
	s.cameraHub.BroadcastBinary(jpegData)
}

// Shutdown gracefully stops the web server and hubs.
func (s *Server) Shutdown() error {
	s.sceneHub.Stop()
	s.cameraHub.Stop()
	return s.app.Shutdown()
}
