package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server renders preview frames on demand
type Server struct {
	port     int
	assets   scene.Assets
	config   renderer.Config
	console  *Console
	echo     *echo.Echo
	renderID atomic.Uint64
}

// NewServer creates a web server over the loaded assets
func NewServer(port int, assets scene.Assets) *Server {
	s := &Server{
		port:    port,
		assets:  assets,
		config:  renderer.DefaultConfig(),
		console: NewConsole(200),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(corsMiddleware)

	e.GET("/", s.handleIndex)
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRender)
	e.GET("/api/inspect", s.handleInspect)
	e.GET("/api/console", s.handleConsole)

	s.echo = e
	return s
}

// Handler exposes the routes, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until the server is shut down
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight renders
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.ListBuiltin())
}

// handleConsole returns recent render log lines
func (s *Server) handleConsole(c echo.Context) error {
	return c.JSON(http.StatusOK, s.console.Messages())
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Whitted Raytracer</title></head>
<body style="background:#222;color:#ddd;font-family:sans-serif">
<h1>Whitted Raytracer</h1>
<img id="frame" src="/api/render?scene=overworld&hud=true" alt="render">
<p>Parameters: scene, world, width, height, depth, yaw, pitch, radius, lx, ly, lz, hud</p>
</body>
</html>`

func (s *Server) handleIndex(c echo.Context) error {
	return c.HTML(http.StatusOK, indexPage)
}

// errorJSON writes a JSON error body
func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// nextRenderID returns a process-unique render identifier
func (s *Server) nextRenderID() string {
	return fmt.Sprintf("render-%d", s.renderID.Add(1))
}
