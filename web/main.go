package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/web/server"
)

// stdLogger adapts the log package to core.Logger
type stdLogger struct{}

func (stdLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	assetsDir := flag.String("assets", "assets", "Directory holding textures/, skybox/ and skybox_nether/")
	flag.Parse()

	assets, err := loaders.LoadAssets(*assetsDir, stdLogger{})
	if err != nil {
		log.Printf("Error loading assets: %v", err)
		os.Exit(1)
	}

	webServer := server.NewServer(*port, assets)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
