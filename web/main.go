package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	workers := flag.Int("workers", 0, "Number of parallel workers per render (0 = CPU count)")
	flag.Parse()

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = *workers

	webServer := server.NewServer(*port, config, os.Stdout)

	log.Printf("Phong Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/scenes or /api/image?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
