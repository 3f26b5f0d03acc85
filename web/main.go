package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/jeremzan/ray-tracing/pkg/output"
	"github.com/jeremzan/ray-tracing/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	envFile := flag.String("env", "", "Optional .env file with S3 settings for ?upload=true")
	flag.Parse()

	uploader, err := newUploader(*envFile)
	if err != nil {
		log.Printf("Error configuring S3: %v", err)
		os.Exit(1)
	}
	if uploader == nil {
		log.Printf("S3 bucket not configured, uploads disabled")
	}

	// Create and start web server
	webServer := server.NewServer(*port, uploader)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}

// newUploader returns nil without error when no bucket is configured
func newUploader(envFile string) (*output.S3Uploader, error) {
	cfg, err := output.LoadS3Config(envFile)
	if errors.Is(err, output.ErrMissingBucket) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return output.NewS3Uploader(cfg)
}
