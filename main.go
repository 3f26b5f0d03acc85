package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/jeremzan/ray-tracing/pkg/output"
	"github.com/jeremzan/ray-tracing/pkg/renderer"
	"github.com/jeremzan/ray-tracing/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	MaxDepth  int
	Workers   int
	Output    string
	Scale     int
	Upload    bool
	EnvFile   string
}

func main() {
	config := parseFlags()
	if config == nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line. It returns nil when only help or the
// scene list was requested.
func parseFlags() *Config {
	config := &Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene to render (see -list)")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum recursion depth (0 = scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Output, "out", "", "Output file; the extension picks the format (default output/<scene>/render_<timestamp>.png)")
	flag.IntVar(&config.Scale, "scale", 1, "Integer upscale factor applied to the saved image")
	flag.BoolVar(&config.Upload, "upload", false, "Upload the rendered PNG to S3")
	flag.StringVar(&config.EnvFile, "env", "", "Optional .env file with S3 settings")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return nil
	}
	if *list {
		printScenes()
		return nil
	}
	return config
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
}

// createScene builds the named preset and applies the size, depth and
// worker overrides from the command line
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.ByName(config.SceneType)
	if err != nil {
		return nil, err
	}

	if config.Width > 0 {
		s.Config.Width = config.Width
	}
	if config.Height > 0 {
		s.Config.Height = config.Height
	}
	if config.MaxDepth > 0 {
		s.Config.MaxDepth = config.MaxDepth
	}
	if config.Workers > 0 {
		s.Config.NumWorkers = config.Workers
	}
	return s, nil
}

// outputPath returns the configured file, or a timestamped file under output/<scene>
func outputPath(config Config) string {
	if config.Output != "" {
		return config.Output
	}
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join("output", config.SceneType, fmt.Sprintf("render_%s.png", timestamp))
}

func run(ctx context.Context, config Config) error {
	selectedScene, err := createScene(config)
	if err != nil {
		return err
	}

	fmt.Printf("Using %s scene (%d primitives, %d lights)...\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(), len(selectedScene.Lights))

	raytracer, err := renderer.NewRaytracer(selectedScene, selectedScene.Config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("Rays per pixel: %.2f, average luminance %.3f\n", stats.RaysPerPixel(), stats.AverageLuminance)

	final := output.Scale(img.ToRGBA(), config.Scale)

	filename := outputPath(config)
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := output.Save(final, filename); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)

	if !config.Upload {
		return nil
	}

	s3Config, err := output.LoadS3Config(config.EnvFile)
	if err != nil {
		return err
	}
	uploader, err := output.NewS3Uploader(s3Config)
	if err != nil {
		return err
	}
	data, err := output.EncodePNG(final)
	if err != nil {
		return err
	}
	key, err := uploader.UploadPNG(ctx, data, fmt.Sprintf("%s/%s.png", selectedScene.Name, time.Now().Format("20060102_150405")))
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded to s3://%s/%s\n", s3Config.Bucket, key)
	return nil
}
