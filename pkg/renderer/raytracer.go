package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/geometry"
	"github.com/jeremzan/ray-tracing/pkg/integrator"
	"github.com/jeremzan/ray-tracing/pkg/lights"
)

var (
	// ErrInvalidConfig is returned for unusable render dimensions or settings
	ErrInvalidConfig = errors.New("invalid render config")
	// ErrMissingMaterial is returned when a primitive has no material assigned
	ErrMissingMaterial = errors.New("primitive has no material")
)

// Config contains rendering configuration
type Config struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	MaxDepth   int // Surfaces shaded along one camera ray, including the first
	TileSize   int // Side length of the square tiles handed to workers
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      300,
		Height:     200,
		MaxDepth:   3,
		TileSize:   32,
		NumWorkers: 0,
	}
}

// Validate checks that the config can produce an image
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("image size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.MaxDepth < 1:
		return fmt.Errorf("max depth %d: %w", c.MaxDepth, ErrInvalidConfig)
	case c.TileSize <= 0:
		return fmt.Errorf("tile size %d: %w", c.TileSize, ErrInvalidConfig)
	case c.NumWorkers < 0:
		return fmt.Errorf("worker count %d: %w", c.NumWorkers, ErrInvalidConfig)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	GetCamera() core.Vec3
}

// Raytracer renders a scene with Whitted ray tracing on a tile worker pool
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. The scene is checked up front so
// that no pixel is traced against a primitive without a material.
func NewRaytracer(scene Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if scene.GetCamera().Z == 0 {
		return nil, fmt.Errorf("camera %v lies on the screen plane: %w", scene.GetCamera(), ErrInvalidConfig)
	}
	for i, p := range scene.GetPrimitives() {
		if p == nil {
			return nil, fmt.Errorf("primitive %d is nil: %w", i, ErrInvalidConfig)
		}
		if p.GetMaterial() == nil {
			return nil, fmt.Errorf("primitive %d (%T): %w", i, p, ErrMissingMaterial)
		}
	}
	if logger == nil {
		logger = discardLogger{}
	}

	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}, nil
}

// Config returns the render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render traces every pixel once and returns the clamped image.
// Cancelling ctx stops the workers between rows and returns ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height

	img := NewImage(width, height)
	camera := NewCamera(rt.scene.GetCamera(), width, height)
	tileRenderer := NewTileRenderer(camera, integrator.NewWhittedIntegrator(rt.scene, rt.config.MaxDepth))
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	workerPool := NewWorkerPool(ctx, tileRenderer, img, len(tiles), rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d (depth %d): %d tiles on %d workers\n",
		width, height, rt.config.MaxDepth, len(tiles), workerPool.GetNumWorkers())

	workerPool.Start()
	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	workerPool.Stop()

	stats := RenderStats{
		TotalPixels: width * height,
		Tiles:       len(tiles),
		NumWorkers:  workerPool.GetNumWorkers(),
	}
	var renderErr error
	for {
		result, ok := workerPool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		stats.Trace.Merge(result.Stats)
	}
	stats.Elapsed = time.Since(start)

	if renderErr != nil {
		rt.logger.Printf("Render stopped after %v: %v\n", stats.Elapsed, renderErr)
		return nil, stats, renderErr
	}

	stats.AverageLuminance = img.AverageLuminance()
	rt.logger.Printf("Render completed in %v: %d primary hits, %d shadow rays, %d reflections\n",
		stats.Elapsed, stats.Trace.PrimaryHits, stats.Trace.ShadowRays, stats.Trace.ReflectionRays)

	return img, stats, nil
}

// Render traces the given world with default tiling and one worker per CPU
func Render(ctx context.Context, camera, ambient core.Vec3, sceneLights []lights.Light, objects []geometry.Primitive, width, height, maxDepth int) (*Image, error) {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.MaxDepth = maxDepth

	rt, err := NewRaytracer(&world{
		camera:     camera,
		ambient:    ambient,
		lights:     sceneLights,
		primitives: objects,
	}, config, nil)
	if err != nil {
		return nil, err
	}

	img, _, err := rt.Render(ctx)
	return img, err
}

// world is a Scene assembled from loose parts
type world struct {
	camera     core.Vec3
	ambient    core.Vec3
	lights     []lights.Light
	primitives []geometry.Primitive
}

func (w *world) GetCamera() core.Vec3                { return w.camera }
func (w *world) GetAmbient() core.Vec3               { return w.ambient }
func (w *world) GetLights() []lights.Light           { return w.lights }
func (w *world) GetPrimitives() []geometry.Primitive { return w.primitives }
