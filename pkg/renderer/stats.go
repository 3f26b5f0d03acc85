package renderer

import (
	"time"

	"github.com/jeremzan/ray-tracing/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int                   // Total number of pixels rendered
	Tiles            int                   // Number of tiles the image was split into
	NumWorkers       int                   // Workers used by the pool
	Elapsed          time.Duration         // Wall time spent tracing
	AverageLuminance float64               // Mean luminance of the clamped image
	Trace            integrator.TraceStats // Ray counters merged across workers
}

// RaysPerPixel returns the average number of rays cast per pixel
func (s RenderStats) RaysPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	rays := s.Trace.PrimaryRays + s.Trace.ShadowRays + s.Trace.ReflectionRays
	return float64(rays) / float64(s.TotalPixels)
}
