package renderer

import "fmt"

// Options configures a render. Grounded in the teacher's main.go flag
// set, generalized into a struct so the core engine never depends on
// the flag package.
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxRayBounces   int
	Exposure        float64
	Gamma           float64
	Workers         int
	Seed            uint64
}

// Validate rejects nonsensical options before rendering begins. The
// core engine itself never returns an error; configuration mistakes
// are caught here, at the embedder boundary.
func (o Options) Validate() error {
	if o.Width < 1 {
		return fmt.Errorf("renderer: width must be >= 1, got %d", o.Width)
	}
	if o.Height < 1 {
		return fmt.Errorf("renderer: height must be >= 1, got %d", o.Height)
	}
	if o.SamplesPerPixel < 1 {
		return fmt.Errorf("renderer: samples_per_pixel must be >= 1, got %d", o.SamplesPerPixel)
	}
	if o.MaxRayBounces < 1 {
		return fmt.Errorf("renderer: max_ray_bounces must be >= 1, got %d", o.MaxRayBounces)
	}
	if o.Exposure <= 0 {
		return fmt.Errorf("renderer: exposure must be > 0, got %f", o.Exposure)
	}
	if o.Gamma <= 0 {
		return fmt.Errorf("renderer: gamma must be > 0, got %f", o.Gamma)
	}
	if o.Workers < 0 {
		return fmt.Errorf("renderer: workers must be >= 0, got %d", o.Workers)
	}
	return nil
}
