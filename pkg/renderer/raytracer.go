package renderer

import (
	"image"
	"image/color"
	gomath "math"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/math"
)

var (
	white   = math.NewVec3(1.0, 1.0, 1.0)
	skyBlue = math.NewVec3(0.5, 0.7, 1.0)
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count, 1 = serial)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config RenderConfig
	logger Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int, config RenderConfig, logger Logger) *Raytracer {
	if logger == nil {
		logger = NewDiscardLogger()
	}
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// RayColor returns the color seen along a ray: the surface normal mapped to
// RGB if the ray hits the world, otherwise the sky gradient
func RayColor(r math.Ray, world geometry.Shape) math.Vec3 {
	c, _ := rayColor(r, world)
	return c
}

func rayColor(r math.Ray, world geometry.Shape) (math.Vec3, bool) {
	if hit, isHit := world.Hit(r, 0, gomath.Inf(1)); isHit {
		// Map normal components from [-1,1] to [0,1]
		return hit.Normal.Add(white).Multiply(0.5), true
	}
	return BackgroundGradient(r), false
}

// BackgroundGradient blends white at the bottom into sky blue at the top
// based on the y component of the normalized ray direction
func BackgroundGradient(r math.Ray) math.Vec3 {
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return math.Lerp(white, skyBlue, t)
}

// QuantizeChannel converts a color channel in [0,1] to [0,255] as
// floor(255.999 * c). Out-of-range values are clamped and NaN maps to 0.
func QuantizeChannel(c float64) uint8 {
	if gomath.IsNaN(c) {
		return 0
	}
	c = gomath.Max(0, gomath.Min(1, c))
	return uint8(255.999 * c)
}

// vec3ToColor converts a Vec3 color to an opaque RGBA pixel
func vec3ToColor(colorVec math.Vec3) color.RGBA {
	return color.RGBA{
		R: QuantizeChannel(colorVec.X),
		G: QuantizeChannel(colorVec.Y),
		B: QuantizeChannel(colorVec.Z),
		A: 255,
	}
}

// viewportCoord maps pixel index i of n pixels onto [0,1]
func viewportCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// PixelColor returns the color of the pixel at column i and image row y,
// where row 0 is the top of the image
func (rt *Raytracer) PixelColor(i, y int) math.Vec3 {
	c, _ := rt.pixelColor(rt.scene.GetCamera(), rt.scene.GetWorld(), i, y)
	return c
}

func (rt *Raytracer) pixelColor(camera *Camera, world geometry.Shape, i, y int) (math.Vec3, bool) {
	j := rt.height - 1 - y
	ray := camera.GetRay(viewportCoord(i, rt.width), viewportCoord(j, rt.height))
	return rayColor(ray, world)
}

// RenderRow renders image row y into img and returns the number of pixels
// that hit geometry. Rows are independent, so distinct rows may be rendered
// concurrently into the same image.
func (rt *Raytracer) RenderRow(img *image.RGBA, y int) int {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	hits := 0
	for i := 0; i < rt.width; i++ {
		colorVec, isHit := rt.pixelColor(camera, world, i, y)
		if isHit {
			hits++
		}
		img.SetRGBA(i, y, vec3ToColor(colorVec))
	}
	return hits
}

// Render renders the full image, top row first
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	startTime := time.Now()

	var stats RenderStats
	if rt.config.NumWorkers == 1 {
		stats = rt.renderSerial(img)
	} else {
		stats = rt.renderParallel(img)
	}

	stats.Width = rt.width
	stats.Height = rt.height
	stats.TotalPixels = rt.width * rt.height
	stats.Duration = time.Since(startTime)
	rt.logger.Printf("\nDone.\n")

	return img, stats
}

func (rt *Raytracer) renderSerial(img *image.RGBA) RenderStats {
	stats := RenderStats{Workers: 1}
	for y := 0; y < rt.height; y++ {
		rt.logProgress(rt.height - y)
		stats.HitPixels += rt.RenderRow(img, y)
	}
	return stats
}

func (rt *Raytracer) renderParallel(img *image.RGBA) RenderStats {
	workerPool := NewWorkerPool(rt, img, rt.height, rt.config.NumWorkers)
	workerPool.Start()

	for y := 0; y < rt.height; y++ {
		workerPool.SubmitTask(RowTask{Row: y, TaskID: y})
	}

	stats := RenderStats{Workers: workerPool.GetNumWorkers()}
	for completed := 0; completed < rt.height; completed++ {
		rt.logProgress(rt.height - completed)
		result, ok := workerPool.GetResult()
		if !ok {
			break
		}
		stats.HitPixels += result.Hits
	}

	workerPool.Stop()
	return stats
}

func (rt *Raytracer) logProgress(remaining int) {
	rt.logger.Printf("\rScanlines remaining: %d ", remaining)
}
