package renderer

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	mathpkg "github.com/df07/go-weekend-raytracer/pkg/math"
)

func newTestScene(shapes ...geometry.Shape) testScene {
	return testScene{
		camera: NewCamera(DefaultCameraConfig()),
		world:  geometry.NewShapeList(shapes...),
	}
}

func TestRayColor_SkyGradient(t *testing.T) {
	world := geometry.NewShapeList()

	tests := []struct {
		name      string
		direction mathpkg.Vec3
		expected  mathpkg.Vec3
	}{
		{"straight up", mathpkg.NewVec3(0, 1, 0), mathpkg.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", mathpkg.NewVec3(0, -1, 0), mathpkg.NewVec3(1, 1, 1)},
		{"horizon", mathpkg.NewVec3(0, 0, -1), mathpkg.NewVec3(0.75, 0.85, 1.0)},
		{"unnormalized up", mathpkg.NewVec3(0, 10, 0), mathpkg.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := mathpkg.NewRay(mathpkg.Vec3{}, tt.direction)
			got := RayColor(ray, world)
			if !vecClose(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRayColor_NormalVisualization(t *testing.T) {
	world := geometry.NewShapeList(geometry.NewSphere(mathpkg.NewVec3(0, 0, -1), 0.5))
	ray := mathpkg.NewRay(mathpkg.Vec3{}, mathpkg.NewVec3(0, 0, -1))

	got := RayColor(ray, world)
	expected := mathpkg.NewVec3(0.5, 0.5, 1.0)
	if got != expected {
		t.Errorf("Expected exactly %v, got %v", expected, got)
	}
}

func TestRayColor_ClosestSphereWins(t *testing.T) {
	// Ground sphere behind the small sphere along the view ray
	world := geometry.NewShapeList(
		geometry.NewSphere(mathpkg.NewVec3(0, -100.5, -1), 100),
		geometry.NewSphere(mathpkg.NewVec3(0, 0, -1), 0.5),
	)
	ray := mathpkg.NewRay(mathpkg.Vec3{}, mathpkg.NewVec3(0, -0.1, -1))

	hit, _ := world.Hit(ray, 0, math.Inf(1))
	got := RayColor(ray, world)
	expected := hit.Normal.Add(mathpkg.NewVec3(1, 1, 1)).Multiply(0.5)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if math.Abs(hit.Point.Subtract(mathpkg.NewVec3(0, 0, -1)).Length()-0.5) > 1e-9 {
		t.Errorf("Expected the small sphere to be hit first, got point %v", hit.Point)
	}
}

func TestRayColor_ColorsStayInUnitRange(t *testing.T) {
	world := geometry.NewShapeList(
		geometry.NewSphere(mathpkg.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(mathpkg.NewVec3(0, -100.5, -1), 100),
	)
	camera := NewCamera(DefaultCameraConfig())

	for u := 0.0; u <= 1.0; u += 0.125 {
		for v := 0.0; v <= 1.0; v += 0.125 {
			c := RayColor(camera.GetRay(u, v), world)
			for _, ch := range c.Array() {
				if ch < -1e-9 || ch > 1+1e-9 {
					t.Fatalf("Color %v out of range at (%f, %f)", c, u, v)
				}
			}
		}
	}
}

func TestQuantizeChannel(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half", 0.5, 127},
		{"sky blue green", 0.7, 179},
		{"below range", -0.25, 0},
		{"above range", 1.5, 255},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeChannel(tt.in); got != tt.want {
				t.Errorf("QuantizeChannel(%f) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRaytracer_CenterPixelHitsSphere(t *testing.T) {
	scene := newTestScene(geometry.NewSphere(mathpkg.NewVec3(0, 0, -1), 0.5))
	raytracer := NewRaytracer(scene, 3, 3, RenderConfig{NumWorkers: 1}, nil)

	img, stats := raytracer.Render()

	center := img.RGBAAt(1, 1)
	if center.R != 127 || center.G != 127 || center.B != 255 || center.A != 255 {
		t.Errorf("Expected center pixel (127,127,255,255), got %v", center)
	}

	if stats.TotalPixels != 9 {
		t.Errorf("Expected 9 pixels, got %d", stats.TotalPixels)
	}
	if stats.HitPixels != 1 {
		t.Errorf("Expected only the center pixel to hit, got %d", stats.HitPixels)
	}
	if stats.Workers != 1 {
		t.Errorf("Expected serial render to report 1 worker, got %d", stats.Workers)
	}
}

func TestRaytracer_RowOrderTopToBottom(t *testing.T) {
	scene := newTestScene()
	raytracer := NewRaytracer(scene, 4, 3, RenderConfig{NumWorkers: 1}, nil)

	img, _ := raytracer.Render()

	// The top row looks upward and is bluer than the bottom row
	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 2)
	if top.R >= bottom.R {
		t.Errorf("Expected top row (%v) to be bluer than bottom row (%v)", top, bottom)
	}

	expectedTop := vec3ToColor(RayColor(scene.camera.GetRay(0, 1), scene.world))
	if top != expectedTop {
		t.Errorf("Expected top-left pixel %v, got %v", expectedTop, top)
	}

	expectedBottomRight := vec3ToColor(RayColor(scene.camera.GetRay(1, 0), scene.world))
	if got := img.RGBAAt(3, 2); got != expectedBottomRight {
		t.Errorf("Expected bottom-right pixel %v, got %v", expectedBottomRight, got)
	}
}

func TestRaytracer_ParallelMatchesSerial(t *testing.T) {
	scene := newTestScene(
		geometry.NewSphere(mathpkg.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(mathpkg.NewVec3(0, -100.5, -1), 100),
	)

	serialImg, serialStats := NewRaytracer(scene, 64, 36, RenderConfig{NumWorkers: 1}, nil).Render()
	parallelImg, parallelStats := NewRaytracer(scene, 64, 36, RenderConfig{NumWorkers: 4}, nil).Render()

	if !bytes.Equal(serialImg.Pix, parallelImg.Pix) {
		t.Error("Parallel render differs from serial render")
	}
	if serialStats.HitPixels != parallelStats.HitPixels {
		t.Errorf("Hit counts differ: serial %d, parallel %d", serialStats.HitPixels, parallelStats.HitPixels)
	}
	if parallelStats.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", parallelStats.Workers)
	}
}

func TestRaytracer_SinglePixel(t *testing.T) {
	scene := newTestScene()
	img, stats := NewRaytracer(scene, 1, 1, RenderConfig{NumWorkers: 1}, nil).Render()

	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("Expected 1x1 image, got %v", img.Bounds())
	}
	if stats.TotalPixels != 1 {
		t.Errorf("Expected 1 pixel, got %d", stats.TotalPixels)
	}
}

func TestRaytracer_LogsProgress(t *testing.T) {
	var buf bytes.Buffer
	scene := newTestScene()
	NewRaytracer(scene, 2, 2, RenderConfig{NumWorkers: 1}, NewWriterLogger(&buf)).Render()

	output := buf.String()
	for _, want := range []string{"Scanlines remaining: 2", "Scanlines remaining: 1", "Done."} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected log output to contain %q, got %q", want, output)
		}
	}
}

func TestRaytracer_PixelColor(t *testing.T) {
	scene := newTestScene(geometry.NewSphere(mathpkg.NewVec3(0, 0, -1), 0.5))
	raytracer := NewRaytracer(scene, 3, 3, DefaultRenderConfig(), nil)

	if got := raytracer.PixelColor(1, 1); got != mathpkg.NewVec3(0.5, 0.5, 1.0) {
		t.Errorf("Expected center pixel color (0.5,0.5,1), got %v", got)
	}
}
