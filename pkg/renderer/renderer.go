// Package renderer turns intersection queries into images: a pinhole camera,
// a tile worker pool, eye-light shading and image encoding.
package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/log"
)

var logger = log.New("renderer")

// defaultMaterialColor shades hits on primitives without a material
var defaultMaterialColor = core.NewVec3(0.8, 0.8, 0.8)

// Scene interface to avoid circular imports
type Scene interface {
	GetRoot() core.Intersectable
	GetCameraConfig() CameraConfig
	GetBackground() core.Vec3
}

// Renderer renders a scene with eye-light shading: every hit is lit by a
// light placed at the camera.
type Renderer struct {
	scene  Scene
	root   core.Intersectable
	camera *Camera
	config Config
}

// NewRenderer validates the scene camera and fills config defaults
func NewRenderer(scene Scene, config Config) (*Renderer, error) {
	config = config.withDefaults()

	cameraConfig := scene.GetCameraConfig()
	cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)
	camera, err := NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}
	if scene.GetRoot() == nil {
		return nil, fmt.Errorf("renderer: scene has no root")
	}

	return &Renderer{
		scene:  scene,
		root:   scene.GetRoot(),
		camera: camera,
		config: config,
	}, nil
}

// Config returns the effective configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render traces every pixel on the worker pool and returns the tonemapped image.
// When ctx is cancelled the partial image is discarded and ctx's error returned.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	width, height := r.config.Width, r.config.Height

	pixels := make([][]PixelStats, height)
	for y := range pixels {
		pixels[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, r.config.TileSize)
	pool := NewWorkerPool(r.renderTile, r.config.Workers, len(tiles))
	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Pixels: pixels})
	}

	logger.Debugf("rendering %dx%d in %d tiles on %d workers", width, height, len(tiles), pool.GetNumWorkers())

	var stats RenderStats
	var renderErr error
	for range tiles {
		result, _ := pool.GetResult()
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		stats.merge(result.Stats)
		logger.Debugf("tile %d done (%d/%d)", result.TaskID, stats.Tiles, len(tiles))
	}
	pool.Stop()

	if renderErr != nil {
		return nil, stats, renderErr
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Row 0 of the pixel array is the bottom of the picture
			img.SetRGBA(x, height-1-y, ClampTonemap(pixels[y][x].GetColor()))
		}
	}

	stats.Duration = time.Since(startTime)
	logger.Noticef("rendered %d samples in %v (%.1f%% hits)", stats.TotalSamples, stats.Duration, 100*stats.HitRatio())
	return img, stats, nil
}

// renderTile samples every pixel of a tile
func (r *Renderer) renderTile(tile *Tile, pixels [][]PixelStats) RenderStats {
	stats := RenderStats{Tiles: 1, TotalPixels: tile.Bounds.Dx() * tile.Bounds.Dy()}
	width, height := float64(r.config.Width), float64(r.config.Height)

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
				dx, dy := 0.5, 0.5
				if r.config.SamplesPerPixel > 1 {
					dx, dy = tile.Random.Float64(), tile.Random.Float64()
				}
				ray := r.camera.GetRay((float64(i)+dx)/width, (float64(j)+dy)/height)

				color, hit := r.Shade(ray)
				if hit {
					stats.Hits++
				}
				pixels[j][i].AddSample(color)
				stats.TotalSamples++
			}
		}
	}

	return stats
}

// Shade returns the eye-light radiance along a ray and whether it hit the scene
func (r *Renderer) Shade(ray core.Ray) (core.Vec3, bool) {
	hit, ok := r.root.Intersect(ray)
	if !ok {
		return r.scene.GetBackground(), false
	}

	normal := hit.ShadingNormal()
	cosine := math.Max(0, normal.Dot(hit.W))

	brdf := defaultMaterialColor.Multiply(1 / math.Pi)
	if hit.Material != nil {
		brdf = hit.Material.EvaluateBRDF(hit, hit.W, hit.W)
	}
	return brdf.Multiply(math.Pi * cosine), true
}

// ClampTonemap clamps each channel to [0, 1] and quantizes it to 8 bits
func ClampTonemap(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(math.Round(c.X * 255)),
		G: uint8(math.Round(c.Y * 255)),
		B: uint8(math.Round(c.Z * 255)),
		A: 255,
	}
}
