package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	configFile := flag.String("config", "", "Path to config.json file")
	envFile := flag.String("env", ".env", "Path to .env file with RAYTRACER_* and S3_* variables")
	sceneType := flag.String("scene", "", "Scene type: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 0, "Image width in pixels (default: 400)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU, 1 = serial)")
	outputPath := flag.String("output", "", "Output file (default: image.ppm)")
	format := flag.String("format", "", "Output format (default: from output extension)")
	scale := flag.Int("scale", 0, "Integer upscale factor applied before saving")
	thumbnail := flag.String("thumbnail", "", "Also write a PNG thumbnail fitting WxH, e.g. 160x90")
	upload := flag.Bool("upload", false, "Upload the rendered file to the configured S3 bucket")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	cfg, err := loadConfig(*configFile, *envFile, config.Flags{
		Scene:     *sceneType,
		Width:     *width,
		Workers:   *workers,
		Output:    *outputPath,
		Format:    *format,
		Scale:     *scale,
		Thumbnail: *thumbnail,
		Upload:    *upload,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Weekend Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output formats:")
	for _, f := range output.Formats {
		fmt.Printf("  %s\n", f)
	}
}

// loadConfig layers defaults, the optional JSON file, the environment and flags
func loadConfig(configFile, envFile string, flags config.Flags) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	if err := cfg.LoadEnv(envFile); err != nil {
		return config.Config{}, err
	}

	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveFormat picks the explicit format or derives it from the output path
func resolveFormat(cfg config.Config) (output.Format, error) {
	if cfg.Format != "" {
		return output.ParseFormat(cfg.Format)
	}
	return output.FormatFromPath(cfg.Output)
}

// run renders the configured scene and writes (and optionally uploads) the result
func run(cfg config.Config, logger renderer.Logger) error {
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	selectedScene, err := scene.Lookup(cfg.Scene, cfg.Width)
	if err != nil {
		return err
	}

	fmt.Printf("Rendering %q scene at %dx%d (%d shapes)...\n",
		cfg.Scene, selectedScene.Width, selectedScene.Height, selectedScene.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(selectedScene, selectedScene.Width, selectedScene.Height,
		renderer.RenderConfig{NumWorkers: cfg.Workers}, logger)

	img, stats := raytracer.Render()

	fmt.Printf("Render completed in %v using %d workers (%.0f pixels/s, %.1f%% hit geometry)\n",
		stats.Duration.Round(time.Millisecond), stats.Workers, stats.PixelsPerSecond(), 100*stats.HitRatio())

	var final image.Image = img
	if cfg.Scale > 1 {
		final = output.Scale(img, cfg.Scale)
	}

	if err := output.Save(cfg.Output, final, format); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", cfg.Output)

	if cfg.Thumbnail != "" {
		w, h, err := config.ParseSize(cfg.Thumbnail)
		if err != nil {
			return err
		}
		thumbPath := output.ThumbnailPath(cfg.Output)
		if err := output.Save(thumbPath, output.Thumbnail(img, w, h), output.FormatPNG); err != nil {
			return err
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbPath)
	}

	if cfg.Upload {
		uploader, err := output.NewS3Uploader(output.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			Prefix:    cfg.S3.Prefix,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		key, err := uploader.UploadFile(ctx, cfg.Output, format)
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded to s3://%s/%s\n", cfg.S3.Bucket, key)
	}

	return nil
}
