package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds render settings and output destinations.
type Config struct {
	// Render settings
	Scene   string `json:"scene"`
	Width   int    `json:"width"`
	Workers int    `json:"workers"`

	// Output
	Output    string `json:"output"`
	Format    string `json:"format"`
	Scale     int    `json:"scale"`
	Thumbnail string `json:"thumbnail"`

	// Upload
	Upload bool     `json:"upload"`
	S3     S3Config `json:"s3"`
}

// S3Config describes an S3-compatible bucket for uploading renders.
type S3Config struct {
	Endpoint  string `json:"endpoint"`
	Region    string `json:"region"`
	Bucket    string `json:"bucket"`
	Prefix    string `json:"prefix"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// Flags carries command-line overrides. Zero values mean "not set".
type Flags struct {
	Scene     string
	Width     int
	Workers   int
	Output    string
	Format    string
	Scale     int
	Thumbnail string
	Upload    bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scene:   "default",
		Width:   400,
		Workers: 0,
		Output:  "image.ppm",
		Scale:   1,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// Load reads a JSON config file on top of the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv loads the given .env files (missing files are ignored) and applies
// RAYTRACER_* and S3_* environment variables on top of c. Variables already
// present in the process environment take priority over .env entries.
func (c *Config) LoadEnv(files ...string) error {
	for _, file := range files {
		if file == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	setString(&c.Scene, "RAYTRACER_SCENE")
	setString(&c.Output, "RAYTRACER_OUTPUT")
	setString(&c.Format, "RAYTRACER_FORMAT")
	setString(&c.Thumbnail, "RAYTRACER_THUMBNAIL")

	if err := setInt(&c.Width, "RAYTRACER_WIDTH"); err != nil {
		return err
	}
	if err := setInt(&c.Workers, "RAYTRACER_WORKERS"); err != nil {
		return err
	}
	if err := setInt(&c.Scale, "RAYTRACER_SCALE"); err != nil {
		return err
	}
	if err := setBool(&c.Upload, "RAYTRACER_UPLOAD"); err != nil {
		return err
	}

	setString(&c.S3.Endpoint, "S3_ENDPOINT")
	setString(&c.S3.Region, "S3_REGION")
	setString(&c.S3.Bucket, "S3_BUCKET")
	setString(&c.S3.Prefix, "S3_PREFIX")
	setString(&c.S3.AccessKey, "S3_ACCESS_KEY")
	setString(&c.S3.SecretKey, "S3_SECRET_KEY")

	return nil
}

// Resolve applies command-line overrides.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Thumbnail != "" {
		c.Thumbnail = flags.Thumbnail
	}
	if flags.Upload {
		c.Upload = true
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("config: width must be positive, got %d", c.Width)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	if c.Scale < 1 {
		return fmt.Errorf("config: scale must be at least 1, got %d", c.Scale)
	}
	if c.Output == "" {
		return errors.New("config: output path is empty")
	}
	if c.Thumbnail != "" {
		if _, _, err := ParseSize(c.Thumbnail); err != nil {
			return err
		}
	}
	if c.Upload && c.S3.Bucket == "" {
		return errors.New("config: upload requested but no S3 bucket configured")
	}
	return nil
}

// ParseSize parses a "WxH" size such as "160x90".
func ParseSize(s string) (width, height int, err error) {
	if _, err := fmt.Sscanf(s, "%dx%d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("config: invalid size %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("config: invalid size %q: dimensions must be positive", s)
	}
	return width, height, nil
}

func setString(dst *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*dst = value
	}
}

func setInt(dst *int, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = b
	return nil
}
