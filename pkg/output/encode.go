package output

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
)

// ErrUnknownFormat is returned for image formats that cannot be encoded
var ErrUnknownFormat = errors.New("unknown image format")

// Format identifies an output image encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatTIFF Format = "tiff"
	FormatBMP  Format = "bmp"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// Formats lists every supported format
var Formats = []Format{FormatPPM, FormatPNG, FormatJPEG, FormatGIF, FormatTIFF, FormatBMP, FormatWebP, FormatTGA}

var imagingFormats = map[Format]imaging.Format{
	FormatPNG:  imaging.PNG,
	FormatJPEG: imaging.JPEG,
	FormatGIF:  imaging.GIF,
	FormatTIFF: imaging.TIFF,
	FormatBMP:  imaging.BMP,
}

// ParseFormat converts a format name such as "png" or "JPG" to a Format
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch name {
	case "ppm", "pnm":
		return FormatPPM, nil
	case "webp":
		return FormatWebP, nil
	case "tga":
		return FormatTGA, nil
	}

	f, err := imaging.FormatFromExtension(name)
	if err != nil {
		return "", fmt.Errorf("output: %w %q", ErrUnknownFormat, name)
	}
	for format, imgFormat := range imagingFormats {
		if imgFormat == f {
			return format, nil
		}
	}
	return "", fmt.Errorf("output: %w %q", ErrUnknownFormat, name)
}

// FormatFromPath derives the format from the file extension of path
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Extension returns the conventional file extension including the dot
func (f Format) Extension() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// ContentType returns the MIME type used when uploading the format
func (f Format) ContentType() string {
	switch f {
	case FormatPPM:
		return "image/x-portable-pixmap"
	case FormatTGA:
		return "image/x-tga"
	default:
		return "image/" + string(f)
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("output: webp encode: %w", err)
		}
		return nil
	case FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("output: tga encode: %w", err)
		}
		return nil
	}

	imgFormat, ok := imagingFormats[format]
	if !ok {
		return fmt.Errorf("output: %w %q", ErrUnknownFormat, format)
	}
	if err := imaging.Encode(w, img, imgFormat, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("output: %s encode: %w", format, err)
	}
	return nil
}

// Save encodes img to path, creating parent directories as needed
func Save(path string, img image.Image, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output: create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}

	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	return nil
}
