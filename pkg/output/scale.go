package output

import (
	"image"
	"path/filepath"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Scale enlarges img by an integer factor using nearest-neighbour sampling,
// so every rendered pixel becomes a crisp factor×factor block
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Thumbnail downsizes img with Lanczos filtering to fit within maxWidth×maxHeight
// while preserving the aspect ratio. Images that already fit are returned as is.
func Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Lanczos3)
}

// ThumbnailPath returns the path of the thumbnail written alongside path
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "_thumb.png"
}
