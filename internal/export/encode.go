package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/alexisbeaulieu97/alpaca/internal/config"
)

// Formats lists the supported raster encodings, default first.
var Formats = []string{config.FormatPNG, config.FormatJPEG, config.FormatBMP, config.FormatTIFF}

// ParseFormat resolves a format name or file extension, ignoring case and
// a leading dot, so "jpg", ".JPEG" and "jpeg" all yield "jpeg".
func ParseFormat(name string) (string, bool) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "png":
		return config.FormatPNG, true
	case "jpg", "jpeg":
		return config.FormatJPEG, true
	case "bmp":
		return config.FormatBMP, true
	case "tif", "tiff":
		return config.FormatTIFF, true
	default:
		return "", false
	}
}

// FormatFromPath infers the encoding from a file extension. It returns ""
// when the extension is not recognized.
func FormatFromPath(path string) string {
	format, _ := ParseFormat(filepath.Ext(path))
	return format
}

func knownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case config.FormatPNG:
		return png.Encode(w, img)
	case config.FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case config.FormatBMP:
		return bmp.Encode(w, img)
	case config.FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
