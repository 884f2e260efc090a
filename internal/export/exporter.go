package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/alexisbeaulieu97/alpaca/internal/config"
	"github.com/alexisbeaulieu97/alpaca/internal/logger"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
	apperrors "github.com/alexisbeaulieu97/alpaca/pkg/errors"
)

// Default export parameters.
const (
	DefaultSide    = 640
	DefaultFile    = "alpaca.png"
	DefaultQuality = 90
	MinSide        = 16
	MaxSide        = 4096
)

// Options controls one export.
type Options struct {
	// Side is the edge length of the square output in pixels.
	Side    int
	Format  string
	Quality int
	// Timeout bounds the decode step when positive. The caller's context
	// applies either way.
	Timeout time.Duration
}

// OptionsFromSettings maps export settings onto Options.
func OptionsFromSettings(s config.ExportSettings) Options {
	return Options{
		Side:    s.Size,
		Format:  s.Format,
		Quality: s.Quality,
		Timeout: s.Timeout,
	}
}

func (o Options) withDefaults() Options {
	if o.Side == 0 {
		o.Side = DefaultSide
	}
	if o.Format == "" {
		o.Format = config.FormatPNG
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	return o
}

func (o Options) validate() error {
	if o.Side < MinSide || o.Side > MaxSide {
		return apperrors.NewValidationError("size", fmt.Sprintf("must be between %d and %d, got %d", MinSide, MaxSide, o.Side), nil)
	}
	if !knownFormat(o.Format) {
		return apperrors.NewValidationError("format", fmt.Sprintf("unsupported format %q", o.Format), nil)
	}
	if o.Quality < 1 || o.Quality > 100 {
		return apperrors.NewValidationError("quality", fmt.Sprintf("must be between 1 and 100, got %d", o.Quality), nil)
	}
	return nil
}

// Decoder turns a serialized document into a drawable icon.
type Decoder func(doc []byte) (*oksvg.SvgIcon, error)

// DecodeSVG is the default Decoder.
func DecodeSVG(doc []byte) (*oksvg.SvgIcon, error) {
	return oksvg.ReadIconStream(bytes.NewReader(doc))
}

// Exporter rasterizes scenes into encoded images.
type Exporter struct {
	log    *logger.Logger
	decode Decoder
}

// New creates an Exporter. A nil logger discards step timings.
func New(log *logger.Logger) *Exporter {
	return &Exporter{log: log, decode: DecodeSVG}
}

// WithDecoder returns a copy of the exporter that decodes with d.
func (e *Exporter) WithDecoder(d Decoder) *Exporter {
	clone := *e
	clone.decode = d
	return &clone
}

// Export serializes the scene, decodes the document, draws it scaled into
// a Side×Side surface and encodes the result. A document that cannot be
// decoded, or a decode that outlives ctx, fails with *errors.DecodeError.
func (e *Exporter) Export(ctx context.Context, s scene.Scene, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	log := e.log.WithFields(map[string]any{"format": opts.Format, "side": opts.Side})
	started := time.Now()

	start := time.Now()
	doc := Serialize(s)
	log.Timed("serialized scene", start)

	start = time.Now()
	icon, err := e.decodeAsync(ctx, doc, opts.Timeout)
	if err != nil {
		log.Error(err, "decode failed")
		return nil, err
	}
	log.Timed("decoded document", start)

	start = time.Now()
	img := rasterize(icon, opts.Side)
	log.Timed("rasterized", start)

	start = time.Now()
	var out bytes.Buffer
	if err := encode(&out, img, opts.Format, opts.Quality); err != nil {
		wrapped := apperrors.NewExportError("encode", err)
		log.Error(wrapped, "encode failed")
		return nil, wrapped
	}
	log.Timed("encoded", start)

	log.With("bytes", out.Len()).Timed("export finished", started)
	return out.Bytes(), nil
}

// ExportFile exports the scene and writes it to path. The image is written
// to a temporary file in the same directory and renamed into place, so no
// file appears at path when any step fails.
func (e *Exporter) ExportFile(ctx context.Context, s scene.Scene, opts Options, path string) error {
	data, err := e.Export(ctx, s, opts)
	if err != nil {
		return err
	}

	if err := writeAtomic(path, data); err != nil {
		wrapped := apperrors.NewExportError("write", err)
		e.log.With("path", path).Error(wrapped, "write failed")
		return wrapped
	}

	e.log.With("path", path).Info("export written")
	return nil
}

type decodeResult struct {
	icon *oksvg.SvgIcon
	err  error
}

func (e *Exporter) decodeAsync(ctx context.Context, doc []byte, timeout time.Duration) (*oksvg.SvgIcon, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	results := make(chan decodeResult, 1)
	go func() {
		icon, err := e.decode(doc)
		results <- decodeResult{icon: icon, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, apperrors.NewDecodeError(ctx.Err())
	case res := <-results:
		if res.err != nil {
			return nil, apperrors.NewDecodeError(res.err)
		}
		if res.icon == nil {
			return nil, apperrors.NewDecodeError(nil)
		}
		return res.icon, nil
	}
}

func rasterize(icon *oksvg.SvgIcon, side int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	icon.SetTarget(0, 0, float64(side), float64(side))
	scanner := rasterx.NewScannerGV(side, side, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(side, side, scanner), 1)
	return img
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".alpaca-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
