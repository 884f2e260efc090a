package config

import "time"

// Export format names accepted by the settings file and the CLI.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// Settings holds tool preferences. Avatar state is never stored here.
type Settings struct {
	Export ExportSettings `yaml:"export"`
	Log    LogSettings    `yaml:"log"`
}

// ExportSettings configures the raster export pipeline.
type ExportSettings struct {
	Size    int           `yaml:"size" validate:"min=16,max=4096"`
	Format  string        `yaml:"format" validate:"oneof=png jpeg bmp tiff"`
	Quality int           `yaml:"quality" validate:"min=1,max=100"`
	Output  string        `yaml:"output" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"min=100ms,max=10m"`
}

// LogSettings configures the zerolog sink.
type LogSettings struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Human bool   `yaml:"human"`
	File  string `yaml:"file"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Export: ExportSettings{
			Size:    640,
			Format:  FormatPNG,
			Quality: 90,
			Output:  "alpaca.png",
			Timeout: 10 * time.Second,
		},
		Log: LogSettings{
			Level: "info",
			Human: true,
		},
	}
}
