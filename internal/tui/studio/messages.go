package studio

// ExportCompleteMsg indicates the image was written to Path.
type ExportCompleteMsg struct {
	Path string
}

// ExportErrorMsg indicates the export failed. The error is always shown.
type ExportErrorMsg struct {
	Path  string
	Error error
}

type bannerKind int

const (
	bannerNone bannerKind = iota
	bannerSuccess
	bannerError
	bannerSize
)
