package studio

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/alpaca/internal/export"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

// FileExporter writes a scene to disk. *export.Exporter satisfies it.
type FileExporter interface {
	ExportFile(ctx context.Context, s scene.Scene, opts export.Options, path string) error
}

// exportCmd runs the export off the update loop. The scene is a snapshot
// taken when the key was pressed.
func exportCmd(exp FileExporter, snapshot scene.Scene, opts export.Options, path string) tea.Cmd {
	return func() tea.Msg {
		if err := exp.ExportFile(context.Background(), snapshot, opts, path); err != nil {
			return ExportErrorMsg{Path: path, Error: err}
		}
		return ExportCompleteMsg{Path: path}
	}
}
