package studio

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
)

const sizeBannerPrefix = "Terminal too small"

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showBanner(bannerSize, fmt.Sprintf("%s (%dx%d). Minimum size: %dx%d",
				sizeBannerPrefix, m.width, m.height, minWidth, minHeight))
		} else if m.banner == bannerSize {
			m.clearBanner()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ExportCompleteMsg:
		m.exporting = false
		m.log.With("path", msg.Path).Info("studio export finished")
		m.showBanner(bannerSuccess, fmt.Sprintf("Saved %s", msg.Path))
		return m, nil

	case ExportErrorMsg:
		m.exporting = false
		m.log.With("path", msg.Path).Error(msg.Error, "studio export failed")
		m.showBanner(bannerError, fmt.Sprintf("Export failed: %s", msg.Error))
		return m, nil
	}

	return m, nil
}

// handleKeyPress maps keys onto selection operations and view state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		if m.showHelp {
			m.showHelp = false
			m.help.ShowAll = false
			return m, nil
		}
		if m.banner != bannerNone && m.banner != bannerSize {
			m.clearBanner()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.moveTab(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.moveTab(1)
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		index := int(msg.String()[0] - '1')
		m.setTab(avatar.Categories()[index])
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Pick):
		opts := avatar.OptionsFor(m.tab)
		m.setSelection(avatar.Pick(m.selection, m.tab, opts[m.cursor].ID))
		return m, nil

	case key.Matches(msg, m.keys.Randomize):
		m.setSelection(avatar.Randomize(m.source))
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.setSelection(avatar.Reset())
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m.startExport()
	}

	return m, nil
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	if m.exporter == nil {
		m.showBanner(bannerError, "Export failed: no exporter configured")
		return m, nil
	}

	m.exporting = true
	if m.banner != bannerSize {
		m.clearBanner()
	}
	m.log.WithFields(map[string]any{"path": m.output, "selection": m.selection.String()}).Debug("studio export requested")
	return m, tea.Batch(m.spinner.Tick, exportCmd(m.exporter, m.scene.Clone(), m.exportOpts, m.output))
}
