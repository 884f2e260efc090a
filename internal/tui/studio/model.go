package studio

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
	"github.com/alexisbeaulieu97/alpaca/internal/export"
	"github.com/alexisbeaulieu97/alpaca/internal/layers"
	"github.com/alexisbeaulieu97/alpaca/internal/logger"
	"github.com/alexisbeaulieu97/alpaca/internal/preview"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

const (
	minWidth  = 80
	minHeight = 24

	// previewCols is the preview width in terminal cells; it spans
	// previewCols/2 rows.
	previewCols = 40
)

// Options configures a studio session.
type Options struct {
	Exporter FileExporter
	Export   export.Options
	Output   string
	Logger   *logger.Logger
	// Source drives randomize. A time-seeded generator is used when nil.
	Source avatar.Source
	// Initial is the starting selection. The default selection is used
	// when nil.
	Initial *avatar.Selection
}

// Model is the studio state.
type Model struct {
	// Core data
	selection avatar.Selection
	scene     scene.Scene
	preview   string

	// UI state
	tab      avatar.Category
	cursor   int
	showHelp bool

	// Component state
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// Export state
	exporter   FileExporter
	exportOpts export.Options
	output     string
	exporting  bool

	// Banner state
	banner     bannerKind
	bannerText string

	// Dimensions
	width  int
	height int

	source avatar.Source
	log    *logger.Logger
}

// NewModel creates a studio model showing the Hair tab.
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	src := opts.Source
	if src == nil {
		src = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	output := opts.Output
	if output == "" {
		output = export.DefaultFile
	}

	sel := avatar.DefaultSelection()
	if opts.Initial != nil {
		sel = *opts.Initial
	}

	m := Model{
		tab:        avatar.Hair,
		spinner:    s,
		help:       help.New(),
		keys:       defaultKeyMap(),
		exporter:   opts.Exporter,
		exportOpts: opts.Export,
		output:     output,
		source:     src,
		log:        opts.Logger,
		width:      minWidth,
		height:     minHeight,
	}
	m.setSelection(sel)
	return m
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Selection returns the current selection.
func (m Model) Selection() avatar.Selection {
	return m.selection
}

// Scene returns the scene composed from the current selection.
func (m Model) Scene() scene.Scene {
	return m.scene
}

// Tab returns the active category.
func (m Model) Tab() avatar.Category {
	return m.tab
}

// Exporting reports whether an export is in flight.
func (m Model) Exporting() bool {
	return m.exporting
}

// setSelection recomposes the scene and preview and moves the cursor to the
// chosen option of the active tab.
func (m *Model) setSelection(sel avatar.Selection) {
	m.selection = sel
	m.scene = layers.Compose(sel)

	rendered, err := preview.Render(m.scene, previewCols)
	if err != nil {
		m.log.Error(err, "preview failed")
		rendered = ""
	}
	m.preview = rendered
	m.syncCursor()
}

func (m *Model) syncCursor() {
	m.cursor = avatar.IndexOf(m.tab, m.selection.Get(m.tab))
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setTab(c avatar.Category) {
	m.tab = c
	m.syncCursor()
}

func (m *Model) moveTab(delta int) {
	n := len(avatar.Categories())
	m.setTab(avatar.Category((int(m.tab) + delta + n) % n))
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	n := len(avatar.OptionsFor(m.tab))
	m.cursor = (m.cursor - 1 + n) % n
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	n := len(avatar.OptionsFor(m.tab))
	m.cursor = (m.cursor + 1) % n
}

func (m *Model) showBanner(kind bannerKind, text string) {
	m.banner = kind
	m.bannerText = text
}

func (m *Model) clearBanner() {
	m.banner = bannerNone
	m.bannerText = ""
}
