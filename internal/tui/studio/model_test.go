package studio

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
	"github.com/alexisbeaulieu97/alpaca/internal/export"
	"github.com/alexisbeaulieu97/alpaca/internal/layers"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
	apperrors "github.com/alexisbeaulieu97/alpaca/pkg/errors"
)

type fakeExporter struct {
	mu    sync.Mutex
	err   error
	calls []exportCall
}

type exportCall struct {
	scene scene.Scene
	opts  export.Options
	path  string
}

func (f *fakeExporter) ExportFile(_ context.Context, s scene.Scene, opts export.Options, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, exportCall{scene: s, opts: opts, path: path})
	return f.err
}

type fixedSource struct{ n int }

func (f fixedSource) IntN(n int) int { return f.n % n }

func newTestModel(t *testing.T, exp FileExporter) Model {
	t.Helper()
	return NewModel(Options{
		Exporter: exp,
		Export:   export.Options{Side: 64},
		Output:   "out.png",
		Source:   fixedSource{n: 1},
	})
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

// drain runs a command and any batched commands, returning their messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewModelStartsOnHairWithDefault(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, avatar.Hair, m.Tab())
	assert.Equal(t, avatar.DefaultSelection(), m.Selection())
	assert.Equal(t, layers.Compose(avatar.DefaultSelection()), m.Scene())
	assert.Equal(t, avatar.IndexOf(avatar.Hair, "poof"), m.cursor)
	assert.NotEmpty(t, m.preview)
}

func TestTabsAreViewStateOnly(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "right")
	assert.Equal(t, avatar.Eyes, m.Tab())

	m = press(t, m, "left", "left")
	assert.Equal(t, avatar.Ears, m.Tab())

	m = press(t, m, "1")
	assert.Equal(t, avatar.Background, m.Tab())

	m = press(t, m, "left")
	assert.Equal(t, avatar.Accessory, m.Tab())

	m = press(t, m, "tab")
	assert.Equal(t, avatar.Background, m.Tab())

	m = press(t, m, "8")
	assert.Equal(t, avatar.Accessory, m.Tab())

	assert.Equal(t, avatar.DefaultSelection(), m.Selection())
}

func TestPickSelectsOptionUnderCursor(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "5", "down", "down", "down", "enter")
	assert.Equal(t, "winky", m.Selection().Get(avatar.Eyes))
	assert.Equal(t, layers.Compose(m.Selection()), m.Scene())

	// Every other category is untouched.
	want := avatar.Pick(avatar.DefaultSelection(), avatar.Eyes, "winky")
	assert.Equal(t, want, m.Selection())

	m = press(t, m, "up", "space")
	assert.Equal(t, "round", m.Selection().Get(avatar.Eyes))
}

func TestCursorWraps(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "3", "up")
	assert.Equal(t, len(avatar.OptionsFor(avatar.Ears))-1, m.cursor)
	m = press(t, m, "down")
	assert.Equal(t, 0, m.cursor)
}

func TestRandomizeAndReset(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "r")
	assert.Equal(t, avatar.Randomize(fixedSource{n: 1}), m.Selection())
	assert.NotEqual(t, avatar.DefaultSelection(), m.Selection())

	m = press(t, m, "0")
	assert.Equal(t, avatar.DefaultSelection(), m.Selection())

	m = press(t, m, "r", "backspace")
	assert.Equal(t, avatar.DefaultSelection(), m.Selection())
}

func TestExportSuccess(t *testing.T) {
	exp := &fakeExporter{}
	m := newTestModel(t, exp)
	m = press(t, m, "5", "down", "enter")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(Model)
	require.True(t, m.Exporting())
	require.NotNil(t, cmd)

	// A second press while pending is ignored.
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	assert.Nil(t, again)

	var done tea.Msg
	for _, msg := range drain(cmd) {
		if _, ok := msg.(ExportCompleteMsg); ok {
			done = msg
		}
	}
	require.NotNil(t, done)
	require.Len(t, exp.calls, 1)
	assert.Equal(t, "out.png", exp.calls[0].path)
	assert.Equal(t, 64, exp.calls[0].opts.Side)
	assert.Equal(t, m.Scene(), exp.calls[0].scene)

	next, _ = m.Update(done)
	m = next.(Model)
	assert.False(t, m.Exporting())
	assert.Equal(t, bannerSuccess, m.banner)
	assert.Contains(t, m.View(), "Saved out.png")

	m = press(t, m, "x")
	assert.Equal(t, bannerNone, m.banner)
}

func TestExportFailureIsReported(t *testing.T) {
	exp := &fakeExporter{err: apperrors.NewDecodeError(errors.New("bad xml"))}
	m := newTestModel(t, exp)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(Model)

	var failure ExportErrorMsg
	for _, msg := range drain(cmd) {
		if e, ok := msg.(ExportErrorMsg); ok {
			failure = e
		}
	}
	var decodeErr *apperrors.DecodeError
	require.ErrorAs(t, failure.Error, &decodeErr)

	next, _ = m.Update(failure)
	m = next.(Model)
	assert.False(t, m.Exporting())
	assert.Equal(t, bannerError, m.banner)
	assert.Contains(t, m.View(), "bad xml")
}

func TestExportSnapshotIgnoresLaterPicks(t *testing.T) {
	exp := &fakeExporter{}
	m := newTestModel(t, exp)
	before := m.Scene()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(Model)
	m = press(t, m, "7", "down", "enter")
	require.NotEqual(t, before, m.Scene())

	drain(cmd)
	require.Len(t, exp.calls, 1)
	assert.Equal(t, before, exp.calls[0].scene)
}

func TestExportWithoutExporter(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "e")
	assert.False(t, m.Exporting())
	assert.Equal(t, bannerError, m.banner)
}

func TestWindowTooSmall(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	assert.Equal(t, bannerSize, m.banner)
	assert.Contains(t, m.bannerText, "Terminal too small")

	// Size banners are not dismissable by key.
	m = press(t, m, "x")
	assert.Equal(t, bannerSize, m.banner)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Equal(t, bannerNone, m.banner)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "?")
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "jump to category")

	m = press(t, m, "?")
	assert.False(t, m.showHelp)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsShareCodeAndMarks(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	assert.Contains(t, view, avatar.DefaultSelection().String())
	assert.Contains(t, view, "Alpaca Studio")
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "Poof")
}

func TestInitialSelection(t *testing.T) {
	sel := avatar.Pick(avatar.DefaultSelection(), avatar.Hair, "mohawk")
	m := NewModel(Options{Initial: &sel})

	assert.Equal(t, sel, m.Selection())
	assert.Equal(t, avatar.IndexOf(avatar.Hair, "mohawk"), m.cursor)
	assert.Equal(t, export.DefaultFile, m.output)
}

func TestNewExportClearsPreviousBanner(t *testing.T) {
	exp := &fakeExporter{err: errors.New("disk full")}
	m := newTestModel(t, exp)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(Model)
	for _, msg := range drain(cmd) {
		if failure, ok := msg.(ExportErrorMsg); ok {
			next, _ = m.Update(failure)
			m = next.(Model)
		}
	}
	require.Equal(t, bannerError, m.banner)

	exp.err = nil
	m = press(t, m, "e")
	assert.True(t, m.Exporting())
	assert.Equal(t, bannerNone, m.banner)
	assert.NotContains(t, m.View(), "disk full")
}
