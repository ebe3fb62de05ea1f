package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/noticias/internal/logging"
	"github.com/abelbrown/noticias/internal/news"
	"github.com/abelbrown/noticias/internal/normalize"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// AppConfig holds the dependencies of an App.
type AppConfig struct {
	// Context bounds the App's lifetime. Loads finishing after it is
	// cancelled are discarded. Defaults to context.Background().
	Context context.Context

	// Load fetches and normalizes the news. Required for anything to show.
	Load LoadFunc

	// Title is shown in the header.
	Title string

	// ReloadInterval is the minimum gap between manual reloads. Zero means
	// unlimited.
	ReloadInterval time.Duration
}

// lifetime is shared by every copy of an App value so that Close is seen by
// commands already in flight.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// App is the root Bubble Tea model. It is the only owner of the record list
// and the modal Selection; rendering reads them and asks for changes through
// SelectNews and DismissNews messages.
type App struct {
	load    LoadFunc
	title   string
	life    *lifetime
	limiter *rate.Limiter
	log     *log.Logger

	records   []news.Record
	selection Selection
	modal     viewport.Model
	cursor    int
	seq       int // id of the latest load; older results are dropped

	spinner spinner.Model
	loading bool
	err     error
	notice  string
	width   int
	height  int
	ready   bool
}

// NewApp creates an App from cfg.
func NewApp(cfg AppConfig) App {
	parent := cfg.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	limit := rate.Inf
	if cfg.ReloadInterval > 0 {
		limit = rate.Every(cfg.ReloadInterval)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return App{
		load:      cfg.Load,
		title:     cfg.Title,
		life:      &lifetime{ctx: ctx, cancel: cancel},
		limiter:   rate.NewLimiter(limit, 1),
		log:       logging.WithPrefix("ui"),
		selection: Hidden(),
		spinner:   s,
		loading:   cfg.Load != nil,
	}
}

// Init starts the one load of the App's lifetime.
func (a App) Init() tea.Cmd {
	if a.load == nil {
		return nil
	}
	// Count the initial load against the reload limiter.
	a.limiter.Allow()
	return tea.Batch(a.spinner.Tick, a.loadCmd(a.seq))
}

// Close cancels the App's context. In-flight loads are abandoned and their
// results ignored.
func (a App) Close() {
	a.life.cancel()
}

// Alive reports whether Close has not been called.
func (a App) Alive() bool {
	return a.life.ctx.Err() == nil
}

func (a App) loadCmd(seq int) tea.Cmd {
	load, ctx := a.load, a.life.ctx
	return func() tea.Msg {
		records, err := load(ctx)
		return splitLoadResult(seq, records, err)
	}
}

// splitLoadResult separates provider failures from per-record warnings.
func splitLoadResult(seq int, records []news.Record, err error) NewsLoaded {
	if errors.Is(err, ErrFetch) {
		return NewsLoaded{Seq: seq, Err: err}
	}
	return NewsLoaded{Seq: seq, Records: records, Warn: err}
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		if a.selection.Visible {
			a.modal = newModalViewport(*a.selection.Noticia, a.width, a.height)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case NewsLoaded:
		return a.handleLoaded(msg), nil

	case SelectNews:
		return a.selectID(msg.ID), nil

	case DismissNews:
		a.selection = a.selection.Dismiss()
		return a, nil
	}

	return a, nil
}

func (a App) handleLoaded(msg NewsLoaded) App {
	if !a.Alive() {
		a.log.Debug("discarding news load after close", "seq", msg.Seq)
		return a
	}
	if msg.Seq != a.seq {
		a.log.Debug("discarding stale news load", "seq", msg.Seq, "current", a.seq)
		return a
	}
	a.loading = false

	// A failed fetch commits nothing; the previous list stays on screen.
	if msg.Err != nil {
		a.log.Error("news load failed", "err", msg.Err, "kept", len(a.records))
		a.err = msg.Err
		return a
	}

	if msg.Warn != nil {
		for _, e := range unwrapAll(msg.Warn) {
			var recErr *normalize.RecordError
			if errors.As(e, &recErr) {
				a.log.Warn("news record normalized with sentinel", "index", recErr.Index, "id", recErr.ID, "err", recErr.Err)
			} else {
				a.log.Warn("news normalization", "err", e)
			}
		}
	}

	a.err = nil
	a.records = msg.Records
	a.log.Info("news loaded", "count", len(a.records))
	if a.cursor >= len(a.records) {
		a.cursor = max(0, len(a.records)-1)
	}
	a.reconcileSelection()
	return a
}

// reconcileSelection keeps the modal pointing at a record of the current
// list, hiding it when that record is gone.
func (a *App) reconcileSelection() {
	id, ok := a.selection.ID()
	if !ok {
		return
	}
	for _, r := range a.records {
		if r.ID == id {
			a.selection = a.selection.Select(r)
			if a.ready {
				a.modal = newModalViewport(r, a.width, a.height)
			}
			return
		}
	}
	a.selection = a.selection.Dismiss()
}

func (a App) selectID(id news.ID) App {
	for i, r := range a.records {
		if r.ID == id {
			a.cursor = i
			a.selection = a.selection.Select(r)
			a.modal = newModalViewport(r, a.width, a.height)
			return a
		}
	}
	a.log.Debug("select ignored, id not in list", "id", id)
	return a
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.err != nil {
		a.err = nil
	}
	a.notice = ""

	if key.Matches(msg, keys.Quit) {
		a.Close()
		return a, tea.Quit
	}

	if a.selection.Visible {
		switch {
		case key.Matches(msg, keys.Close):
			return a, dismiss
		default:
			var cmd tea.Cmd
			a.modal, cmd = a.modal.Update(msg)
			return a, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.Down):
		if a.cursor < len(a.records)-1 {
			a.cursor++
		}
	case key.Matches(msg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, keys.Home):
		a.cursor = 0
	case key.Matches(msg, keys.End):
		if len(a.records) > 0 {
			a.cursor = len(a.records) - 1
		}
	case key.Matches(msg, keys.Open):
		if a.cursor < len(a.records) {
			return a, requestSelect(a.records[a.cursor].ID)
		}
	case key.Matches(msg, keys.Reload):
		return a.reload()
	}
	return a, nil
}

// reload re-invokes the provider on explicit request.
func (a App) reload() (tea.Model, tea.Cmd) {
	if a.load == nil {
		return a, nil
	}
	if !a.limiter.Allow() {
		a.notice = "Espera un momento antes de recargar"
		return a, nil
	}
	a.seq++
	a.loading = true
	a.log.Debug("reloading news", "seq", a.seq)
	return a, tea.Batch(a.spinner.Tick, a.loadCmd(a.seq))
}

func requestSelect(id news.ID) tea.Cmd {
	return func() tea.Msg { return SelectNews{ID: id} }
}

func dismiss() tea.Msg { return DismissNews{} }

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Cargando..."
	}

	header := Header.Render(a.title)
	status := a.renderStatusBar()
	errorBar := ""
	if a.err != nil {
		errorBar = ErrorStyle.Width(a.width).Render("Error: " + a.err.Error())
	}

	contentHeight := a.height - lipgloss.Height(header) - lipgloss.Height(status)
	if errorBar != "" {
		contentHeight -= lipgloss.Height(errorBar)
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	if a.selection.Visible {
		content = RenderModal(a.selection, a.modal, a.width, contentHeight)
	} else {
		content = a.renderList(contentHeight)
	}
	content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)

	parts := []string{header, content}
	if errorBar != "" {
		parts = append(parts, errorBar)
	}
	parts = append(parts, status)
	return strings.Join(parts, "\n")
}

func (a App) renderList(height int) string {
	if len(a.records) == 0 {
		if a.loading {
			return HelpStyle.Render(a.spinner.View() + " Cargando noticias...")
		}
		return HelpStyle.Render("No hay noticias. Presiona 'r' para recargar.")
	}

	cards := make([]string, len(a.records))
	heights := make([]int, len(a.records))
	for i, r := range a.records {
		cards[i] = RenderCard(r, i == a.cursor, a.width)
		heights[i] = lipgloss.Height(cards[i])
	}
	from, to := visibleRange(heights, a.cursor, height)
	return strings.Join(cards[from:to], "\n")
}

// renderStatusBar renders the bottom bar with position and key hints.
func (a App) renderStatusBar() string {
	var left string
	switch {
	case a.loading:
		left = a.spinner.View() + " Cargando..."
	case a.notice != "":
		left = a.notice
	case len(a.records) > 0:
		left = fmt.Sprintf("%d/%d", a.cursor+1, len(a.records))
	default:
		left = "0/0"
	}

	bindings := []key.Binding{keys.Down, keys.Up, keys.Open, keys.Reload, keys.Quit}
	if a.selection.Visible {
		bindings = []key.Binding{keys.Close, keys.Quit}
	}
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, StatusBarKey.Render(h.Key)+StatusBarText.Render(":"+h.Desc))
	}
	right := strings.Join(hints, " ")

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return StatusBar.Width(a.width).Render(left + strings.Repeat(" ", padding) + right)
}

// unwrapAll flattens an errors.Join result.
func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Records returns the current records (for testing).
func (a App) Records() []news.Record {
	return a.records
}

// Selection returns the modal state (for testing).
func (a App) Selection() Selection {
	return a.selection
}

// Loading reports whether a load is in flight.
func (a App) Loading() bool {
	return a.loading
}

// Err returns the last provider error still on screen.
func (a App) Err() error {
	return a.err
}
