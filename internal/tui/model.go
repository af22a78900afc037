// Package tui provides the terminal user interface for edulearn.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/edulearn/internal/config"
	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/courseapi"
	"github.com/javiermolinar/edulearn/internal/httpclient"
	"github.com/javiermolinar/edulearn/internal/logger"
	"github.com/javiermolinar/edulearn/internal/tui/commands"
	"github.com/javiermolinar/edulearn/internal/tui/theme"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

// Default terminal size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Grid spacing between cards.
const gridGap = 2

// Model is the catalog view controller. It owns the load state and the
// single fetch issued per activation.
type Model struct {
	// Dependencies
	src      course.Lister
	endpoint string
	copyText func(string) error

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Fetch lifecycle
	life        *lifecycle
	state       course.LoadState
	payloadSize int

	// Components
	spinner  spinner.Model
	viewport viewport.Model

	// Terminal dimensions and layout
	width  int
	height int
	year   int
	layout LayoutCache

	// Cached render data
	cards *view.CardCache

	// Messages
	statusMsg  string    // Temporary status message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) {
		if fn != nil {
			m.copyText = fn
		}
	}
}

// WithYear sets the year shown in the footer notice.
func WithYear(year int) ModelOption {
	return func(m *Model) {
		m.year = year
	}
}

// WithEndpoint sets the endpoint label used in status and logs.
func WithEndpoint(endpoint string) ModelOption {
	return func(m *Model) {
		m.endpoint = endpoint
	}
}

// New creates a new catalog model reading from src.
func New(src course.Lister, cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	m := Model{
		src:      src,
		endpoint: cfg.Catalog.Endpoint,
		copyText: clipboard.WriteAll,
		theme:    t,
		styles:   styles,
		life:     &lifecycle{},
		state:    course.Loading{},
		spinner:  sp,
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
		year:     time.Now().Year(),
		cards:    view.NewCardCache(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.layout = m.buildLayoutCache(m.width, m.height)
	m.syncViewport()
	return m
}

// Init activates the view.
func (m Model) Init() tea.Cmd {
	_, cmd := m.Activate()
	return cmd
}

// Activate resets the view to Loading and issues the single fetch for a
// new activation. Results from earlier activations are ignored.
func (m Model) Activate() (Model, tea.Cmd) {
	ctx, activation := m.life.start()
	m.state = course.Loading{}
	m.payloadSize = 0
	m.cards.Reset()
	m.viewport.GotoTop()
	m.syncViewport()
	LogActivation(activation, m.endpoint)

	return m, tea.Batch(
		m.spinner.Tick,
		commands.FetchCourses(ctx, m.src, activation),
	)
}

// Deactivate cancels the in-flight fetch. Any result that arrives
// afterwards is ignored.
func (m Model) Deactivate() {
	if !m.life.active {
		return
	}
	LogDeactivation(m.life.activation, m.state)
	m.life.stop()
	m.cards.Reset()
}

// State returns the current load state.
func (m Model) State() course.LoadState {
	return m.state
}

// Active reports whether the view is active.
func (m Model) Active() bool {
	return m.life.active
}

// Activation returns the current activation number.
func (m Model) Activation() int {
	return m.life.activation
}

// settle applies the outcome of a fetch if it belongs to the current,
// active, still-loading lifecycle.
func (m Model) settle(activation int, next course.LoadState, size int) Model {
	if ok, reason := m.life.accepts(activation); !ok {
		LogIgnoredResult(activation, m.life.activation, reason)
		return m
	}
	if course.Settled(m.state) {
		LogIgnoredResult(activation, m.life.activation, "already settled")
		return m
	}

	from := m.state
	m.state = next
	m.payloadSize = size
	m.life.settle()
	LogStateChange(activation, from, next)
	m.syncViewport()
	return m
}

// Run starts the TUI against the configured catalog endpoint.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if cfg.Log.Path != "" {
		cleanup, err := logger.Setup(logger.Config{Path: cfg.Log.Path, Debug: debug})
		if err != nil {
			return fmt.Errorf("setting up logger: %w", err)
		}
		defer func() { _ = cleanup() }()
	}

	httpCfg := httpclient.DefaultConfig().WithTimeout(cfg.FetchTimeout())
	src := courseapi.New(cfg.Catalog.Endpoint, courseapi.WithHTTPClient(httpclient.New(httpCfg)))

	return RunWithSource(src, cfg)
}

// RunWithSource starts the TUI reading from src.
func RunWithSource(src course.Lister, cfg *config.Config) error {
	model := New(src, cfg)

	p := tea.NewProgram(wrapSafe(model, logger.L()), tea.WithAltScreen())
	finalModel, err := p.Run()
	if sm, ok := finalModel.(safeModel); ok {
		sm.m.Deactivate()
	} else {
		model.Deactivate()
	}
	return err
}
