package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/NordCoder/testerdash/internal/services/dashboard"
)

// Executor runs a fetch against the backend. It must not touch the session.
type Executor interface {
	Execute(ctx context.Context, f dashboard.Fetch) dashboard.Completion
}

type screen int

const (
	screenTests screen = iota
	screenTest
)

type tab int

const (
	tabResults tab = iota
	tabDowntimes
	tabRange
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabDowntimes:
		return "Downtimes"
	case tabRange:
		return "Range"
	}
	return "Results"
}

type completionMsg struct {
	dashboard.Completion
}

type refreshTickMsg struct{}

type Options struct {
	FailuresOnly bool
	InitialTest  string
	// RefreshEvery reloads the current screen periodically; zero disables it.
	RefreshEvery time.Duration
	Now          func() time.Time
}

// Model is the bubbletea program state. All session mutations happen in
// Update; fetches run as commands and report back as completionMsg.
type Model struct {
	ctx  context.Context
	exec Executor
	log  *zap.Logger
	now  func() time.Time

	sess         *dashboard.Session
	initial      string
	refreshEvery time.Duration

	screen     screen
	tab        tab
	testCursor int
	rowCursor  int
	endpoint   dashboard.Endpoint
	scroll     int

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width, height int
}

func New(ctx context.Context, exec Executor, log *zap.Logger, opts Options) Model {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle.Padding(0)

	m := Model{
		ctx:     ctx,
		exec:    exec,
		log:     log,
		now:     opts.Now,
		sess:    dashboard.NewSession(opts.FailuresOnly),
		initial: opts.InitialTest,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeys(),

		refreshEvery: opts.RefreshEvery,
	}
	if m.initial != "" {
		m.screen = screenTest
	}
	return m
}

func (m Model) Init() tea.Cmd {
	fetches := m.sess.Start()
	if m.initial != "" {
		fetches = append(fetches, m.sess.Navigate(m.initial)...)
	}
	return tea.Batch(m.spinner.Tick, m.fetch(fetches), m.refreshTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case completionMsg:
		m.complete(msg.Completion)
		return m, nil

	case refreshTickMsg:
		return m, tea.Batch(m.fetch(m.sess.Refresh()), m.refreshTick())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// Session exposes the dashboard state, mainly for tests.
func (m Model) Session() *dashboard.Session { return m.sess }

func (m *Model) complete(c dashboard.Completion) {
	if !m.sess.Complete(c) {
		dashboard.ObserveStale(c.Kind)
		m.log.Debug("stale completion discarded",
			zap.Stringer("kind", c.Kind),
			zap.Uint64("seq", c.Seq),
			zap.String("test", c.Test),
		)
		return
	}
	switch c.Kind {
	case dashboard.FetchTests:
		m.testCursor = clamp(m.testCursor, len(m.sess.Tests()))
	case dashboard.FetchDowntimes:
		m.rowCursor = clamp(m.rowCursor, m.sess.Table().Len())
	case dashboard.FetchFeed:
		m.scroll = 0
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetch(m.sess.Refresh())
	}

	if m.screen == screenTests {
		return m.handleTestsKey(msg)
	}
	return m.handleTestKey(msg)
}

func (m Model) handleTestsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tests := m.sess.Tests()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.testCursor = clamp(m.testCursor-1, len(tests))
	case key.Matches(msg, m.keys.Down):
		m.testCursor = clamp(m.testCursor+1, len(tests))
	case key.Matches(msg, m.keys.Open):
		if len(tests) == 0 {
			return m, nil
		}
		return m.open(tests[m.testCursor].Name)
	}
	return m, nil
}

func (m Model) handleTestKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.sess.Back()
		m.screen = screenTests
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.tab = m.nextTab(1)
		m.scroll = 0
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = m.nextTab(-1)
		m.scroll = 0
		return m, nil
	case key.Matches(msg, m.keys.Failures):
		return m, m.fetch(m.sess.ToggleFailuresOnly())
	}

	if m.tab != tabDowntimes {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.scroll = max(m.scroll-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.scroll++
		}
		return m, nil
	}

	rows := m.sess.Table().Len()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.rowCursor = clamp(m.rowCursor-1, rows)
	case key.Matches(msg, m.keys.Down):
		m.rowCursor = clamp(m.rowCursor+1, rows)
	case key.Matches(msg, m.keys.Left):
		m.endpoint = dashboard.StartEndpoint
	case key.Matches(msg, m.keys.Right):
		m.endpoint = dashboard.EndEndpoint
	case key.Matches(msg, m.keys.Toggle):
		return m, m.fetch(m.sess.ToggleEndpoint(m.rowCursor, m.endpoint))
	}
	return m, nil
}

func (m Model) open(name string) (tea.Model, tea.Cmd) {
	m.screen = screenTest
	m.tab = tabResults
	m.rowCursor, m.scroll = 0, 0
	m.endpoint = dashboard.StartEndpoint
	return m, m.fetch(m.sess.Navigate(name))
}

// nextTab cycles tabs, skipping Range until a pair is selected.
func (m Model) nextTab(step int) tab {
	t := m.tab
	for i := 0; i < int(tabCount); i++ {
		t = (t + tab(step) + tabCount) % tabCount
		if t != tabRange || m.sess.Range().Available() {
			return t
		}
	}
	return m.tab
}

func (m Model) fetch(fetches []dashboard.Fetch) tea.Cmd {
	if len(fetches) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(fetches))
	for _, f := range fetches {
		cmds = append(cmds, fetchCmd(m.ctx, m.exec, f))
	}
	return tea.Batch(cmds...)
}

func (m Model) refreshTick() tea.Cmd {
	if m.refreshEvery <= 0 {
		return nil
	}
	return tea.Tick(m.refreshEvery, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

func fetchCmd(ctx context.Context, exec Executor, f dashboard.Fetch) tea.Cmd {
	return func() tea.Msg {
		return completionMsg{exec.Execute(ctx, f)}
	}
}

func clamp(v, n int) int {
	if n <= 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
