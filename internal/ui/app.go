package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/pawsmatch/internal/deck"
	"github.com/five82/pawsmatch/internal/interest"
	"github.com/five82/pawsmatch/internal/logtail"
	"github.com/five82/pawsmatch/internal/prefs"
)

// overlay is the view drawn over the deck, if any.
type overlay int

const (
	overlayNone overlay = iota
	overlayConfirm
	overlayLikes
	overlayActivity
	overlayHelp
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

const (
	likesLimit    = 50
	activityLines = 200
)

// Deck is the part of the swipe stack the UI drives.
type Deck interface {
	Snapshot() deck.Snapshot
	Advance()
}

// Warmer preloads images so the next card appears without a wait.
type Warmer interface {
	Warm(ctx context.Context, url string) error
	Warmed(url string) bool
}

// Recorder stores and lists adoption interest.
type Recorder interface {
	Record(ctx context.Context, profile deck.Profile) (interest.Record, error)
	List(ctx context.Context, limit int) ([]interest.Record, error)
	Count(ctx context.Context) (int, error)
}

// Options configures the UI.
type Options struct {
	Context  context.Context
	Deck     Deck
	Notify   <-chan struct{} // signalled when the deck changes
	Warmer   Warmer
	Recorder Recorder
	LogPath  string
	Logger   *zap.Logger

	ThemeName string
	ShowURLs  bool
	PrefsPath string

	SwipeThreshold int
	SwipeVelocity  float64
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	deck      Deck
	notify    <-chan struct{}
	warmer    Warmer
	recorder  Recorder
	logPath   string
	prefsPath string
	logger    *zap.Logger
	keys      keyMap
	now       func() time.Time

	// UI state
	theme    Theme
	showURLs bool
	width    int
	height   int
	ready    bool
	overlay  overlay
	spinner  spinner.Model
	swipe    SwipeTracker
	viewport viewport.Model

	// Data state
	snapshot   deck.Snapshot
	warmedURL  string
	accepted   *deck.Profile
	likes      []interest.Record
	likedCount int
	activity   []logtail.Entry

	status     string
	statusKind statusKind
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)
	m := Model{
		ctx:       ctx,
		deck:      opts.Deck,
		notify:    opts.Notify,
		warmer:    opts.Warmer,
		recorder:  opts.Recorder,
		logPath:   opts.LogPath,
		prefsPath: prefsPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		now:       time.Now,
		theme:     theme,
		showURLs:  opts.ShowURLs,
		swipe:     NewSwipeTracker(opts.SwipeThreshold, opts.SwipeVelocity),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
		),
	}
	if m.deck != nil {
		m.snapshot = m.deck.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.deck != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.deck))
	}
	if m.notify != nil {
		cmds = append(cmds, waitForNotify(m.notify))
	}
	cmds = append(cmds, countLikesCmd(m.ctx, m.recorder))
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.overlayWidth(), m.overlayHeight())
		} else {
			m.viewport.Width = m.overlayWidth()
			m.viewport.Height = m.overlayHeight()
		}
		m.ready = true
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notifyMsg:
		var cmds []tea.Cmd
		if m.deck != nil {
			m.snapshot = m.deck.Snapshot()
			cmds = append(cmds, m.warmNext())
		}
		if m.overlay == overlayActivity {
			cmds = append(cmds, loadActivityCmd(m.logPath))
		}
		if !msg.closed {
			cmds = append(cmds, waitForNotify(m.notify))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = deck.Snapshot(msg)
		return m, m.warmNext()

	case warmedMsg:
		if msg.err != nil {
			m.logger.Debug("image warm failed", zap.String("url", msg.url), zap.Error(msg.err))
			if m.warmedURL == msg.url {
				m.warmedURL = ""
			}
		}
		return m, nil

	case recordedMsg:
		if msg.err != nil {
			m.logger.Warn("record interest failed", zap.String("pet", msg.name), zap.Error(msg.err))
			m.setStatus(statusError, "Could not save interest in "+msg.name+": "+msg.err.Error())
			return m, nil
		}
		m.likedCount++
		m.setStatus(statusSuccess, "Saved interest in "+msg.record.Name)
		return m, countLikesCmd(m.ctx, m.recorder)

	case likeCountMsg:
		if msg.err != nil {
			m.logger.Warn("count interest failed", zap.Error(msg.err))
			return m, nil
		}
		m.likedCount = msg.count
		return m, nil

	case likesMsg:
		if msg.err != nil {
			m.setStatus(statusError, "Could not load liked pets: "+msg.err.Error())
		}
		m.likes = msg.records
		m.refreshViewport()
		return m, nil

	case activityMsg:
		if msg.err != nil {
			m.setStatus(statusError, "Could not read activity log: "+msg.err.Error())
		}
		m.activity = msg.entries
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.overlay == overlayHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.overlay == overlayHelp {
		m.overlay = overlayNone
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayConfirm:
		return m.handleConfirmKey(msg)
	case overlayLikes, overlayActivity:
		return m.handleListKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Adopt):
		return m.commit(VerdictAdopt)

	case key.Matches(msg, m.keys.Pass):
		return m.commit(VerdictPass)

	case key.Matches(msg, m.keys.NudgeRight):
		if m.snapshot.Current() != nil {
			m.swipe.Nudge(nudgeStep)
		}
		return m, nil

	case key.Matches(msg, m.keys.NudgeLeft):
		if m.snapshot.Current() != nil {
			m.swipe.Nudge(-nudgeStep)
		}
		return m, nil

	case key.Matches(msg, m.keys.Release):
		return m.commit(m.swipe.Settle())

	case key.Matches(msg, m.keys.Escape):
		m.swipe.Cancel()
		return m, nil

	case key.Matches(msg, m.keys.Refill):
		return m.refill()

	case key.Matches(msg, m.keys.Likes):
		m.overlay = overlayLikes
		m.refreshViewport()
		return m, loadLikesCmd(m.ctx, m.recorder)

	case key.Matches(msg, m.keys.Activity):
		m.overlay = overlayActivity
		m.refreshViewport()
		return m, loadActivityCmd(m.logPath)

	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil

	case key.Matches(msg, m.keys.ToggleURLs):
		m.showURLs = !m.showURLs
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.savePrefs()
		return m, nil
	}

	return m, nil
}

// handleConfirmKey handles the adoption confirmation overlay.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Release):
		if m.accepted != nil {
			m.logger.Info("visit requested", zap.String("pet_id", m.accepted.ID), zap.String("pet", m.accepted.Name))
			m.setStatus(statusSuccess, "Visit requested for "+m.accepted.Name+". The shelter will be in touch.")
		}
		m.overlay = overlayNone
	case key.Matches(msg, m.keys.Escape):
		m.overlay = overlayNone
	}
	return m, nil
}

// handleListKey handles the likes and activity overlays.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape),
		m.overlay == overlayLikes && key.Matches(msg, m.keys.Likes),
		m.overlay == overlayActivity && key.Matches(msg, m.keys.Activity):
		m.overlay = overlayNone
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	}
	return m, nil
}

// handleMouse interprets left-button drags on the card.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay == overlayLikes || m.overlay == overlayActivity {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if m.overlay != overlayNone || m.snapshot.Current() == nil {
		return m, nil
	}

	now := m.now()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Press(msg.X, now)
		}
	case tea.MouseActionMotion:
		m.swipe.Move(msg.X, now)
	case tea.MouseActionRelease:
		return m.commit(m.swipe.Release(msg.X, now))
	}
	return m, nil
}

// commit applies a verdict to the current card; either verdict advances
// exactly once. Adopting captures the profile before the drop, and the
// record command built from that copy runs after Advance returns.
func (m Model) commit(v Verdict) (tea.Model, tea.Cmd) {
	m.swipe.Cancel()
	current := m.snapshot.Current()
	if v == VerdictNone || current == nil || m.deck == nil {
		return m, nil
	}

	var cmds []tea.Cmd
	switch v {
	case VerdictAdopt:
		cmds = append(cmds, recordCmd(m.ctx, m.recorder, *current))
		m.accepted = current
		m.overlay = overlayConfirm
		m.logger.Info("adopt", zap.String("pet_id", current.ID), zap.String("pet", current.Name))
	case VerdictPass:
		m.setStatus(statusInfo, "Passed on "+current.Name)
		m.logger.Info("pass", zap.String("pet_id", current.ID), zap.String("pet", current.Name))
	}

	m.deck.Advance()
	m.snapshot = m.deck.Snapshot()
	cmds = append(cmds, m.warmNext())
	return m, tea.Batch(cmds...)
}

// refill asks an exhausted deck for another candidate.
func (m Model) refill() (tea.Model, tea.Cmd) {
	if m.deck == nil || !m.snapshot.Exhausted() {
		return m, nil
	}
	m.deck.Advance()
	m.snapshot = m.deck.Snapshot()
	m.setStatus(statusInfo, "Looking for more pets...")
	return m, nil
}

// warmNext preloads the lookahead image once per URL.
func (m *Model) warmNext() tea.Cmd {
	next := m.snapshot.Next()
	if next == nil || m.warmer == nil || next.ImageURL == "" || next.ImageURL == m.warmedURL {
		return nil
	}
	m.warmedURL = next.ImageURL
	return warmCmd(m.ctx, m.warmer, next.ImageURL)
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *Model) savePrefs() {
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, ShowURLs: m.showURLs})
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
