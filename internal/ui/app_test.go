package ui

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pawsmatch/internal/deck"
	"github.com/five82/pawsmatch/internal/interest"
	"github.com/five82/pawsmatch/internal/prefs"
)

type fakeDeck struct {
	profiles     []deck.Profile
	initializing bool
	disposed     bool
	stats        deck.Stats
	advances     int
}

func (d *fakeDeck) Snapshot() deck.Snapshot {
	return deck.Snapshot{
		Profiles:     slices.Clone(d.profiles),
		Initializing: d.initializing,
		Disposed:     d.disposed,
		Stats:        d.stats,
	}
}

func (d *fakeDeck) Advance() {
	d.advances++
	if len(d.profiles) > 0 {
		d.profiles = d.profiles[1:]
	}
}

type fakeRecorder struct {
	mu       sync.Mutex
	recorded []deck.Profile
	earlier  int // records left by previous sessions
	err      error
}

func (r *fakeRecorder) Record(_ context.Context, p deck.Profile) (interest.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return interest.Record{}, r.err
	}
	r.recorded = append(r.recorded, p)
	return interest.Record{ID: int64(len(r.recorded)), ProfileID: p.ID, Name: p.Name}, nil
}

func (r *fakeRecorder) List(context.Context, int) ([]interest.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]interest.Record, 0, len(r.recorded))
	for i := len(r.recorded) - 1; i >= 0; i-- {
		out = append(out, interest.Record{ID: int64(i + 1), ProfileID: r.recorded[i].ID, Name: r.recorded[i].Name})
	}
	return out, nil
}

func (r *fakeRecorder) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.earlier + len(r.recorded), nil
}

type fakeWarmer struct {
	mu   sync.Mutex
	urls []string
}

func (w *fakeWarmer) Warm(_ context.Context, url string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.urls = append(w.urls, url)
	return nil
}

func (w *fakeWarmer) Warmed(url string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Contains(w.urls, url)
}

func profiles(ids ...string) []deck.Profile {
	out := make([]deck.Profile, len(ids))
	for i, id := range ids {
		out[i] = deck.Profile{ID: id, Name: "Pet " + id, ImageURL: "https://img/" + id + ".jpg", Bio: "line one\nline two"}
	}
	return out
}

func newTestModel(t *testing.T, d *fakeDeck) (Model, *fakeRecorder, *fakeWarmer) {
	t.Helper()
	rec := &fakeRecorder{}
	warm := &fakeWarmer{}
	m := New(Options{
		Deck:      d,
		Recorder:  rec,
		Warmer:    warm,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), rec, warm
}

// run executes cmd and every command batched inside it, feeding the
// resulting messages back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = run(t, m, c)
		}
		return m
	}
	updated, next := m.Update(msg)
	m = updated.(Model)
	switch msg.(type) {
	case warmedMsg, spinner.TickMsg:
		// Terminal messages; the spinner would otherwise tick forever.
		return m
	}
	return run(t, m, next)
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	updated, cmd := m.Update(k)
	return run(t, updated.(Model), cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_RendersEachDeckPhase(t *testing.T) {
	loading, _, _ := newTestModel(t, &fakeDeck{initializing: true})
	if !strings.Contains(loading.View(), "Finding pets") {
		t.Fatalf("loading view missing spinner text")
	}

	empty, _, _ := newTestModel(t, &fakeDeck{})
	if !strings.Contains(empty.View(), "No more pets") {
		t.Fatalf("exhausted view missing message")
	}

	browsing, _, _ := newTestModel(t, &fakeDeck{profiles: profiles("A", "B")})
	view := browsing.View()
	if !strings.Contains(view, "Pet A") || !strings.Contains(view, "next card on its way") {
		t.Fatalf("browsing view missing current card or next cue:\n%s", view)
	}
}

func TestView_FlagsFailingSource(t *testing.T) {
	cases := []struct {
		name     string
		d        *fakeDeck
		want     []string
		unwanted []string
	}{
		{
			name:     "one failure",
			d:        &fakeDeck{stats: deck.Stats{Failed: 1, ConsecutiveFailures: 1}},
			want:     []string{"1 failed", "Every shelter friend"},
			unwanted: []string{"source failing"},
		},
		{
			name: "failing streak",
			d:    &fakeDeck{stats: deck.Stats{Failed: 4, ConsecutiveFailures: failingStreak}},
			want: []string{"source failing (3 in a row)", "not answering", "Out of pets"},
		},
		{
			name: "recovered",
			d:    &fakeDeck{profiles: profiles("A"), stats: deck.Stats{Failed: 5, Fetched: 1}},
			want: []string{"5 failed", "Browsing"},
		},
		{
			name: "closed",
			d:    &fakeDeck{disposed: true},
			want: []string{"Closed"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _, _ := newTestModel(t, tc.d)
			view := m.View()
			for _, w := range tc.want {
				if !strings.Contains(view, w) {
					t.Fatalf("view missing %q:\n%s", w, view)
				}
			}
			for _, u := range tc.unwanted {
				if strings.Contains(view, u) {
					t.Fatalf("view unexpectedly contains %q:\n%s", u, view)
				}
			}
		})
	}
}

func TestView_LookaheadStaysHidden(t *testing.T) {
	d := &fakeDeck{profiles: []deck.Profile{
		{ID: "A", Name: "Biscuit", Breed: "pug", ImageURL: "https://img/A.jpg", Bio: "hi"},
		{ID: "B", Name: "Waffles", Breed: "border collie", ImageURL: "https://img/B.jpg", Bio: "secret bio"},
	}}
	m, _, _ := newTestModel(t, d)
	m.showURLs = true

	for _, stage := range []string{"cold", "warmed"} {
		view := m.View()
		for _, leak := range []string{"Waffles", "border collie", "secret bio", "https://img/B.jpg"} {
			if strings.Contains(view, leak) {
				t.Fatalf("%s view reveals the next card (%q):\n%s", stage, leak, view)
			}
		}
		if !strings.Contains(view, "Biscuit") {
			t.Fatalf("%s view missing the current card", stage)
		}
		m = run(t, m, m.Init())
	}
	if !strings.Contains(m.View(), "next card ready") {
		t.Fatalf("warmed lookahead should show the ready cue:\n%s", m.View())
	}
}

func TestAdopt_RecordsThenAdvancesOnce(t *testing.T) {
	d := &fakeDeck{profiles: profiles("A", "B", "C")}
	m, rec, _ := newTestModel(t, d)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if d.advances != 1 {
		t.Fatalf("advances = %d, want 1", d.advances)
	}
	if len(rec.recorded) != 1 || rec.recorded[0].ID != "A" {
		t.Fatalf("recorded = %+v, want A", rec.recorded)
	}
	if m.overlay != overlayConfirm || m.accepted == nil || m.accepted.ID != "A" {
		t.Fatalf("confirmation overlay not shown for A")
	}
	if m.likedCount != 1 || !strings.Contains(m.status, "Pet A") {
		t.Fatalf("likedCount/status = %d/%q", m.likedCount, m.status)
	}
	if !strings.Contains(m.View(), "You like Pet A") {
		t.Fatalf("confirmation view missing pet name")
	}

	// Keys other than enter/esc don't swipe behind the overlay.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if d.advances != 1 {
		t.Fatalf("swipe behind confirmation advanced the deck")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.overlay != overlayNone || !strings.Contains(m.status, "Visit requested") {
		t.Fatalf("enter should book a visit and close: overlay=%v status=%q", m.overlay, m.status)
	}
	if m.snapshot.Current().ID != "B" {
		t.Fatalf("current = %s, want B", m.snapshot.Current().ID)
	}
}

func TestLikedCounter_IncludesEarlierSessions(t *testing.T) {
	d := &fakeDeck{profiles: profiles("A", "B")}
	m, rec, _ := newTestModel(t, d)
	rec.earlier = 3

	if !strings.Contains(m.View(), "Liked: 0") {
		t.Fatalf("header before the count loads should read 0")
	}
	m = run(t, m, m.Init())
	if m.likedCount != 3 || !strings.Contains(m.View(), "Liked: 3") {
		t.Fatalf("likedCount = %d, want 3 from the store", m.likedCount)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.likedCount != 4 {
		t.Fatalf("likedCount after adopting = %d, want 4", m.likedCount)
	}
}

func TestPass_AdvancesWithoutRecording(t *testing.T) {
	d := &fakeDeck{profiles: profiles("A", "B")}
	m, rec, _ := newTestModel(t, d)

	m = press(t, m, runes("n"))

	if d.advances != 1 || len(rec.recorded) != 0 {
		t.Fatalf("advances/recorded = %d/%d, want 1/0", d.advances, len(rec.recorded))
	}
	if m.overlay != overlayNone || !strings.Contains(m.status, "Passed on Pet A") {
		t.Fatalf("overlay/status = %v/%q", m.overlay, m.status)
	}
}

func TestRecordFailure_StillAdvances(t *testing.T) {
	d := &fakeDeck{profiles: profiles("A", "B")}
	m, rec, _ := newTestModel(t, d)
	rec.err = errors.New("disk full")

	m = press(t, m, runes("y"))

	if d.advances != 1 {
		t.Fatalf("advances = %d, want 1", d.advances)
	}
	if m.statusKind != statusError || !strings.Contains(m.status, "disk full") {
		t.Fatalf("status = %q, want error", m.status)
	}
}

func TestVerdicts_IgnoredWithoutCurrent(t *testing.T) {
	for _, d := range []*fakeDeck{{initializing: true}, {}} {
		m, rec, _ := newTestModel(t, d)
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		if d.advances != 0 || len(rec.recorded) != 0 {
			t.Fatalf("verdict on empty deck advanced=%d recorded=%d", d.advances, len(rec.recorded))
		}
		_ = m
	}
}

func TestRefill_OnlyWhenExhausted(t *testing.T) {
	d := &fakeDeck{}
	m, _, _ := newTestModel(t, d)
	m = press(t, m, runes("r"))
	if d.advances != 1 || !strings.Contains(m.status, "Looking for more") {
		t.Fatalf("refill on exhausted deck: advances=%d status=%q", d.advances, m.status)
	}

	busy := &fakeDeck{profiles: profiles("A")}
	m, _, _ = newTestModel(t, busy)
	press(t, m, runes("r"))
	if busy.advances != 0 {
		t.Fatalf("refill while browsing advanced the deck")
	}

	loading := &fakeDeck{initializing: true}
	m, _, _ = newTestModel(t, loading)
	press(t, m, runes("r"))
	if loading.advances != 0 {
		t.Fatalf("refill while loading advanced the deck")
	}
}

func TestKeyboardDrag_SnapBackAndCommit(t *testing.T) {
	d := &fakeDeck{profiles: profiles("A", "B", "C")}
	m, _, _ := newTestModel(t, d)

	shiftRight := tea.KeyMsg{Type: tea.KeyShiftRight}
	m = press(t, m, shiftRight)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if d.advances != 0 || m.swipe.Active() {
		t.Fatalf("short drag should snap back without advancing")
	}

	for i := 0; i < 2; i++ {
		m = press(t, m, shiftRight)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if d.advances != 0 || m.swipe.Offset() != 0 {
		t.Fatalf("esc should cancel the drag")
	}

	shiftLeft := tea.KeyMsg{Type: tea.KeyShiftLeft}
	for i := 0; i < 3; i++ {
		m = press(t, m, shiftLeft)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if d.advances != 1 || m.overlay != overlayNone {
		t.Fatalf("long left drag should pass: advances=%d overlay=%v", d.advances, m.overlay)
	}
}

func TestMouseDrag_CommitsExactlyOnce(t *testing.T) {
	d := &fakeDeck{profiles: profiles("A", "B", "C")}
	m, rec, _ := newTestModel(t, d)
	clock := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	mouse := func(x int, action tea.MouseAction) {
		t.Helper()
		clock = clock.Add(500 * time.Millisecond)
		updated, cmd := m.Update(tea.MouseMsg{X: x, Action: action, Button: tea.MouseButtonLeft})
		m = run(t, updated.(Model), cmd)
	}

	mouse(50, tea.MouseActionPress)
	mouse(56, tea.MouseActionMotion)
	mouse(64, tea.MouseActionMotion)
	if m.swipe.Offset() != 14 {
		t.Fatalf("offset during drag = %d, want 14", m.swipe.Offset())
	}
	mouse(64, tea.MouseActionRelease)

	if d.advances != 1 || len(rec.recorded) != 1 {
		t.Fatalf("advances/recorded = %d/%d, want 1/1", d.advances, len(rec.recorded))
	}

	// A stray release after the gesture completed does nothing.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	mouse(80, tea.MouseActionRelease)
	if d.advances != 1 {
		t.Fatalf("stray release advanced the deck")
	}
}

func TestWarmNext_OncePerURL(t *testing.T) {
	d := &fakeDeck{profiles: profiles("A", "B", "C")}
	m, _, warm := newTestModel(t, d)

	m = run(t, m, m.Init())
	m = run(t, m, func() tea.Msg { return notifyMsg{closed: true} })
	if len(warm.urls) != 1 || warm.urls[0] != "https://img/B.jpg" {
		t.Fatalf("warmed = %v, want only B", warm.urls)
	}

	m = press(t, m, runes("h"))
	if len(warm.urls) != 2 || warm.urls[1] != "https://img/C.jpg" {
		t.Fatalf("warmed after pass = %v, want B then C", warm.urls)
	}
	if view := m.View(); strings.Contains(view, "Pet C") || !strings.Contains(view, "next card ready") {
		t.Fatalf("view should cue the warmed next card without naming it:\n%s", view)
	}
}

func TestOverlays_LikesAndHelp(t *testing.T) {
	d := &fakeDeck{profiles: profiles("A", "B", "C")}
	m, _, _ := newTestModel(t, d)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	m = press(t, m, runes("L"))
	if m.overlay != overlayLikes || len(m.likes) != 1 || m.likes[0].Name != "Pet A" {
		t.Fatalf("likes overlay = %v likes=%+v", m.overlay, m.likes)
	}
	if !strings.Contains(m.View(), "Liked pets") {
		t.Fatalf("likes view missing title")
	}
	m = press(t, m, runes("L"))
	if m.overlay != overlayNone {
		t.Fatalf("L should toggle the likes overlay closed")
	}

	m = press(t, m, runes("?"))
	if m.overlay != overlayHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = press(t, m, runes("x"))
	if m.overlay != overlayNone {
		t.Fatalf("any key should close help")
	}
}

func TestActivity_ShowsDisabledLogging(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeDeck{profiles: profiles("A")})
	m = press(t, m, runes("a"))
	if m.overlay != overlayActivity || !strings.Contains(m.View(), "Logging is disabled") {
		t.Fatalf("activity overlay without log path:\n%s", m.View())
	}
}

func TestPrefs_ToggleURLsAndThemePersist(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeDeck{profiles: profiles("A")})

	m = press(t, m, runes("u"))
	if !m.showURLs || !strings.Contains(m.View(), "https://img/A.jpg") {
		t.Fatalf("URL not shown after toggle")
	}
	m = press(t, m, runes("T"))
	if m.theme.Name != "Midnight" {
		t.Fatalf("theme = %q, want Midnight", m.theme.Name)
	}

	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load returned error: %v", err)
	}
	if saved.Theme != "Midnight" || !saved.ShowURLs {
		t.Fatalf("saved prefs = %+v", saved)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeDeck{})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}
