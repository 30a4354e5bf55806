package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pawsmatch/internal/deck"
	"github.com/five82/pawsmatch/internal/interest"
	"github.com/five82/pawsmatch/internal/logtail"
)

// Messages

type notifyMsg struct{ closed bool }

type snapshotMsg deck.Snapshot

type warmedMsg struct {
	url string
	err error
}

type recordedMsg struct {
	name   string
	record interest.Record
	err    error
}

type likeCountMsg struct {
	count int
	err   error
}

type likesMsg struct {
	records []interest.Record
	err     error
}

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func waitForNotify(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-ch
		return notifyMsg{closed: !ok}
	}
}

func fetchSnapshotCmd(d Deck) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(d.Snapshot())
	}
}

func warmCmd(ctx context.Context, w Warmer, url string) tea.Cmd {
	return func() tea.Msg {
		return warmedMsg{url: url, err: w.Warm(ctx, url)}
	}
}

func recordCmd(ctx context.Context, r Recorder, p deck.Profile) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		rec, err := r.Record(ctx, p)
		return recordedMsg{name: p.Name, record: rec, err: err}
	}
}

func loadLikesCmd(ctx context.Context, r Recorder) tea.Cmd {
	return func() tea.Msg {
		if r == nil {
			return likesMsg{err: errors.New("interest store unavailable")}
		}
		records, err := r.List(ctx, likesLimit)
		return likesMsg{records: records, err: err}
	}
}

func countLikesCmd(ctx context.Context, r Recorder) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := r.Count(ctx)
		return likeCountMsg{count: n, err: err}
	}
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		entries, err := logtail.Tail(path, activityLines)
		return activityMsg{entries: entries, err: err}
	}
}
