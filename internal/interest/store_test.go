package interest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/pawsmatch/internal/deck"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndListNewestFirst(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for _, p := range []deck.Profile{
		{ID: "1", Name: "Max", Breed: "pug", ImageURL: "https://img/1.jpg"},
		{ID: "2", Name: "Luna", ImageURL: "https://img/2.jpg"},
		{ID: "1", Name: "Max", Breed: "pug", ImageURL: "https://img/3.jpg"},
	} {
		if _, err := s.Record(ctx, p); err != nil {
			t.Fatalf("Record(%s) returned error: %v", p.ID, err)
		}
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("Count = %d, want 3 (duplicates are kept)", n)
	}

	got, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List(2) returned %d records", len(got))
	}
	if got[0].ImageURL != "https://img/3.jpg" || got[1].Name != "Luna" {
		t.Fatalf("List order = %+v, want newest first", got)
	}
	if !got[0].RecordedAt.Equal(base.Add(3 * time.Minute)) {
		t.Fatalf("RecordedAt = %v, want %v", got[0].RecordedAt, base.Add(3*time.Minute))
	}
	if got[1].Breed != "" || got[0].Breed != "pug" {
		t.Fatalf("breeds = %q / %q", got[0].Breed, got[1].Breed)
	}

	all, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List(0) returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List(0) returned %d records, want all 3", len(all))
	}
}

func TestStore_RecordRequiresID(t *testing.T) {
	s := openMemory(t)
	if _, err := s.Record(context.Background(), deck.Profile{Name: "ghost"}); err == nil ||
		!strings.Contains(err.Error(), "no id") {
		t.Fatalf("Record error = %v, want missing id", err)
	}
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "interest.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	rec, err := s.Record(ctx, deck.Profile{ID: "9", Name: "Coco", ImageURL: "https://img/9.jpg"})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.ID == 0 {
		t.Fatalf("Record ID = 0, want autoincrement id")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.List(ctx, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Coco" || got[0].ID != rec.ID {
		t.Fatalf("reopened records = %+v", got)
	}
}

func TestStore_CloseNil(t *testing.T) {
	var s *Store
	if err := s.Close(); err != nil {
		t.Fatalf("nil Close returned error: %v", err)
	}
}
