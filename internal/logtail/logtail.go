package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/five82/pawsmatch/internal/logging"
)

// Entry is one parsed line of the PawsMatch log.
type Entry struct {
	Time    time.Time
	Level   string
	Caller  string
	Message string
	Fields  string
	Raw     string
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, 0, maxLines)
	next := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) < maxLines {
			ring = append(ring, scanner.Text())
			continue
		}
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	return append(ring[next:], ring[:next]...), nil
}

// Tail reads the last maxLines of the log and parses each one.
func Tail(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse splits a console-encoded zap line into its columns. Lines that do not
// match (stack traces, foreign output) come back with only Message and Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line, Message: line}
	parts := strings.SplitN(line, logging.Separator, 5)
	if len(parts) < 4 {
		return entry
	}
	ts, err := time.ParseInLocation(logging.TimeLayout, parts[0], time.Local)
	if err != nil {
		return entry
	}
	entry.Time = ts
	entry.Level = strings.TrimSpace(parts[1])
	entry.Caller = strings.TrimSpace(parts[2])
	entry.Message = strings.TrimSpace(parts[3])
	if len(parts) == 5 {
		entry.Fields = strings.TrimSpace(parts[4])
	}
	return entry
}

// Summary renders an entry on one line for the activity view.
func (e Entry) Summary() string {
	if e.Time.IsZero() {
		return e.Raw
	}
	var b strings.Builder
	b.WriteString(e.Time.Format("15:04:05"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%-5s", e.Level))
	b.WriteString(" ")
	b.WriteString(e.Message)
	if e.Fields != "" {
		b.WriteString(" ")
		b.WriteString(e.Fields)
	}
	return b.String()
}
