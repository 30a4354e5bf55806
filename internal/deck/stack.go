package deck

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	// DefaultBufferSize is the number of candidates fetched on start.
	DefaultBufferSize = 3

	// DefaultFetchTimeout bounds a single source call.
	DefaultFetchTimeout = 10 * time.Second
)

// Options configure a Stack.
type Options struct {
	BufferSize   int           // zero or negative uses DefaultBufferSize
	FetchTimeout time.Duration // zero uses DefaultFetchTimeout; negative disables the timeout
	Logger       *zap.Logger   // nil discards
}

// Stack is a continuously replenished deck of candidates. The front of the
// buffer is the current candidate and the second element is the lookahead.
type Stack struct {
	source  Source
	size    int
	timeout time.Duration
	logger  *zap.Logger

	startOnce sync.Once
	wg        conc.WaitGroup
	changes   chan struct{}

	mu           sync.Mutex
	ctx          context.Context
	buffer       []Profile
	initializing bool
	disposed     bool
	inFlight     int
	stats        Stats
}

// New builds an idle Stack. Nothing is fetched until Start is called.
func New(source Source, opts Options) *Stack {
	size := opts.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultFetchTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stack{
		source:       source,
		size:         size,
		timeout:      timeout,
		logger:       logger,
		changes:      make(chan struct{}, 1),
		buffer:       make([]Profile, 0, size),
		initializing: true,
	}
}

// BufferSize reports the configured initial fill.
func (s *Stack) BufferSize() int {
	return s.size
}

// Start issues the initial burst of BufferSize concurrent fetches and returns
// immediately. Only the first call has any effect; repeated activation (a
// re-mounted view, a duplicated signal) is ignored.
//
// ctx is used for every fetch the stack issues, including the ones triggered
// later by Advance.
func (s *Stack) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		if ctx == nil {
			ctx = context.Background()
		}
		s.mu.Lock()
		s.ctx = ctx
		s.inFlight += s.size
		s.mu.Unlock()

		s.logger.Debug("initial fill started", zap.Int("buffer_size", s.size))
		s.wg.Go(func() { s.fill(ctx) })
	})
}

// Advance drops the current candidate and schedules one replacement fetch in
// the background. The drop happens before Advance returns; the replacement is
// appended to the tail whenever it resolves. Advancing an empty deck only
// schedules the fetch.
func (s *Stack) Advance() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	if len(s.buffer) > 0 {
		s.buffer = slices.Delete(s.buffer, 0, 1)
		s.stats.Consumed++
	}
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	s.inFlight++
	s.mu.Unlock()
	s.notify()

	s.wg.Go(func() { s.refill(ctx) })
}

// Close disposes the session. Fetches already in flight are left to finish
// but their results are discarded.
func (s *Stack) Close() {
	s.mu.Lock()
	s.disposed = true
	s.mu.Unlock()
	s.notify()
}

// Wait blocks until every fetch goroutine started so far has returned.
func (s *Stack) Wait() {
	s.wg.Wait()
}

// Changes signals after every mutation. Signals coalesce, so readers should
// take a fresh Snapshot on each receive rather than count them.
func (s *Stack) Changes() <-chan struct{} {
	return s.changes
}

// Snapshot returns a copy of the current deck state.
func (s *Stack) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Profiles:     slices.Clone(s.buffer),
		Initializing: s.initializing && len(s.buffer) == 0,
		Disposed:     s.disposed,
		InFlight:     s.inFlight,
		Stats:        s.stats,
	}
}

// Current returns a copy of the front candidate, or nil.
func (s *Stack) Current() *Profile {
	return s.Snapshot().Current()
}

// Next returns a copy of the lookahead candidate, or nil.
func (s *Stack) Next() *Profile {
	return s.Snapshot().Next()
}

// Initializing reports whether the first fill has yet to settle.
func (s *Stack) Initializing() bool {
	return s.Snapshot().Initializing
}

func (s *Stack) fill(ctx context.Context) {
	var (
		mu      sync.Mutex
		settled = make([]Profile, 0, s.size)
	)

	p := pool.New()
	for slot := 0; slot < s.size; slot++ {
		p.Go(func() {
			profile, err := s.fetch(ctx)

			s.mu.Lock()
			s.inFlight--
			s.recordLocked(err)
			s.mu.Unlock()

			if err != nil {
				s.logger.Warn("initial fetch failed", zap.Int("slot", slot), zap.Error(err))
				return
			}
			mu.Lock()
			settled = append(settled, profile)
			mu.Unlock()
		})
	}
	p.Wait()

	s.mu.Lock()
	s.initializing = false
	disposed := s.disposed
	if !disposed {
		s.buffer = append(s.buffer, settled...)
	}
	s.mu.Unlock()

	if disposed {
		s.logger.Debug("initial fill discarded after close", zap.Int("settled", len(settled)))
		return
	}
	s.logger.Info("initial fill settled", zap.Int("filled", len(settled)), zap.Int("buffer_size", s.size))
	s.notify()
}

func (s *Stack) refill(ctx context.Context) {
	profile, err := s.fetch(ctx)

	s.mu.Lock()
	s.inFlight--
	s.recordLocked(err)
	disposed := s.disposed
	if err == nil && !disposed {
		// Append to whatever the buffer is now, not to the one seen before
		// the fetch started.
		s.buffer = append(s.buffer, profile)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("replenish fetch failed", zap.Error(err))
	}
	if disposed {
		return
	}
	s.notify()
}

func (s *Stack) fetch(ctx context.Context) (profile Profile, err error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if r := panics.Try(func() { profile, err = s.source.FetchOne(ctx) }); r != nil {
		return Profile{}, r.AsError()
	}
	return profile, err
}

// recordLocked updates counters; s.mu must be held.
func (s *Stack) recordLocked(err error) {
	if err != nil {
		s.stats.Failed++
		s.stats.ConsecutiveFailures++
		return
	}
	s.stats.Fetched++
	s.stats.ConsecutiveFailures = 0
}

func (s *Stack) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
