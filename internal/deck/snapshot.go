package deck

// Phase is the mutually exclusive state a renderer should show.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseExhausted
	PhaseBrowsing
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseExhausted:
		return "exhausted"
	case PhaseBrowsing:
		return "browsing"
	default:
		return "unknown"
	}
}

// Stats counts source outcomes over the life of a Stack.
type Stats struct {
	Fetched             int
	Failed              int
	Consumed            int
	ConsecutiveFailures int
}

// Snapshot is an immutable view of the deck at a point in time.
type Snapshot struct {
	Profiles     []Profile
	Initializing bool
	Disposed     bool
	InFlight     int
	Stats        Stats
}

// Current returns the front candidate, or nil when the deck is empty.
func (s Snapshot) Current() *Profile {
	return s.at(0)
}

// Next returns the lookahead candidate, or nil.
func (s Snapshot) Next() *Profile {
	return s.at(1)
}

// Len reports how many candidates are buffered.
func (s Snapshot) Len() int {
	return len(s.Profiles)
}

// Exhausted is true once the first fill has settled and nothing is left.
func (s Snapshot) Exhausted() bool {
	return !s.Initializing && len(s.Profiles) == 0
}

// Phase classifies the snapshot for rendering.
func (s Snapshot) Phase() Phase {
	switch {
	case s.Initializing:
		return PhaseLoading
	case len(s.Profiles) == 0:
		return PhaseExhausted
	default:
		return PhaseBrowsing
	}
}

func (s Snapshot) at(i int) *Profile {
	if i >= len(s.Profiles) {
		return nil
	}
	p := s.Profiles[i]
	return &p
}
