package deck

import "context"

// Profile is one browsable candidate. ID and ImageURL are what the deck
// relies on; the other fields are payload carried through untouched.
type Profile struct {
	ID       string
	ImageURL string
	Name     string
	Bio      string
	Breed    string
}

// Source yields one candidate per call. Implementations may be slow and may
// fail; the deck tolerates both.
type Source interface {
	FetchOne(ctx context.Context) (Profile, error)
}

// SourceFunc adapts an ordinary function to Source.
type SourceFunc func(ctx context.Context) (Profile, error)

// FetchOne calls f(ctx).
func (f SourceFunc) FetchOne(ctx context.Context) (Profile, error) {
	return f(ctx)
}
