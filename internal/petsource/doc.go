// Package petsource supplies candidate profiles to the deck.
//
// # Overview
//
// A profile is a pet drawn at random from a bio pool joined with a random dog
// photo from the dog.ceo API:
//
//   - pool.go: loads and validates the JSON pool (built-in pets.json by default)
//   - picker.go: seeded randomness shared by every draw
//   - client.go: HTTP client for the image API, plus image warming
//   - provider.go: deck.Source implementation tying the three together
//
// # Client Usage
//
//	pool, err := petsource.LoadPool("")
//	images, err := petsource.NewImageClient(petsource.DefaultImageAPI)
//	provider, err := petsource.NewProvider(pool, petsource.NewPicker(0), images,
//		petsource.ProviderOptions{FallbackImage: petsource.DefaultFallbackImage})
//	profile, err := provider.FetchOne(ctx)
//
// # Error Handling
//
// With a fallback image configured the provider only fails when the context
// is done; API errors are logged and the fallback photo is used. Without one,
// image errors are returned so the deck counts them as failed fetches.
//
// Duplicate pets across draws are possible; the pool is sampled with
// replacement.
package petsource
