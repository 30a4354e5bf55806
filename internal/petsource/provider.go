package petsource

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/pawsmatch/internal/deck"
)

// DefaultFallbackImage is shown when the image API cannot be reached.
const DefaultFallbackImage = "https://images.dog.ceo/breeds/retriever-golden/n02099601_3004.jpg"

// Ensure Provider implements deck.Source at compile time.
var _ deck.Source = (*Provider)(nil)

// ProviderOptions configure a Provider.
type ProviderOptions struct {
	// FallbackImage replaces the image when the API fails. Empty makes image
	// failures fail the whole fetch.
	FallbackImage string
	Logger        *zap.Logger
}

// Provider builds candidate profiles by pairing a random pet from the pool
// with a random dog image.
type Provider struct {
	pool     *Pool
	picker   *Picker
	images   ImageFetcher
	fallback string
	logger   *zap.Logger
}

// NewProvider wires a pool, a picker and an image fetcher together.
func NewProvider(pool *Pool, picker *Picker, images ImageFetcher, opts ProviderOptions) (*Provider, error) {
	if pool.Len() == 0 {
		return nil, fmt.Errorf("provider requires a non-empty pool")
	}
	if picker == nil {
		picker = NewPicker(0)
	}
	if images == nil {
		return nil, fmt.Errorf("provider requires an image fetcher")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		pool:     pool,
		picker:   picker,
		images:   images,
		fallback: strings.TrimSpace(opts.FallbackImage),
		logger:   logger,
	}, nil
}

// FetchOne implements deck.Source.
func (p *Provider) FetchOne(ctx context.Context) (deck.Profile, error) {
	pet := p.pool.At(p.picker.IntN(p.pool.Len()))

	imageURL, err := p.images.RandomImage(ctx)
	if err != nil {
		if p.fallback == "" || ctx.Err() != nil {
			return deck.Profile{}, fmt.Errorf("fetch image for %s: %w", pet.Name, err)
		}
		p.logger.Warn("image api failed, using fallback",
			zap.String("pet", pet.Name),
			zap.Error(err),
		)
		imageURL = p.fallback
	}

	return deck.Profile{
		ID:       strconv.Itoa(pet.ID),
		ImageURL: imageURL,
		Name:     pet.Name,
		Bio:      strings.Join(pet.BioLines(), "\n"),
		Breed:    BreedFromURL(imageURL),
	}, nil
}
