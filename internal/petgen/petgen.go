// Package petgen asks Gemini to write a pet pool for PawsMatch.
package petgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/five82/pawsmatch/internal/petsource"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator produces raw model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini implements Generator on the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGemini creates a Gemini client for apiKey.
func NewGemini(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, logger: logger}, nil
}

// Generate sends prompt and returns the concatenated text parts.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0.9)
	cfg := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
	}

	g.logger.Debug("generating pet pool", zap.String("model", g.model))
	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("empty response from gemini")
	}
	g.logger.Debug("gemini response received", zap.Int("length", len(text)))
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var texts []string
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "")
}

// Prompt builds the instruction for count pets with bios in language.
func Prompt(count int, language string) string {
	if language == "" {
		language = "English"
	}
	return fmt.Sprintf(`Generate exactly %d unique dog profiles for an adoption app called PawsMatch.

Each profile must have:
- id: a unique integer starting from 1
- name: a creative dog name
- bio: a 3-line adoption-focused biography in %s, lines separated by \n, describing
  the dog's personality, what they're looking for in a home, and why someone should adopt them

Return ONLY a valid JSON array with no additional text or markdown formatting.
The response should start with [ and end with ].

Example format:
[
  {
    "id": 1,
    "name": "Max",
    "bio": "I'm a playful 3-year-old who loves everyone I meet.\nI'm looking for an active family that enjoys long walks.\nI promise to fill your home with joy and unconditional love."
  }
]`, count, language)
}

// StripFences removes a surrounding markdown code fence, if any.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.HasPrefix(strings.TrimSpace(lines[n-1]), "```") {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Pool runs the generator and validates its output as a pet pool.
func Pool(ctx context.Context, gen Generator, count int, language string) (*petsource.Pool, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	text, err := gen.Generate(ctx, Prompt(count, language))
	if err != nil {
		return nil, err
	}
	pool, err := petsource.ParsePool([]byte(StripFences(text)))
	if err != nil {
		return nil, fmt.Errorf("validate generated pool: %w", err)
	}
	return pool, nil
}
