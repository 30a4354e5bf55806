package petsource

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageResponse mirrors the payload returned by the dog.ceo random image API.
type ImageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// URL validates the response and returns the image URL it carries.
func (r ImageResponse) URL() (string, error) {
	if !strings.EqualFold(strings.TrimSpace(r.Status), "success") {
		return "", fmt.Errorf("unexpected image api status %q", r.Status)
	}
	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		return "", fmt.Errorf("image api returned an empty url")
	}
	return msg, nil
}

// Pet is one entry of the bio pool.
type Pet struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// BioLines splits a multi-line bio, dropping blank lines.
func (p Pet) BioLines() []string {
	var lines []string
	for _, line := range strings.Split(p.Bio, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// BreedFromURL extracts a readable breed from a dog.ceo image URL such as
// https://images.dog.ceo/breeds/retriever-golden/n02099601_3004.jpg, which
// yields "golden retriever". Unknown layouts return "".
func BreedFromURL(imageURL string) string {
	u, err := url.Parse(strings.TrimSpace(imageURL))
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] != "breeds" {
			continue
		}
		words := strings.Split(parts[i+1], "-")
		if len(words) == 0 || words[0] == "" {
			return ""
		}
		// dog.ceo puts the main breed first and the sub-breed second.
		if len(words) > 1 {
			words = append(words[1:], words[0])
		}
		return strings.Join(words, " ")
	}
	return ""
}
