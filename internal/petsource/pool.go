package petsource

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed pets.json
var defaultPool []byte

// Pool is the validated set of pets the provider draws from.
type Pool struct {
	pets []Pet
}

// LoadPool reads a JSON array of pets from path. An empty path loads the
// built-in pool.
func LoadPool(path string) (*Pool, error) {
	data := defaultPool
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("pet pool %s does not exist", path)
			}
			return nil, fmt.Errorf("read pet pool: %w", err)
		}
		data = raw
	}
	return ParsePool(data)
}

// ParsePool decodes and validates a JSON array of pets.
func ParsePool(data []byte) (*Pool, error) {
	var pets []Pet
	if err := json.Unmarshal(data, &pets); err != nil {
		return nil, fmt.Errorf("parse pet pool: %w", err)
	}
	if len(pets) == 0 {
		return nil, fmt.Errorf("pet pool is empty")
	}
	seen := make(map[int]bool, len(pets))
	for i, p := range pets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("pet %d has no name", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate pet id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return &Pool{pets: pets}, nil
}

// Len reports the pool size.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pets)
}

// At returns the i-th pet.
func (p *Pool) At(i int) Pet {
	return p.pets[i]
}

// Encode writes the pool back out as indented JSON, the format LoadPool reads.
func (p *Pool) Encode() ([]byte, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("pet pool is empty")
	}
	data, err := json.MarshalIndent(p.pets, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode pet pool: %w", err)
	}
	return append(data, '\n'), nil
}
