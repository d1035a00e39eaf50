package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
)

// Profile is a named record with a like counter.
type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Likes int    `json:"likes"`
}

// Seed provides the profiles shown when a session starts.
func Seed() []Profile {
	return []Profile{
		{ID: 1, Name: "Alice", Likes: 0},
		{ID: 2, Name: "Marcus", Likes: 0},
		{ID: 3, Name: "Priya", Likes: 0},
	}
}

// LoadSeed reads a JSON array of profiles from path and checks that it
// satisfies the store invariants. Names are returned trimmed.
func LoadSeed(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var items []Profile
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	if err := validateSeed(items); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return items, nil
}

// validateSeed checks items and trims their names in place.
func validateSeed(items []Profile) error {
	ids := make(map[int]struct{}, len(items))
	names := make(map[string]struct{}, len(items))

	for i, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("entry %d: %s", i, ReasonNameRequired)
		}
		if item.Likes < 0 {
			return fmt.Errorf("entry %d: negative likes %d", i, item.Likes)
		}
		if _, ok := ids[item.ID]; ok {
			return fmt.Errorf("entry %d: duplicate id %d", i, item.ID)
		}
		key := foldName(name)
		if _, ok := names[key]; ok {
			return fmt.Errorf("entry %d: %s %q", i, ReasonDuplicateName, name)
		}
		items[i].Name = name
		ids[item.ID] = struct{}{}
		names[key] = struct{}{}
	}
	return nil
}

// foldName returns the comparison key for case-insensitive name matching.
// Casers carry state, so one is built per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}
