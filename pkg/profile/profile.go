// Package profile holds named conversion settings shipped with the binary.
package profile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed profiles.json
var profiles []byte

// DefaultName is the profile used when none is given.
const DefaultName = "desmos"

var ErrUnknownProfile = errors.New("unknown profile")

// Profile represents a set of conversion settings.
type Profile struct {
	Name        string
	Description string

	// Scale multiplies every coordinate.
	Scale float64
	// FlipY negates y so that SVG's downward y axis points up.
	FlipY bool
	// Tolerance is the maximum distance between a cubic and its quadratic approximation.
	Tolerance float64
	// Precision is the number of decimal places in the output; -1 means shortest exact.
	Precision int
}

func decodeProfiles() ([]Profile, error) {
	var result []Profile
	if err := json.Unmarshal(profiles, &result); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}

	return result, nil
}

// Get looks a profile up by name.
func Get(name string) (*Profile, error) {
	profiles, err := decodeProfiles()
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Names lists all profiles in the order they are defined.
func Names() []string {
	profiles, err := decodeProfiles()
	if err != nil {
		return nil
	}

	result := make([]string, len(profiles))
	for i, p := range profiles {
		result[i] = p.Name
	}

	return result
}
