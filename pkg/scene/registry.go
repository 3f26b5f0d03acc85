package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by ByName for names with no registered preset
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a preset scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type preset struct {
	description string
	build       func() (*Scene, error)
}

var presets = map[string]preset{
	"default":   {"Two spheres over a reflective floor", NewDefaultScene},
	"mirrors":   {"Sphere between two parallel mirrors", NewMirrorsScene},
	"pyramid":   {"Double pyramid and mirror ball under a spot light", NewPyramidScene},
	"spotlight": {"Sphere and triangle lit only by colored spot lights", NewSpotlightScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every preset, sorted by ID
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: presets[name].description,
		})
	}
	return scenes
}

// ByName builds a fresh copy of the named preset
func ByName(name string) (*Scene, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}
	s, err := p.build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	return s, nil
}

// titleCase converts a filename-style string to title case
// e.g., "parallel-mirrors" -> "Parallel Mirrors"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
