// Package prompts embeds the oracle prompt templates and resolves them by
// file and key. Templates live in JSON files compiled into the binary, so a
// deployed binary never depends on files on disk.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var templateFS embed.FS

// store caches parsed template files behind a single lock. ClearCache drops
// the parsed state so tests can force a reload.
type store struct {
	mu    sync.Mutex
	files map[string]map[string]string
}

var templates = &store{files: make(map[string]map[string]string)}

// file returns the key set for filename, parsing the embedded JSON on first
// use.
func (s *store) file(filename string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if parsed, ok := s.files[filename]; ok {
		return parsed, nil
	}

	data, err := templateFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	s.files[filename] = parsed
	return parsed, nil
}

func (s *store) clear() {
	s.mu.Lock()
	s.files = make(map[string]map[string]string)
	s.mu.Unlock()
}

// Get retrieves the template stored under key in the given embedded file,
// e.g. Get("rewrite.json", "rewrite-intro").
func Get(filename, key string) (string, error) {
	parsed, err := templates.file(filename)
	if err != nil {
		return "", err
	}

	template, ok := parsed[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for templates the binary cannot operate without; a missing
// file or key panics.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with values from data.
// Placeholders without a matching value stay in place.
func Format(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}

	pairs := make([]string, 0, 2*len(data))
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// List returns the sorted template keys available in a file.
func List(filename string) ([]string, error) {
	parsed, err := templates.file(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(parsed))
	for key := range parsed {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearCache drops every parsed file so the next access reloads it
func ClearCache() {
	templates.clear()
}
