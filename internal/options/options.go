// Package options manages the JSON file holding dropdown choices for task forms.
package options

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Choice is a numeric value with a display name
type Choice struct {
	Value   int    `json:"value"`
	Display string `json:"display"`
}

// Dropdowns is the content of the options file
type Dropdowns struct {
	TaskTypes  []Choice `json:"taskTypes"`
	Statuses   []string `json:"statuses"`
	Priorities []Choice `json:"priorities"`
	Projects   []string `json:"projects"`
}

// Service serves dropdown options loaded from a file
type Service struct {
	path string

	mu  sync.RWMutex
	cfg Dropdowns
}

// DefaultProjects is written when the file has no project list
func DefaultProjects() []string {
	return []string{"Internal", "Project A", "Project B"}
}

// Defaults returns the options used when no valid file exists
func Defaults() Dropdowns {
	return Dropdowns{
		TaskTypes: []Choice{
			{Value: 0, Display: "Development"},
			{Value: 1, Display: "Issue"},
		},
		Statuses: []string{"In Progress", "Done", "Paused", "Not Started", "Cancelled"},
		Priorities: []Choice{
			{Value: 0, Display: "Normal"},
			{Value: 1, Display: "Elevated"},
			{Value: 2, Display: "High"},
			{Value: 3, Display: "Urgent"},
		},
		Projects: DefaultProjects(),
	}
}

// Load reads the options file at path.
// A missing or unreadable file falls back to Defaults, which are then written to path.
// A file without a project list gets DefaultProjects and is saved again.
// Failing to write is logged and does not fail the load.
func Load(path string) *Service {
	s := &Service{path: path}

	cfg, ok := readFile(path)
	switch {
	case !ok:
		s.cfg = Defaults()
		s.saveOrLog()
	case cfg.Projects == nil:
		cfg.Projects = DefaultProjects()
		s.cfg = cfg
		s.saveOrLog()
	default:
		s.cfg = cfg
	}
	return s
}

func readFile(path string) (Dropdowns, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dropdowns{}, false
	}
	var cfg Dropdowns
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("options file %s is invalid, using defaults: %v", path, err)
		return Dropdowns{}, false
	}
	return cfg, true
}

func (s *Service) saveOrLog() {
	if err := s.Save(); err != nil {
		log.Printf("failed to save options file: %v", err)
	}
}

// Save writes the current options as indented JSON, creating the directory if needed
func (s *Service) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cfg, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create options dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write options file: %w", err)
	}
	return nil
}

func (s *Service) TaskTypes() []Choice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Choice(nil), s.cfg.TaskTypes...)
}

func (s *Service) Statuses() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cfg.Statuses...)
}

func (s *Service) Priorities() []Choice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Choice(nil), s.cfg.Priorities...)
}

func (s *Service) Projects() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cfg.Projects...)
}

// All returns a copy of every option list
func (s *Service) All() Dropdowns {
	return Dropdowns{
		TaskTypes:  s.TaskTypes(),
		Statuses:   s.Statuses(),
		Priorities: s.Priorities(),
		Projects:   s.Projects(),
	}
}

var (
	shared     *Service
	sharedOnce sync.Once
)

// Shared returns the process-wide Service, loading it from path on first use.
// Later calls ignore path.
func Shared(path string) *Service {
	sharedOnce.Do(func() {
		shared = Load(path)
	})
	return shared
}
