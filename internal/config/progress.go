package config

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/gyongyosigabor/gghelper/internal/errors"
)

// RootCommand is the command name under which whole-tool usage is counted.
const RootCommand = "gghelper"

// ProgressStore reads and rewrites the usage progress file. Progress is
// best-effort bookkeeping: unreadable or corrupt files load as a fresh
// record instead of failing the workflow.
type ProgressStore struct {
	path string
	mu   sync.Mutex

	// now is swapped in tests for a fixed clock.
	now func() time.Time
}

// NewProgressStore creates a store for the given file path.
func NewProgressStore(path string) (*ProgressStore, error) {
	if path == "" {
		return nil, errors.New(errors.TypeConfig, "progress store path cannot be empty")
	}
	return &ProgressStore{path: path, now: time.Now}, nil
}

// Load returns the stored progress, or an empty record when the file is
// missing or unreadable.
func (s *ProgressStore) Load() (*Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

func (s *ProgressStore) load() *Progress {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewProgress()
	}
	progress := NewProgress()
	if err := json.Unmarshal(data, progress); err != nil {
		return NewProgress()
	}
	return progress
}

// Save rewrites the progress file atomically, stamping the last-used time.
func (s *ProgressStore) Save(progress *Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(progress)
}

func (s *ProgressStore) save(progress *Progress) error {
	progress.LastUsed = s.now().Format(time.RFC3339)
	data, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeConfig, "failed to marshal progress", err)
	}
	return atomicWrite(s.path, data)
}

// RecordUse counts one whole workflow run and returns the updated record.
func (s *ProgressStore) RecordUse() (*Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := s.load()
	progress.UsageCount++
	progress.CommandsUsed[RootCommand]++
	if err := s.save(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// RecordCommand counts one completed workflow step.
func (s *ProgressStore) RecordCommand(command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := s.load()
	progress.CommandsUsed[command]++
	return s.save(progress)
}

// RecordScenario remembers that a tip scenario was shown, deduplicated.
func (s *ProgressStore) RecordScenario(scenario string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := s.load()
	for _, seen := range progress.ScenariosSeen {
		if seen == scenario {
			return nil
		}
	}
	progress.ScenariosSeen = append(progress.ScenariosSeen, scenario)
	return s.save(progress)
}

// RecordTip appends a shown tip to the history.
func (s *ProgressStore) RecordTip(tip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := s.load()
	progress.TipsShown = append(progress.TipsShown, tip)
	return s.save(progress)
}
