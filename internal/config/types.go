// Package config persists user preferences and usage progress as small JSON
// files. The structs here are the typed view; the loose JSON representation
// exists only at the store boundary, and keys this version does not know are
// carried through a rewrite untouched.
package config

import (
	"encoding/json"
	"time"
)

// Learning level preference values.
const (
	LevelNovice       = "novice"
	LevelIntermediate = "intermediate"
	LevelExpert       = "expert"
	LevelAuto         = "auto"
)

// ValidLevel reports whether s is an accepted level token.
func ValidLevel(s string) bool {
	switch s {
	case LevelNovice, LevelIntermediate, LevelExpert, LevelAuto:
		return true
	}
	return false
}

// Preferences is the typed form of the preference file. Empty fields are
// treated as unset and omitted when written.
type Preferences struct {
	Language string
	Level    string

	// extra holds keys written by other (newer or older) versions.
	extra map[string]json.RawMessage
}

const (
	prefKeyLanguage = "language"
	prefKeyLevel    = "level"
)

// UnmarshalJSON splits the object into the known fields and the verbatim
// remainder.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw[prefKeyLanguage]; ok {
		if err := json.Unmarshal(v, &p.Language); err != nil {
			return err
		}
		delete(raw, prefKeyLanguage)
	}
	if v, ok := raw[prefKeyLevel]; ok {
		if err := json.Unmarshal(v, &p.Level); err != nil {
			return err
		}
		delete(raw, prefKeyLevel)
	}
	if len(raw) > 0 {
		p.extra = raw
	}
	return nil
}

// MarshalJSON writes the known fields over the preserved remainder.
func (p *Preferences) MarshalJSON() ([]byte, error) {
	out := map[string]json.RawMessage{}
	for k, v := range p.extra {
		out[k] = v
	}
	if p.Language != "" {
		v, err := json.Marshal(p.Language)
		if err != nil {
			return nil, err
		}
		out[prefKeyLanguage] = v
	}
	if p.Level != "" {
		v, err := json.Marshal(p.Level)
		if err != nil {
			return nil, err
		}
		out[prefKeyLevel] = v
	}
	return json.Marshal(out)
}

// Progress is the typed form of the progress file.
type Progress struct {
	UsageCount    int
	LastUsed      string
	ScenariosSeen []string
	CommandsUsed  map[string]int
	TipsShown     []string

	extra map[string]json.RawMessage
}

const (
	progKeyUsageCount    = "usage_count"
	progKeyLastUsed      = "last_used"
	progKeyScenariosSeen = "scenarios_seen"
	progKeyCommandsUsed  = "commands_used"
	progKeyTipsShown     = "tips_shown"
)

// NewProgress returns an empty progress record with initialized maps.
func NewProgress() *Progress {
	return &Progress{
		ScenariosSeen: []string{},
		CommandsUsed:  map[string]int{},
		TipsShown:     []string{},
	}
}

func (p *Progress) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	take := func(key string, dst interface{}) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		delete(raw, key)
		return json.Unmarshal(v, dst)
	}
	if err := take(progKeyUsageCount, &p.UsageCount); err != nil {
		return err
	}
	if err := take(progKeyLastUsed, &p.LastUsed); err != nil {
		return err
	}
	if err := take(progKeyScenariosSeen, &p.ScenariosSeen); err != nil {
		return err
	}
	if err := take(progKeyCommandsUsed, &p.CommandsUsed); err != nil {
		return err
	}
	if err := take(progKeyTipsShown, &p.TipsShown); err != nil {
		return err
	}
	if p.CommandsUsed == nil {
		p.CommandsUsed = map[string]int{}
	}
	if len(raw) > 0 {
		p.extra = raw
	}
	return nil
}

func (p *Progress) MarshalJSON() ([]byte, error) {
	out := map[string]json.RawMessage{}
	for k, v := range p.extra {
		out[k] = v
	}
	put := func(key string, val interface{}) error {
		v, err := json.Marshal(val)
		if err != nil {
			return err
		}
		out[key] = v
		return nil
	}
	if err := put(progKeyUsageCount, p.UsageCount); err != nil {
		return nil, err
	}
	if err := put(progKeyLastUsed, p.LastUsed); err != nil {
		return nil, err
	}
	scenarios := p.ScenariosSeen
	if scenarios == nil {
		scenarios = []string{}
	}
	if err := put(progKeyScenariosSeen, scenarios); err != nil {
		return nil, err
	}
	commands := p.CommandsUsed
	if commands == nil {
		commands = map[string]int{}
	}
	if err := put(progKeyCommandsUsed, commands); err != nil {
		return nil, err
	}
	tips := p.TipsShown
	if tips == nil {
		tips = []string{}
	}
	if err := put(progKeyTipsShown, tips); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// NextLearningStep suggests what to explore next based on how often the tool
// has been used.
func (p *Progress) NextLearningStep() string {
	switch {
	case p.UsageCount < 3:
		return "first_steps"
	case p.UsageCount < 10:
		return "basic_workflow"
	case p.UsageCount < 20:
		return "advanced_topics"
	default:
		return "expert_tips"
	}
}

// LastUsedDisplay renders the last-used timestamp for the stats view, or an
// empty string when it was never recorded or cannot be parsed.
func (p *Progress) LastUsedDisplay() string {
	if p.LastUsed == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, p.LastUsed)
	if err != nil {
		// Progress files written before v2 carry local timestamps
		// without a zone offset.
		ts, err = time.Parse("2006-01-02T15:04:05", p.LastUsed)
		if err != nil {
			return ""
		}
	}
	return ts.Format("2006-01-02 15:04")
}
