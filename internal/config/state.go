package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// State is the small piece of app state persisted between runs.
type State struct {
	LastProject string `json:"last_project,omitempty"`
}

// LoadState reads state.json. A missing or corrupt file yields an
// empty state.
func LoadState() State {
	data, err := os.ReadFile(StatePath())
	if err != nil {
		return State{}
	}
	var st State
	if json.Unmarshal(data, &st) != nil {
		return State{}
	}
	return st
}

// SaveState persists the state, best effort.
func SaveState(st State) {
	if err := os.MkdirAll(Home(), 0o755); err != nil {
		return
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return
	}
	_ = atomic.WriteFile(StatePath(), strings.NewReader(string(data)))
}
