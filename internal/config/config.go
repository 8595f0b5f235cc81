// Package config handles configuration and path resolution for
// whatdoing. Everything lives under one home directory (default
// ~/.whatdoing): config.yaml, state.json, scratchpad.md, and the
// journal/ and logs/ subdirectories.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

const (
	// EnvHome overrides the whatdoing home directory.
	EnvHome = "WHATDOING_HOME"
	// EnvBase overrides project base path auto-detection.
	EnvBase = "WHATDOING_BASE"
	// EnvDockerHost names an SSH host for remote docker checks.
	EnvDockerHost = "WHATDOING_DOCKER_HOST"

	configFile = "config.yaml"
)

// Config is the runtime configuration. It is loaded once at startup
// and passed explicitly to whatever needs it; preset lists may grow at
// runtime and are persisted back with Save.
type Config struct {
	BasePath        string            `yaml:"base_path"`
	OverviewDir     string            `yaml:"overview_dir"`
	Editor          string            `yaml:"editor"`
	Theme           string            `yaml:"theme,omitempty"`
	ThemeColors     map[string]string `yaml:"theme-colors,omitempty"`
	DockerHost      string            `yaml:"docker_host,omitempty"`
	StatusPresets   []string          `yaml:"status-presets"`
	PriorityPresets []string          `yaml:"priority-presets"`
}

// Default returns a config populated with defaults only.
func Default() *Config {
	return &Config{
		OverviewDir: "projects",
		StatusPresets: []string{
			"Active", "Paused", "Backlog", "IN PROGRESS",
			"BLOCKED", "STUCK", "READY", "RUNNING",
		},
		PriorityPresets: []string{"High", "Medium", "Low"},
	}
}

// ProjectsPath returns the directory scanned for project folders.
func (c *Config) ProjectsPath() string {
	return filepath.Join(c.BasePath, c.OverviewDir)
}

// ResolvedEditor returns the editor command to hand files to.
// Bash-style values like "${EDITOR:-nano}" carried over from old
// configs are ignored. Preference order: config value, micro if on
// PATH, $EDITOR, nano.
func (c *Config) ResolvedEditor() string {
	editor := c.Editor
	if strings.HasPrefix(editor, "$") {
		editor = ""
	}
	if editor != "" {
		return editor
	}
	if _, err := exec.LookPath("micro"); err == nil {
		return "micro"
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "nano"
}

// Home returns the whatdoing home directory, honoring WHATDOING_HOME.
func Home() string {
	if env := os.Getenv(EnvHome); env != "" {
		return env
	}
	home, err := homedir.Dir()
	if err != nil {
		return ".whatdoing"
	}
	return filepath.Join(home, ".whatdoing")
}

// JournalDir creates and returns the journal directory.
func JournalDir() string {
	d := filepath.Join(Home(), "journal")
	_ = os.MkdirAll(d, 0o755)
	return d
}

// LogsDir creates and returns the logs directory.
func LogsDir() string {
	d := filepath.Join(Home(), "logs")
	_ = os.MkdirAll(d, 0o755)
	return d
}

// StatePath returns the path to the persisted app state file.
func StatePath() string {
	return filepath.Join(Home(), "state.json")
}

// ScratchpadPath returns the path to the scratchpad file.
func ScratchpadPath() string {
	return filepath.Join(Home(), "scratchpad.md")
}

// DetectBasePath auto-detects the project base path for this machine.
// WHATDOING_BASE wins; otherwise the first existing candidate root is
// used.
func DetectBasePath() string {
	if env := os.Getenv(EnvBase); env != "" {
		return env
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(home, "server"),
		filepath.Join(home, "projects"),
		home,
	}
	for _, path := range candidates {
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads <home>/config.yaml, filling defaults for any missing key.
// A missing or malformed file yields the defaults; the dashboard must
// start regardless.
func Load() *Config {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(Home(), configFile))
	if err == nil {
		var parsed Config
		if yaml.Unmarshal(data, &parsed) == nil {
			if parsed.BasePath != "" {
				cfg.BasePath = parsed.BasePath
			}
			if parsed.OverviewDir != "" {
				cfg.OverviewDir = parsed.OverviewDir
			}
			cfg.Editor = parsed.Editor
			cfg.Theme = parsed.Theme
			cfg.ThemeColors = parsed.ThemeColors
			cfg.DockerHost = parsed.DockerHost
			if len(parsed.StatusPresets) > 0 {
				cfg.StatusPresets = parsed.StatusPresets
			}
			if len(parsed.PriorityPresets) > 0 {
				cfg.PriorityPresets = parsed.PriorityPresets
			}
		}
	}

	if cfg.DockerHost == "" {
		cfg.DockerHost = os.Getenv(EnvDockerHost)
	}
	if cfg.BasePath == "" {
		cfg.BasePath = DetectBasePath()
	}
	return cfg
}

// Save persists the config back to <home>/config.yaml.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Home(), 0o755); err != nil {
		return fmt.Errorf("config: ensure home dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	path := filepath.Join(Home(), configFile)
	if err := atomic.WriteFile(path, strings.NewReader(string(data))); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
