// Package config loads setting.json into the application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/relpub/relpub/internal/app/config"
)

// RawSettings represents the structure of the setting.json file. Pointer
// fields distinguish "absent" from zero values so defaults only fill gaps.
type RawSettings struct {
	// Core settings
	Home       *string `json:"home"`
	GitBin     *string `json:"git_bin"`
	TimeoutSec *int    `json:"timeout_sec"`

	// Publish defaults
	MetaPath        *string  `json:"meta_path"`
	PropertiesPaths []string `json:"properties_paths"`
	Branch          *string  `json:"branch"`
	TagPrefix       *string  `json:"tag_prefix"`
	AllowEqualFinal *bool    `json:"allow_equal_final"`

	// Logging
	StderrLevel *string `json:"stderr_level"`
}

// LoadSettings loads configuration from setting.json under baseDir.
// Priority: setting.json > defaults. A missing file is not an error.
func LoadSettings(baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	jsonPath := filepath.Join(baseDir, "setting.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", jsonPath, err)
		}
		configSource = "json"
		settingPath = jsonPath
	}

	applyDefaults(settings, baseDir)
	return buildAppConfig(settings, configSource, settingPath), nil
}

func applyDefaults(s *RawSettings, baseDir string) {
	if s.Home == nil {
		s.Home = strPtr(baseDir)
	}
	if s.GitBin == nil {
		s.GitBin = strPtr("git")
	}
	if s.TimeoutSec == nil {
		v := 120
		s.TimeoutSec = &v
	}
	if s.MetaPath == nil {
		s.MetaPath = strPtr("package.toml")
	}
	if len(s.PropertiesPaths) == 0 {
		s.PropertiesPaths = []string{".sonarcloud.properties", "sonar-project.properties"}
	}
	if s.Branch == nil {
		s.Branch = strPtr("main")
	}
	if s.TagPrefix == nil {
		s.TagPrefix = strPtr("v")
	}
	if s.AllowEqualFinal == nil {
		v := true
		s.AllowEqualFinal = &v
	}
	if s.StderrLevel == nil {
		s.StderrLevel = strPtr("info")
	}
}

func buildAppConfig(s *RawSettings, configSource, settingPath string) *config.AppConfig {
	return config.NewAppConfig(
		*s.Home, *s.GitBin, *s.TimeoutSec,
		*s.MetaPath, s.PropertiesPaths,
		*s.Branch, *s.TagPrefix, *s.AllowEqualFinal,
		*s.StderrLevel, configSource, settingPath,
	)
}

func strPtr(s string) *string { return &s }
