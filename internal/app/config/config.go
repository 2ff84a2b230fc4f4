// Package config defines read-only application configuration. The interface
// hides the configuration source (setting.json or defaults) from the CLI and
// workflow layers.
package config

import "time"

// Config provides read-only access to application configuration.
type Config interface {
	// Core settings
	Home() string           // Base directory for relpub state (RELPUB_HOME)
	GitBin() string         // git binary path
	TimeoutSec() int        // external command timeout in seconds
	Timeout() time.Duration // external command timeout as Duration

	// Publish defaults, overridable per invocation via flags
	MetaPath() string          // release metadata document path
	PropertiesPaths() []string // properties files mirroring the version
	Branch() string            // branch releases are published from
	TagPrefix() string         // prefix for created tags
	AllowEqualFinal() bool     // final supersedes prerelease at equal numerics

	// Logging
	StderrLevel() string // minimum stderr log level

	// Metadata
	ConfigSource() string // "json" or "default"
	SettingPath() string  // path to setting.json if loaded from file
}

// AppConfig is the concrete implementation of Config.
type AppConfig struct {
	home       string
	gitBin     string
	timeoutSec int

	metaPath        string
	propertiesPaths []string
	branch          string
	tagPrefix       string
	allowEqualFinal bool

	stderrLevel  string
	configSource string
	settingPath  string
}

// NewAppConfig builds an AppConfig from resolved values.
func NewAppConfig(
	home, gitBin string, timeoutSec int,
	metaPath string, propertiesPaths []string,
	branch, tagPrefix string, allowEqualFinal bool,
	stderrLevel, configSource, settingPath string,
) *AppConfig {
	return &AppConfig{
		home:            home,
		gitBin:          gitBin,
		timeoutSec:      timeoutSec,
		metaPath:        metaPath,
		propertiesPaths: propertiesPaths,
		branch:          branch,
		tagPrefix:       tagPrefix,
		allowEqualFinal: allowEqualFinal,
		stderrLevel:     stderrLevel,
		configSource:    configSource,
		settingPath:     settingPath,
	}
}

func (c *AppConfig) Home() string              { return c.home }
func (c *AppConfig) GitBin() string            { return c.gitBin }
func (c *AppConfig) TimeoutSec() int           { return c.timeoutSec }
func (c *AppConfig) Timeout() time.Duration    { return time.Duration(c.timeoutSec) * time.Second }
func (c *AppConfig) MetaPath() string          { return c.metaPath }
func (c *AppConfig) PropertiesPaths() []string { return c.propertiesPaths }
func (c *AppConfig) Branch() string            { return c.branch }
func (c *AppConfig) TagPrefix() string         { return c.tagPrefix }
func (c *AppConfig) AllowEqualFinal() bool     { return c.allowEqualFinal }
func (c *AppConfig) StderrLevel() string       { return c.stderrLevel }
func (c *AppConfig) ConfigSource() string      { return c.configSource }
func (c *AppConfig) SettingPath() string       { return c.settingPath }
