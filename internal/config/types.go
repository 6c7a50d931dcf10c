package config

import (
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Filename string        `mapstructure:"-" yaml:"-"`
	Auth     AuthConfig    `mapstructure:"auth" yaml:"auth"`
	API      APIConfig     `mapstructure:"api" yaml:"api"`
	Model    ModelConfig   `mapstructure:"model" yaml:"model"`
	Console  ConsoleConfig `mapstructure:"console" yaml:"console"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// AuthConfig describes the identity provider and public client registration
type AuthConfig struct {
	ClientID     string   `mapstructure:"client_id" yaml:"client_id"`
	Authority    string   `mapstructure:"authority" yaml:"authority"`
	RedirectURI  string   `mapstructure:"redirect_uri" yaml:"redirect_uri"`
	Flow         string   `mapstructure:"flow" yaml:"flow"`
	Username     string   `mapstructure:"username" yaml:"username"`
	CacheFile    string   `mapstructure:"cache_file" yaml:"cache_file"`
	Scopes       []string `mapstructure:"scopes" yaml:"scopes"`
	DisableCache bool     `mapstructure:"disable_cache" yaml:"disable_cache"`
}

// APIConfig holds the Custom Translator API settings
type APIConfig struct {
	Endpoint    string        `mapstructure:"endpoint" yaml:"endpoint"`
	WorkspaceID string        `mapstructure:"workspace_id" yaml:"workspace_id"`
	ModelsPath  string        `mapstructure:"models_path" yaml:"models_path"`
	PageIndex   int           `mapstructure:"page_index" yaml:"page_index"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// ModelConfig feeds the create-model request
type ModelConfig struct {
	NamePrefix  string `mapstructure:"name_prefix" yaml:"name_prefix"`
	ProjectID   string `mapstructure:"project_id" yaml:"project_id"`
	DocumentIDs string `mapstructure:"document_ids" yaml:"document_ids"` // comma separated
	AutoDeploy  bool   `mapstructure:"auto_deploy" yaml:"auto_deploy"`
	AutoTesting bool   `mapstructure:"auto_testing" yaml:"auto_testing"`
	AutoTuning  bool   `mapstructure:"auto_tuning" yaml:"auto_tuning"`
}

type ConsoleConfig struct {
	WaitForKey bool `mapstructure:"wait_for_key" yaml:"wait_for_key"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Theme      string `mapstructure:"theme" yaml:"theme"`
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	FileOutput bool   `mapstructure:"file_output" yaml:"file_output"`
}
