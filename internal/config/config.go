package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "CTOKEN"

	FlowInteractive = "interactive"
	FlowDeviceCode  = "device_code"

	DefaultAuthority   = "https://login.microsoftonline.com/common"
	DefaultAPIEndpoint = "https://custom-api.cognitive.microsofttranslator.com/api/texttranslator/v1.0/"
	DefaultModelsPath  = "models"
	DefaultNamePrefix  = "model-"
	DefaultPageIndex   = 1
	DefaultTimeout     = 30 * time.Second

	documentIDSeparator = ","
)

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"flow":      "auth.flow",
	"workspace": "api.workspace_id",
	"log-level": "logging.level",
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			Authority: DefaultAuthority,
			Scopes:    []string{"User.Read"},
			Flow:      FlowInteractive,
			CacheFile: defaultCacheFile(),
		},
		API: APIConfig{
			Endpoint:   DefaultAPIEndpoint,
			ModelsPath: DefaultModelsPath,
			PageIndex:  DefaultPageIndex,
			Timeout:    DefaultTimeout,
		},
		Model: ModelConfig{
			NamePrefix:  DefaultNamePrefix,
			AutoDeploy:  true,
			AutoTesting: true,
			AutoTuning:  true,
		},
		Console: ConsoleConfig{
			WaitForKey: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Theme:      "default",
			LogDir:     "./logs",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			FileOutput: false,
		},
	}
}

func defaultCacheFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".ctoken", "msal_cache.json")
	}
	return filepath.Join(home, ".ctoken", "msal_cache.json")
}

// Load reads configuration from the given file (or config.yaml in . and ./config),
// CTOKEN_ prefixed environment variables and any changed flags, in increasing precedence.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG_FILE")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("unable to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	config.Filename = v.ConfigFileUsed()
	config.Auth.Scopes = normaliseScopes(config.Auth.Scopes)

	return config, nil
}

// setDefaults registers every key so AutomaticEnv can find env-only overrides
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("auth.client_id", d.Auth.ClientID)
	v.SetDefault("auth.authority", d.Auth.Authority)
	v.SetDefault("auth.redirect_uri", d.Auth.RedirectURI)
	v.SetDefault("auth.flow", d.Auth.Flow)
	v.SetDefault("auth.username", d.Auth.Username)
	v.SetDefault("auth.cache_file", d.Auth.CacheFile)
	v.SetDefault("auth.scopes", d.Auth.Scopes)
	v.SetDefault("auth.disable_cache", d.Auth.DisableCache)

	v.SetDefault("api.endpoint", d.API.Endpoint)
	v.SetDefault("api.workspace_id", d.API.WorkspaceID)
	v.SetDefault("api.models_path", d.API.ModelsPath)
	v.SetDefault("api.page_index", d.API.PageIndex)
	v.SetDefault("api.timeout", d.API.Timeout)

	v.SetDefault("model.name_prefix", d.Model.NamePrefix)
	v.SetDefault("model.project_id", d.Model.ProjectID)
	v.SetDefault("model.document_ids", d.Model.DocumentIDs)
	v.SetDefault("model.auto_deploy", d.Model.AutoDeploy)
	v.SetDefault("model.auto_testing", d.Model.AutoTesting)
	v.SetDefault("model.auto_tuning", d.Model.AutoTuning)

	v.SetDefault("console.wait_for_key", d.Console.WaitForKey)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.theme", d.Logging.Theme)
	v.SetDefault("logging.log_dir", d.Logging.LogDir)
	v.SetDefault("logging.max_size", d.Logging.MaxSize)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age", d.Logging.MaxAge)
	v.SetDefault("logging.file_output", d.Logging.FileOutput)
}

// normaliseScopes accepts "a b", "a,b" or a list and drops blanks
func normaliseScopes(scopes []string) []string {
	var out []string
	for _, s := range scopes {
		for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the settings needed before any network call is made
func (c *Config) Validate() error {
	if c.Auth.ClientID == "" {
		return errors.New("auth.client_id is required")
	}
	if c.Auth.Authority == "" {
		return errors.New("auth.authority is required")
	}
	if len(c.Auth.Scopes) == 0 {
		return errors.New("auth.scopes must contain at least one scope")
	}
	switch c.Auth.Flow {
	case FlowInteractive, FlowDeviceCode:
	default:
		return fmt.Errorf("auth.flow must be %q or %q, got %q", FlowInteractive, FlowDeviceCode, c.Auth.Flow)
	}

	if c.API.Endpoint == "" {
		return errors.New("api.endpoint is required")
	}
	if c.API.WorkspaceID == "" {
		return errors.New("api.workspace_id is required")
	}
	if c.API.PageIndex < 1 {
		return fmt.Errorf("api.page_index must be at least 1, got %d", c.API.PageIndex)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout cannot be negative, got %v", c.API.Timeout)
	}

	if c.Model.ProjectID == "" {
		return errors.New("model.project_id is required")
	}
	if _, err := ParseDocumentIDs(c.Model.DocumentIDs); err != nil {
		return fmt.Errorf("model.document_ids: %w", err)
	}

	return nil
}

// ParseDocumentIDs splits a comma separated list of integer document ids.
// Whitespace around each id is ignored; anything that is not a 32-bit integer fails.
func ParseDocumentIDs(s string) ([]int, error) {
	parts := strings.Split(s, documentIDSeparator)
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid document id %q: %w", part, err)
		}
		ids = append(ids, int(id))
	}
	return ids, nil
}
