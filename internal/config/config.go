package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "OPENCOG"

// Defaults used when neither the config file nor the environment sets a key.
const (
	DefaultPort      = "8080"
	DefaultServerURL = "http://localhost:17020"
	DefaultDBPath    = ":memory:"
)

// DefaultAllowList holds the URL substrings that activate the dashboard.
var DefaultAllowList = []string{
	"localhost:8080",
	"localhost:17020",
	"opencog-dashboard.local",
}

// Latency is the simulated round-trip time of each mock backend call.
type Latency struct {
	Connect         time.Duration `mapstructure:"connect"`
	Evaluate        time.Duration `mapstructure:"evaluate"`
	Refresh         time.Duration `mapstructure:"refresh"`
	Clear           time.Duration `mapstructure:"clear"`
	MutationRefresh time.Duration `mapstructure:"mutation_refresh"`
}

// Config is the full application configuration.
type Config struct {
	Port string `mapstructure:"port"`
	Log  struct {
		Level    string `mapstructure:"level"`
		Encoding string `mapstructure:"encoding"`
	} `mapstructure:"log"`
	DB struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"db"`
	Dashboard struct {
		AllowList        []string `mapstructure:"allow_list"`
		DefaultServerURL string   `mapstructure:"default_server_url"`
	} `mapstructure:"dashboard"`
	Latency    Latency `mapstructure:"latency"`
	Automation struct {
		// Registry simulates a host that provides an automation registry.
		Registry bool `mapstructure:"registry"`
		MCP      bool `mapstructure:"mcp"`
	} `mapstructure:"automation"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("db.path", DefaultDBPath)
	v.SetDefault("dashboard.allow_list", DefaultAllowList)
	v.SetDefault("dashboard.default_server_url", DefaultServerURL)
	v.SetDefault("latency.connect", 1000*time.Millisecond)
	v.SetDefault("latency.evaluate", 300*time.Millisecond)
	v.SetDefault("latency.refresh", 800*time.Millisecond)
	v.SetDefault("latency.clear", 500*time.Millisecond)
	v.SetDefault("latency.mutation_refresh", 500*time.Millisecond)
	v.SetDefault("automation.registry", true)
	v.SetDefault("automation.mcp", true)
}

// Load reads configs/config.yml (or config.yml from the given paths), applies
// OPENCOG_* environment overrides and fills every missing key with a default.
// A missing config file is not an error.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Dashboard.AllowList) == 0 {
		return errors.New("dashboard.allow_list must not be empty")
	}
	for name, d := range map[string]time.Duration{
		"connect":          c.Latency.Connect,
		"evaluate":         c.Latency.Evaluate,
		"refresh":          c.Latency.Refresh,
		"clear":            c.Latency.Clear,
		"mutation_refresh": c.Latency.MutationRefresh,
	} {
		if d < 0 {
			return fmt.Errorf("latency.%s must not be negative, got %v", name, d)
		}
	}
	return nil
}
