package diffbot

import (
	"os"
	"strconv"
	"strings"

	"github.com/kgtools/diffbot-mcp/pkg/shared/stringutil"
)

// ConfigFromEnv builds a config using environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}
	cfg.Token = stringutil.EnvOr(cfg.Token, os.Getenv("DIFFBOT_TOKEN"))
	cfg.SearchURL = stringutil.EnvOr(cfg.SearchURL, os.Getenv("DIFFBOT_SEARCH_URL"))
	cfg.EnhanceURL = stringutil.EnvOr(cfg.EnhanceURL, os.Getenv("DIFFBOT_ENHANCE_URL"))
	if timeout := strings.TrimSpace(os.Getenv("DIFFBOT_TIMEOUT_SECONDS")); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			cfg.TimeoutSecs = secs
		}
	}
	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	envCfg := ConfigFromEnv()
	if strings.TrimSpace(cfg.Token) == "" {
		cfg.Token = envCfg.Token
	}
	if strings.TrimSpace(cfg.SearchURL) == "" {
		cfg.SearchURL = envCfg.SearchURL
	}
	if strings.TrimSpace(cfg.EnhanceURL) == "" {
		cfg.EnhanceURL = envCfg.EnhanceURL
	}
	if cfg.TimeoutSecs <= 0 {
		cfg.TimeoutSecs = envCfg.TimeoutSecs
	}
	return cfg.WithDefaults()
}
