// Package diffbot wraps Diffbot's DQL search and Enhance entity-resolution
// APIs. Query building and response formatting are pure functions over an
// explicit Config, so concurrent callers with different credentials stay
// independent.
package diffbot

import (
	"errors"
	"strings"
)

const (
	// DefaultSearchURL is the DQL search endpoint.
	DefaultSearchURL = "https://api.diffbot.com/v3/search"
	// DefaultEnhanceURL is the Knowledge Graph enhance endpoint. Note the
	// different host; the two APIs do not share a base URL.
	DefaultEnhanceURL = "https://kg.diffbot.com/kg/v3/enhance"

	DefaultTimeoutSecs = 30
	DefaultSearchCount = 10
	MaxSearchCount     = 100
	DefaultEnhanceSize = 1
)

// Config carries the Diffbot credentials and endpoint settings.
type Config struct {
	Token       string `yaml:"token"`
	SearchURL   string `yaml:"search_url"`
	EnhanceURL  string `yaml:"enhance_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

// WithDefaults fills unset fields with their default values.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.SearchURL) == "" {
		c.SearchURL = DefaultSearchURL
	}
	if strings.TrimSpace(c.EnhanceURL) == "" {
		c.EnhanceURL = DefaultEnhanceURL
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

// Validate checks that the config is usable for API calls.
func (c *Config) Validate() error {
	if c == nil || strings.TrimSpace(c.Token) == "" {
		return errors.New("diffbot token is required (set DIFFBOT_TOKEN)")
	}
	return nil
}
