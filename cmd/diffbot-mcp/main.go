// Command diffbot-mcp serves Diffbot's DQL search and Enhance APIs as MCP
// tools over stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/kgtools/diffbot-mcp/pkg/diffbot"
	"github.com/kgtools/diffbot-mcp/pkg/mcpserver"
)

// Filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("diffbot-mcp %s (%s, built %s)\n", Tag, Commit, BuildTime)
		return
	}

	// stdout carries the MCP transport, so all logging goes to stderr.
	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	client := diffbot.NewClient(cfg)
	server := mcpserver.New(client)

	ctx := log.WithContext(context.Background())
	log.Info().
		Str("search_url", cfg.SearchURL).
		Str("enhance_url", cfg.EnhanceURL).
		Msg("Serving Diffbot tools over stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal().Err(err).Msg("MCP server exited")
	}
}

func loadConfig(path string) (*diffbot.Config, error) {
	if path == "" {
		return diffbot.ConfigFromEnv(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg diffbot.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return diffbot.ApplyEnvDefaults(&cfg), nil
}
