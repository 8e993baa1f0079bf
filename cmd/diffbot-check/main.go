// Command diffbot-check verifies the local environment and Diffbot API
// connectivity without going through the MCP transport. It issues one direct
// search and one direct enhance call and reports what came back.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/kgtools/diffbot-mcp/pkg/diffbot"
)

func main() {
	query := flag.String("query", "type:article", "DQL query to test with")
	org := flag.String("org", "Diffbot", "organization name to test Enhance with")
	timeout := flag.Duration("timeout", 30*time.Second, "per-call timeout")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfg := diffbot.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Environment check failed")
	}
	log.Info().
		Int("token_length", len(cfg.Token)).
		Str("search_url", cfg.SearchURL).
		Str("enhance_url", cfg.EnhanceURL).
		Msg("Environment OK")

	client := diffbot.NewClient(cfg)
	ctx := log.WithContext(context.Background())

	searchCtx, cancel := context.WithTimeout(ctx, *timeout)
	text, err := client.Search(searchCtx, diffbot.SearchQuery{Query: *query, Count: 3})
	cancel()
	if err != nil {
		reportFailure(log, "DQL search", err)
	} else {
		log.Info().Msg("DQL search OK")
		fmt.Println(text)
	}

	enhanceCtx, cancel := context.WithTimeout(ctx, *timeout)
	text, err = client.Enhance(enhanceCtx, diffbot.EnhanceRequest{
		Type: diffbot.EntityOrganization,
		Name: *org,
		Size: diffbot.DefaultEnhanceSize,
	})
	cancel()
	if err != nil {
		reportFailure(log, "Enhance", err)
	} else {
		log.Info().Msg("Enhance OK")
		fmt.Println(text)
	}
}

func reportFailure(log zerolog.Logger, call string, err error) {
	event := log.Error().Err(err).Str("call", call)
	if diffbot.IsKind(err, diffbot.KindUnauthorized) {
		event.Msg("Request rejected: check that DIFFBOT_TOKEN is valid")
		return
	}
	event.Msg("Request failed")
}
