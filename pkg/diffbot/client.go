package diffbot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kgtools/diffbot-mcp/pkg/shared/httputil"
)

// Client calls the Diffbot APIs and renders responses as readable text.
// It holds no mutable state; concurrent calls are independent.
type Client struct {
	cfg *Config
}

// NewClient creates a client for the given config, filling defaults.
func NewClient(cfg *Config) *Client {
	return &Client{cfg: cfg.WithDefaults()}
}

// Search runs a DQL query and returns a formatted result listing.
func (c *Client) Search(ctx context.Context, q SearchQuery) (string, error) {
	params, err := BuildSearchParams(c.cfg.Token, q)
	if err != nil {
		return "", err
	}
	doc, err := c.getJSON(ctx, c.cfg.SearchURL, params)
	if err != nil {
		return "", err
	}
	return FormatSearchResults(q.Query, q.Offset, doc), nil
}

// Enhance resolves a partial person or organization against the Knowledge
// Graph and returns a formatted report of the candidate matches.
func (c *Client) Enhance(ctx context.Context, req EnhanceRequest) (string, error) {
	params, err := BuildEnhanceParams(c.cfg.Token, req)
	if err != nil {
		return "", err
	}
	doc, err := c.getJSON(ctx, c.cfg.EnhanceURL, params)
	if err != nil {
		return "", err
	}
	return FormatEnhanceResults(req.Type, doc)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values) (any, error) {
	log := zerolog.Ctx(ctx)
	start := time.Now()
	body, status, err := httputil.GetJSON(ctx, endpoint, params, nil, c.cfg.TimeoutSecs)
	if err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint).Msg("Diffbot request failed")
		return nil, &Error{Kind: KindRemoteError, Message: err.Error(), cause: err}
	}
	log.Debug().
		Str("endpoint", endpoint).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("Diffbot request finished")
	switch {
	case status == http.StatusUnauthorized:
		return nil, &Error{Kind: KindUnauthorized, Status: status, Message: "invalid or missing Diffbot token"}
	case status < 200 || status >= 300:
		return nil, &Error{Kind: KindRemoteError, Status: status, Message: strings.TrimSpace(string(body))}
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &Error{
			Kind:    KindMalformedResponse,
			Status:  status,
			Message: fmt.Sprintf("response is not valid JSON: %v", err),
			cause:   err,
		}
	}
	return doc, nil
}
