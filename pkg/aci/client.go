// Package aci is a client for the ACI.dev function platform: it fetches
// function definitions from the registry and executes functions on behalf
// of linked accounts.
package aci

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefinitionFormat is the only definition format this client decodes.
const DefinitionFormat = "openai"

// Client talks to the ACI platform. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a client from cfg. A missing API key is a configuration
// error and fails immediately.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	cfg = cfg.WithDefaults()
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func functionPath(name, action string) string {
	return "/functions/" + url.PathEscape(name) + "/" + action
}

// GetDefinition fetches a function definition from the registry.
// An unknown function yields an error matching ErrNotFound.
func (c *Client) GetDefinition(ctx context.Context, functionName string) (*FunctionDefinition, error) {
	query := url.Values{}
	query.Set("format", DefinitionFormat)
	data, err := c.getJSON(ctx, functionPath(functionName, "definition"), query)
	if err != nil {
		return nil, err
	}
	return ParseFunctionDefinition(data)
}

// Execute runs a function for a linked account and returns the raw
// execution result document.
func (c *Client) Execute(ctx context.Context, functionName string, args map[string]any, linkedAccountOwnerID string) (string, error) {
	if args == nil {
		args = map[string]any{}
	}
	data, err := c.postJSON(ctx, functionPath(functionName, "execute"), ExecuteRequest{
		FunctionInput:        args,
		LinkedAccountOwnerID: linkedAccountOwnerID,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SearchFunctions searches the registry and returns the raw result list.
func (c *Client) SearchFunctions(ctx context.Context, params SearchParams) (string, error) {
	query := url.Values{}
	for _, app := range params.AppNames {
		if app = strings.TrimSpace(app); app != "" {
			query.Add("app_names", app)
		}
	}
	if intent := strings.TrimSpace(params.Intent); intent != "" {
		query.Set("intent", intent)
	}
	query.Set("allowed_apps_only", strconv.FormatBool(params.AllowedAppsOnly))
	query.Set("format", DefinitionFormat)
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	data, err := c.getJSON(ctx, "/functions/search", query)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
