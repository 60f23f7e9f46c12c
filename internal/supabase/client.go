// Package supabase wraps the Supabase client used by the api-server. Nothing
// in session ingestion depends on it.
package supabase

import (
	"errors"
	"strings"

	supa "github.com/supabase-community/supabase-go"
)

var ErrNotConfigured = errors.New("supabase is not configured: set SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY")

type Client struct {
	client *supa.Client
	url    string
}

// New fails immediately when either setting is missing.
func New(url, serviceKey string) (*Client, error) {
	url = strings.TrimSpace(url)
	serviceKey = strings.TrimSpace(serviceKey)
	if url == "" || serviceKey == "" {
		return nil, ErrNotConfigured
	}

	c, err := supa.NewClient(url, serviceKey, &supa.ClientOptions{})
	if err != nil {
		return nil, err
	}
	return &Client{client: c, url: url}, nil
}

func (c *Client) Client() *supa.Client { return c.client }

func (c *Client) ProjectURL() string { return c.url }
