package subsonic

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	BaseURL    string       // Optional: Server base URL (defaults to DefaultBaseURL)
	Username   string       // Required: Subsonic username
	Password   string       // Required: Subsonic password (hashed before transmission, never sent in clear)
	HTTPClient *http.Client // Optional: HTTP client (defaults to a pooled client, see NewHTTPClient)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Subsonic API operations.
type Client struct {
	baseURL    string
	username   string
	creds      credentials
	httpClient *http.Client
	logger     Logger

	playlists *PlaylistService
	albums    *AlbumService
}

const (
	// DefaultBaseURL is the default server endpoint (Navidrome's default port).
	DefaultBaseURL = "http://localhost:4533"

	// apiVersion is the Subsonic API version sent as the "v" parameter.
	apiVersion = "1.14.0"

	// clientName identifies this client to the server via the "c" parameter.
	clientName = "graplsub"

	// userAgent is sent on every request.
	userAgent = "graplsub/0.1.0"
)

// NewClient creates a new Subsonic API client.
//
// Credentials (the random salt and the salted password hash) are derived
// once here and reused for the lifetime of the client.
//
// Returns an error if required configuration (Username, Password) is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("subsonic: Username is required")
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("subsonic: Password is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		username:   cfg.Username,
		creds:      newCredentials(cfg.Password),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}

	c.playlists = &PlaylistService{client: c}
	c.albums = &AlbumService{client: c}

	return c, nil
}

// NewHTTPClient returns the HTTP client used by default: a 30 second total
// request timeout, a 5 second connect timeout, and a small idle connection
// pool recycled after 90 seconds.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Playlists returns the playlist service.
func (c *Client) Playlists() *PlaylistService {
	return c.playlists
}

// Albums returns the album service.
func (c *Client) Albums() *AlbumService {
	return c.albums
}

// Ping checks that the server is reachable and accepts the configured
// credentials. It returns nil on an "ok" response and the usual transport
// or validation error otherwise.
func (c *Client) Ping(ctx context.Context) error {
	resp, raw, err := c.call(ctx, "ping", nil)
	if err != nil {
		return err
	}

	return validate(resp, raw, PayloadNone)
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
