package subsonic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// param is a single query parameter. Parameters are kept as an ordered
// slice rather than url.Values so that requests are byte-stable: the
// protocol doesn't care about ordering, but tests do.
type param struct {
	key   string
	value string
}

// perRequestTimeout bounds each individual call, separately from the
// client-wide settings configured in NewHTTPClient.
const perRequestTimeout = 5 * time.Second

// call makes an HTTP GET request to the given API endpoint.
//
// It handles:
// - URL construction with the common auth parameters (u, t, s, f, v, c)
//   followed by the call's own parameters in the order given
// - HTTP status classification (200 / 404 / other / network failure)
// - JSON envelope decoding
// - Context cancellation and the per-request timeout
//
// There are no retries; the first outcome is the caller's. On success the
// raw body text is returned alongside the decoded envelope so that
// validation errors can quote it.
func (c *Client) call(ctx context.Context, endpoint string, params []param) (*Response, string, error) {
	resource := c.baseURL + "/rest/" + endpoint

	auth := []param{
		{"u", c.username},
		{"t", c.creds.token},
		{"s", c.creds.salt},
		{"f", "json"},
		{"v", apiVersion},
		{"c", clientName},
	}

	var query strings.Builder
	for i, p := range append(auth, params...) {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(p.key)
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(p.value))
	}

	ctx, cancel := context.WithTimeout(ctx, perRequestTimeout)
	defer cancel()

	c.logDebugf("subsonic: calling %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resource+"?"+query.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("subsonic: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, "", &NetworkError{Err: err}
		}

		var envelope topLevel
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, "", &MalformedResponseError{Body: string(body), Err: err}
		}

		c.logDebugf("subsonic: %s succeeded", endpoint)
		return &envelope.SubsonicResponse, string(body), nil

	case resp.StatusCode == http.StatusNotFound:
		// Report the URL without its query string: the query carries the
		// auth token and salt.
		return nil, "", &NotFoundError{Resource: resource}

	default:
		return nil, "", &HTTPError{StatusCode: resp.StatusCode, URL: resource}
	}
}
