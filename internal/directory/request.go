package directory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/custodia-labs/dirctl/internal/core/domain"
	"github.com/custodia-labs/dirctl/internal/logger"
)

// apiRequest describes one outbound call. Ephemeral, built per method.
type apiRequest struct {
	method string
	url    string
	body   any
}

// Result is the discriminated outcome of a successful API call.
// Exactly one payload field is populated, selected by status code and
// response content type.
type Result struct {
	StatusCode int
	// Object holds the decoded payload of an application/json response.
	Object map[string]any
	// Properties holds name/value pairs from an application/atom+xml feed.
	Properties map[string]string
	// Text holds the raw body for any other content type, unchanged.
	Text string
	// NoContent marks a 204 response; the body was never parsed.
	NoContent bool
}

// do executes an authenticated request. This is the only place where
// authentication, error classification, and content negotiation occur.
//
// On a 401 the token is refreshed once and the request resent once with
// the new Authorization header; a second 401 classifies like any other
// failure.
func (c *Client) do(ctx context.Context, req apiRequest) (*Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	tok, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.WithFields(logrus.Fields{
		"req":    uuid.NewString()[:8],
		"method": req.method,
		"url":    req.url,
	})
	log.Debug("sending request")

	resp, err := c.send(ctx, req, tok.Type(), tok.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Single refresh-and-resend. Not a retry loop.
		resp.Body.Close()
		log.Debug("401 received, refreshing token")

		tok, err = c.tokens.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		resp, err = c.send(ctx, req, tok.Type(), tok.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", domain.ErrTransport, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		c.limiter.RecordRateLimitError(retryAfter)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status", resp.Status).Debug("request failed")
		return nil, classifyFailure(resp.Status, resp.StatusCode, body)
	}

	if resp.StatusCode == http.StatusNoContent {
		return &Result{StatusCode: resp.StatusCode, NoContent: true}, nil
	}

	return decodeBody(resp.StatusCode, resp.Header.Get("Content-Type"), body)
}

// send serialises and transmits one request attempt. The body is
// re-serialised per attempt so the resend after a refresh is identical.
func (c *Client) send(ctx context.Context, req apiRequest, tokenType, accessToken string) (*http.Response, error) {
	var rdr io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, rdr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Authorization", tokenType+" "+accessToken)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(httpReq)
}

// decodeBody dispatches on the response content type.
func decodeBody(statusCode int, contentType string, body []byte) (*Result, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}

	res := &Result{StatusCode: statusCode}
	switch mediaType {
	case "application/json":
		if err := json.Unmarshal(body, &res.Object); err != nil {
			return nil, fmt.Errorf("%w: decode json response: %v", domain.ErrTransport, err)
		}
	case "application/atom+xml":
		props, err := parseFeedProperties(body)
		if err != nil {
			return nil, err
		}
		res.Properties = props
	default:
		res.Text = string(body)
	}
	return res, nil
}
