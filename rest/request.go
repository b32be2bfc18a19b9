package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNoCredentials is returned when an authenticated endpoint is
// called on a client constructed without an API key pair.
var ErrNoCredentials = errors.New("authenticated endpoint called without credentials")

// APIError is a rejection by the exchange: a non-2xx status, or a
// result:"error" envelope in the response body. Code carries the
// exchange's error string (apiLimitExceeded, nonceBelowThreshold, ...).
type APIError struct {
	Endpoint string
	Status   int
	Code     string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: http status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s: %s (http %d)", e.Endpoint, e.Code, e.Status)
}

// doRequest performs one round trip against endpoint. The encoded
// params string is sent as the query string for GET and as the
// form-encoded body for POST; the same string is what gets signed.
// Signing happens before any network I/O, so a malformed private key
// or missing credentials never reach the wire.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, auth bool, out any) error {
	endpointPath := apiPrefix + endpoint
	postData := ""
	if len(params) > 0 {
		postData = params.Encode()
	}

	urlStr := c.baseURL + endpointPath
	var bodyReader io.Reader
	if method == http.MethodPost {
		if postData != "" {
			bodyReader = strings.NewReader(postData)
		}
	} else if postData != "" {
		urlStr += "?" + postData
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}

	if auth {
		if c.creds.Empty() {
			return ErrNoCredentials
		}

		nonce := c.nonce.Next()
		authent, err := signRequest(c.creds.PrivateKey, nonce, endpointPath, postData)
		if err != nil {
			return fmt.Errorf("%s: %w", endpoint, err)
		}

		req.Header.Set("APIKey", c.creds.PublicKey)
		req.Header.Set("Nonce", nonce)
		req.Header.Set("Authent", authent)
	}

	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	requestID := uuid.NewString()
	c.log.WithRequestID(requestID).WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
		"auth":     auth,
	}).Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithRequestID(requestID).WithError(err).Warn("request failed")
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", endpoint, err)
	}

	c.log.WithRequestID(requestID).WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"bytes":  len(data),
	}).Debug("received response")

	httpFailure := resp.StatusCode < 200 || resp.StatusCode > 299

	var envelope struct {
		Result string `json:"result"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		if httpFailure {
			return &APIError{Endpoint: endpoint, Status: resp.StatusCode}
		}
		return fmt.Errorf("%s: decode response: %w", endpoint, err)
	}

	if httpFailure || envelope.Result != "success" {
		code := envelope.Error
		if code == "" && envelope.Result != "success" {
			// The error field can be absent even on rejection.
			code = "unspecifiedError"
		}
		return &APIError{Endpoint: endpoint, Status: resp.StatusCode, Code: code}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", endpoint, err)
	}
	return nil
}
