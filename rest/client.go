package rest

import (
	"net/http"
	"strings"
	"time"

	"cryptofacilities/config"
	"cryptofacilities/logger"
)

const (
	// DefaultBaseURL is the production REST host.
	DefaultBaseURL = "https://www.cryptofacilities.com/derivatives"

	apiPrefix = "/api/v3/"
)

// Client is a synchronous client for the Crypto Facilities derivatives
// REST API. Every method performs a single request/response round trip;
// nothing is retried or cached. The exchange limits usage to one call
// every 0.1 seconds per IP address and rejects the excess with
// apiLimitExceeded; the client does not throttle, callers pace their
// own requests.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
	log        *logger.Logger
	nonce      *nonceCounter
}

// New returns a client for baseURL (DefaultBaseURL when empty). Pass
// the zero Credentials for public-only access; authenticated endpoints
// will then fail with ErrNoCredentials.
func New(baseURL string, creds Credentials, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log:   log,
		nonce: newNonceCounter(),
	}
}

// NewFromConfig builds a client from a loaded config. A nil log means
// the config's log section decides where and how much to log.
func NewFromConfig(cfg *config.Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.New(logger.Config{
			Level:      cfg.Log.Level,
			Format:     cfg.Log.Format,
			Output:     cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		})
	}

	c := New(cfg.Exchange.BaseURL, Credentials{
		PublicKey:  cfg.Exchange.PublicKey,
		PrivateKey: cfg.Exchange.PrivateKey,
	}, log)

	if cfg.Client.Timeout > 0 {
		c.httpClient.Timeout = cfg.Client.Timeout
	}

	return c
}
