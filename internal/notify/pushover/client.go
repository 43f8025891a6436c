package pushover

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"phillies-updater/internal/notify"
	"phillies-updater/internal/providers"
)

const (
	defaultEndpoint    = "https://api.pushover.net/1/messages.json"
	defaultHTTPTimeout = 15 * time.Second
)

// ProviderName identifies this transport in logs and metrics.
const ProviderName = "pushover"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the Pushover client reaches the push endpoint.
type Config struct {
	Token      string
	UserKey    string
	Endpoint   string
	HTTPClient *http.Client
}

// Client delivers events to the Pushover message endpoint. One Client is
// constructed per process and reused for every push in the cycle.
type Client struct {
	token      string
	userKey    string
	endpoint   string
	httpClient httpDoer
}

// NewClient constructs a Pushover client with the provided configuration.
func NewClient(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	var httpClient httpDoer = &http.Client{Timeout: defaultHTTPTimeout}
	if cfg.HTTPClient != nil {
		httpClient = cfg.HTTPClient
	}
	return &Client{
		token:      cfg.Token,
		userKey:    cfg.UserKey,
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Send posts the event as an urlencoded form. Non-2xx responses surface as
// a NetworkError; callers log and move on.
func (c *Client) Send(ctx context.Context, event notify.Event) error {
	form := url.Values{}
	form.Set("token", c.token)
	form.Set("user", c.userKey)
	form.Set("message", event.Message)
	form.Set("title", event.ResolvedTitle())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.NetworkError{Provider: ProviderName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &providers.NetworkError{Provider: ProviderName, StatusCode: resp.StatusCode}
	}
	return nil
}
