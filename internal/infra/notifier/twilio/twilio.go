// Package twilio delivers SMS messages through the Twilio Messages API.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/valwatch/internal/sender"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL = "https://api.twilio.com"

	// maxBodyLength is the Messages API body limit.
	maxBodyLength = 1600
)

// invalidNumberCodes are the Twilio error codes caused by the destination
// number.
var invalidNumberCodes = map[int]struct{}{
	21211: {}, // invalid 'To' number
	21610: {}, // recipient unsubscribed
	21614: {}, // not a mobile number
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type provider struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string
	httpClient *retryablehttp.Client
}

var _ sender.Provider = (*provider)(nil)

// Deliver sends msg.Body as an SMS to the E.164 number in msg.Target. Bodies
// over the API limit are cut at a line break.
func (p *provider) Deliver(ctx context.Context, msg sender.Message) (string, error) {
	form := url.Values{
		"To":   {msg.Target},
		"From": {p.from},
		"Body": {sender.Truncate(msg.Body, maxBodyLength)},
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.baseURL, p.accountSID)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.accountSID, p.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", sender.ErrTransientProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e apiError
		_ = json.NewDecoder(resp.Body).Decode(&e)

		if _, ok := invalidNumberCodes[e.Code]; ok {
			return "", fmt.Errorf("%w: [%d] %s", sender.ErrInvalidTarget, e.Code, e.Message)
		}
		return "", sender.StatusError(resp.StatusCode, e.Message)
	}

	var created struct {
		SID string `json:"sid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", sender.ErrProviderRejected, err)
	}

	return created.SID, nil
}

// Option configures the provider.
type Option func(*provider)

// WithBaseURL overrides the Twilio API endpoint.
func WithBaseURL(u string) Option {
	return func(p *provider) {
		p.baseURL = strings.TrimRight(u, "/")
	}
}

// New creates a Twilio provider sending from the given number.
func New(accountSID, authToken, from string, httpClient *retryablehttp.Client, opts ...Option) *provider {
	p := &provider{
		baseURL:    defaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
