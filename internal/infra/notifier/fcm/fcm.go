// Package fcm delivers push notifications through the Firebase Cloud
// Messaging HTTP endpoint authenticated with a server key.
package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gabapcia/valwatch/internal/sender"

	"github.com/hashicorp/go-retryablehttp"
)

const DefaultURL = "https://fcm.googleapis.com/fcm/send"

type response struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		MessageID string `json:"message_id"`
		Error     string `json:"error"`
	} `json:"results"`
}

type provider struct {
	url        string
	serverKey  string
	httpClient *retryablehttp.Client
}

var _ sender.Provider = (*provider)(nil)

func classify(reason string) error {
	switch reason {
	case "NotRegistered", "InvalidRegistration", "MissingRegistration", "MismatchSenderId":
		return fmt.Errorf("%w: %s", sender.ErrInvalidTarget, reason)
	case "Unavailable", "InternalServerError", "DeviceMessageRateExceeded":
		return fmt.Errorf("%w: %s", sender.ErrTransientProvider, reason)
	default:
		return fmt.Errorf("%w: %s", sender.ErrProviderRejected, reason)
	}
}

func (p *provider) Deliver(ctx context.Context, msg sender.Message) (string, error) {
	body, err := json.Marshal(map[string]any{
		"to": msg.Target,
		"notification": map[string]string{
			"title": msg.Subject,
			"body":  msg.Body,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "key="+p.serverKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", sender.ErrTransientProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", sender.StatusError(resp.StatusCode, resp.Status)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", sender.ErrProviderRejected, err)
	}

	if len(r.Results) == 0 {
		return "", fmt.Errorf("%w: empty result", sender.ErrProviderRejected)
	}

	if result := r.Results[0]; result.Error != "" {
		return "", classify(result.Error)
	}

	return r.Results[0].MessageID, nil
}

// Option configures the provider.
type Option func(*provider)

// WithURL overrides the send endpoint. Defaults to DefaultURL.
func WithURL(url string) Option {
	return func(p *provider) {
		p.url = url
	}
}

// New creates an FCM provider authenticated with serverKey.
func New(serverKey string, httpClient *retryablehttp.Client, opts ...Option) *provider {
	p := &provider{
		url:        DefaultURL,
		serverKey:  serverKey,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
