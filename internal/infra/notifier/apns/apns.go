// Package apns delivers push notifications through the Apple Push
// Notification service using token-based (.p8 key) authentication.
package apns

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/valwatch/internal/sender"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	ProductionURL  = "https://api.push.apple.com"
	DevelopmentURL = "https://api.sandbox.push.apple.com"

	// tokenTTL is kept below the one hour APNS accepts a provider token for.
	tokenTTL = 50 * time.Minute
)

// invalidReasons are the APNS failure reasons caused by the device token.
var invalidReasons = map[string]struct{}{
	"BadDeviceToken":         {},
	"DeviceTokenNotForTopic": {},
	"Unregistered":           {},
}

// Credentials identify the provider key.
type Credentials struct {
	KeyID  string
	TeamID string
	Key    *ecdsa.PrivateKey
}

// ParseKey parses a PEM encoded .p8 signing key.
func ParseKey(pem []byte) (*ecdsa.PrivateKey, error) {
	return jwt.ParseECPrivateKeyFromPEM(pem)
}

type provider struct {
	baseURL    string
	topic      string
	creds      Credentials
	httpClient *retryablehttp.Client
	now        func() time.Time

	mu       sync.Mutex
	token    string
	issuedAt time.Time
}

var _ sender.Provider = (*provider)(nil)

// bearer returns the cached provider token, signing a new one when it is
// older than tokenTTL.
func (p *provider) bearer() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.token != "" && now.Sub(p.issuedAt) < tokenTTL {
		return p.token, nil
	}

	t := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"iss": p.creds.TeamID,
		"iat": now.Unix(),
	})
	t.Header["kid"] = p.creds.KeyID

	signed, err := t.SignedString(p.creds.Key)
	if err != nil {
		return "", fmt.Errorf("sign provider token: %w", err)
	}

	p.token, p.issuedAt = signed, now
	return signed, nil
}

// Deliver pushes an alert to the device token in msg.Target.
func (p *provider) Deliver(ctx context.Context, msg sender.Message) (string, error) {
	token, err := p.bearer()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(map[string]any{
		"aps": map[string]any{
			"alert": map[string]string{
				"title": msg.Subject,
				"body":  msg.Body,
			},
			"sound": "default",
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/3/device/%s", p.baseURL, msg.Target)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apns-topic", p.topic)
	req.Header.Set("apns-push-type", "alert")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", sender.ErrTransientProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return resp.Header.Get("apns-id"), nil
	}

	var failure struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&failure)

	if _, ok := invalidReasons[failure.Reason]; ok || resp.StatusCode == http.StatusGone {
		return "", fmt.Errorf("%w: %s", sender.ErrInvalidTarget, failure.Reason)
	}

	return "", sender.StatusError(resp.StatusCode, failure.Reason)
}

// Option configures the provider.
type Option func(*provider)

// WithBaseURL overrides the APNS endpoint. Defaults to ProductionURL.
func WithBaseURL(url string) Option {
	return func(p *provider) {
		p.baseURL = strings.TrimRight(url, "/")
	}
}

// New creates an APNS provider pushing to the app bundle id topic.
func New(creds Credentials, topic string, httpClient *retryablehttp.Client, opts ...Option) *provider {
	p := &provider{
		baseURL:    ProductionURL,
		topic:      topic,
		creds:      creds,
		httpClient: httpClient,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
