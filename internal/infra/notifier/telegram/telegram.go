// Package telegram delivers messages through the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabapcia/valwatch/internal/sender"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL = "https://api.telegram.org"

	// maxTextLength is the sendMessage text limit.
	maxTextLength = 4096
)

// response is the envelope returned by every Bot API method.
type response struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	ErrorCode   int    `json:"error_code"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

type provider struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
}

var _ sender.Provider = (*provider)(nil)

// classify maps a failed Bot API call to a sender error. Unknown or blocked
// chats are invalid targets.
func classify(status int, description string) error {
	switch {
	case status == http.StatusForbidden,
		status == http.StatusBadRequest && strings.Contains(strings.ToLower(description), "chat not found"):
		return fmt.Errorf("%w: %s", sender.ErrInvalidTarget, description)
	default:
		return sender.StatusError(status, description)
	}
}

// Deliver sends msg.Body to the chat id in msg.Target. HTML messages are sent
// with the HTML parse mode. Bodies over the Bot API limit are cut at a line
// break.
func (p *provider) Deliver(ctx context.Context, msg sender.Message) (string, error) {
	payload := map[string]any{
		"chat_id":                  msg.Target,
		"text":                     sender.Truncate(msg.Body, maxTextLength),
		"disable_web_page_preview": true,
	}
	if msg.HTML {
		payload["parse_mode"] = "HTML"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", p.baseURL, p.token)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", sender.ErrTransientProvider, err)
	}
	defer resp.Body.Close()

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", sender.StatusError(resp.StatusCode, resp.Status)
		}
		return "", fmt.Errorf("%w: decode response: %w", sender.ErrProviderRejected, err)
	}

	if resp.StatusCode != http.StatusOK || !r.OK {
		status := resp.StatusCode
		if r.ErrorCode != 0 {
			status = r.ErrorCode
		}
		return "", classify(status, r.Description)
	}

	return strconv.FormatInt(r.Result.MessageID, 10), nil
}

// Option configures the provider.
type Option func(*provider)

// WithBaseURL overrides the Bot API endpoint.
func WithBaseURL(url string) Option {
	return func(p *provider) {
		p.baseURL = strings.TrimRight(url, "/")
	}
}

// New creates a Telegram provider for the bot identified by token.
func New(token string, httpClient *retryablehttp.Client, opts ...Option) *provider {
	p := &provider{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
