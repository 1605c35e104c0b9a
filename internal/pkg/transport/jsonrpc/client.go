// Package jsonrpc is a JSON-RPC 2.0 client over HTTP. Retries and timeouts are
// left to the supplied *http.Client, normally the standard view of a
// transport/http client.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError wraps every error object sent back by the node.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus is returned for non-2xx HTTP answers.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrIDMismatch is returned when the reply does not echo the request id.
	ErrIDMismatch = errors.New("response id mismatch")
)

// RPCError is the error object of a JSON-RPC reply.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *RPCError) Unwrap() error {
	return ErrProviderReturnedError
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	ID     string          `json:"id"`
	Error  *RPCError       `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Client sends single JSON-RPC calls.
type Client interface {
	// Fetch calls method with params and returns the raw result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

var _ Client = (*client)(nil)

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	id := uuid.NewString()
	body, err := json.Marshal(request{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if data.Error != nil {
		return nil, data.Error
	}

	if data.ID != id {
		return nil, fmt.Errorf("%w: sent %s, got %q", ErrIDMismatch, id, data.ID)
	}

	return data.Result, nil
}

// Call fetches method through c and decodes the result into T.
func Call[T any](ctx context.Context, c Client, method string, params ...any) (T, error) {
	var out T

	raw, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s result: %w", method, err)
	}

	return out, nil
}

// NewClient returns a Client posting to endpoint with httpClient.
func NewClient(httpClient *http.Client, endpoint string) *client {
	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}
