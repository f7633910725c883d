package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"sealbox/internal/domain"
)

// Client talks to a relay server over JSON/HTTP.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a client for the relay at base. A nil httpClient
// falls back to http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: base, http: httpClient}
}

var _ domain.RelayClient = (*Client)(nil)

// RegisterKey publishes publicKey and returns the minted anonymous ID.
func (c *Client) RegisterKey(ctx context.Context, publicKey []byte) (string, error) {
	var out registerKeyResponse
	err := c.post(ctx, "/relay/keys", registerKeyRequest{PublicKey: publicKey}, &out)
	if err != nil {
		return "", err
	}
	return out.UserID, nil
}

// FetchKey returns the public key registered under userID.
func (c *Client) FetchKey(ctx context.Context, userID string) ([]byte, error) {
	var out fetchKeyResponse
	if err := c.get(ctx, "/relay/keys/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return out.PublicKey, nil
}

// SubmitMessage posts env for recipientID and returns the stored ID.
func (c *Client) SubmitMessage(ctx context.Context, recipientID string, env domain.EncryptedMessage, expirationMinutes int) (string, error) {
	req := submitRequest{
		EncryptedPayload:  env.EncryptedData,
		IV:                env.IV,
		EphemeralKey:      env.EphemeralKey,
		RecipientID:       recipientID,
		MessageID:         env.MessageID,
		ExpirationMinutes: expirationMinutes,
	}
	var out submitResponse
	if err := c.post(ctx, "/relay/messages", req, &out); err != nil {
		return "", err
	}
	return out.MessageID, nil
}

// FetchMessage retrieves an envelope by ID. A 404 means unknown, expired,
// or already consumed; the second return is false and err is nil.
func (c *Client) FetchMessage(ctx context.Context, messageID string, deleteAfterRead bool) (domain.EncryptedMessage, bool, error) {
	path := "/relay/messages/" + url.PathEscape(messageID)
	if !deleteAfterRead {
		path += "?deleteAfterRead=false"
	}
	var out fetchResponse
	err := c.get(ctx, path, &out)
	if isNotFound(err) {
		return domain.EncryptedMessage{}, false, nil
	}
	if err != nil {
		return domain.EncryptedMessage{}, false, err
	}
	return domain.EncryptedMessage{
		MessageID:     messageID,
		EncryptedData: out.EncryptedPayload,
		IV:            out.IV,
		EphemeralKey:  out.EphemeralKey,
		Timestamp:     out.Timestamp,
		ExpiresAt:     out.ExpiresAt,
	}, true, nil
}

// MarkRead acknowledges a message fetched with deleteAfterRead=false.
func (c *Client) MarkRead(ctx context.Context, messageID string) error {
	return c.post(ctx, "/relay/messages/"+url.PathEscape(messageID)+"/read", struct{}{}, nil)
}

// Health checks the relay's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	var out healthResponse
	if err := c.get(ctx, "/relay/health", &out); err != nil {
		return err
	}
	if out.Status != "operational" {
		return fmt.Errorf("relay status %q", out.Status)
	}
	return nil
}

// statusError reports a non-2xx response with method, URL, and status.
type statusError struct {
	method string
	url    string
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("relay %s %s: %s", e.method, e.url, e.status)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.code == http.StatusNotFound
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return &statusError{
			method: req.Method,
			url:    req.URL.String(),
			code:   resp.StatusCode,
			status: resp.Status,
		}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
