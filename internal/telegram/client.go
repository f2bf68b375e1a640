// Package telegram relays leads to the operator's Telegram chat and runs
// the long-poll listener that learns which chat to deliver into.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/manptz/realty-landing/pkg/logging"
)

const (
	defaultBaseURL     = "https://api.telegram.org"
	defaultSendTimeout = 10 * time.Second
	defaultPollTimeout = 30 * time.Second
)

// Config controls how the Bot API client behaves.
type Config struct {
	Token       string
	BaseURL     string
	SendTimeout time.Duration
	PollTimeout time.Duration
	HTTPClient  *http.Client
	Logger      *logging.Logger
}

// Client wraps the two Bot API methods this service needs: sendMessage
// and getUpdates.
type Client struct {
	token       string
	baseURL     string
	sendTimeout time.Duration
	pollTimeout time.Duration
	httpClient  *http.Client
	logger      *logging.Logger
}

// New creates a configured Client with sane defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram: bot token is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	sendTimeout := cfg.SendTimeout
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// No client-level timeout: getUpdates long-polls, so each call
		// carries its own context deadline instead.
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		token:       cfg.Token,
		baseURL:     baseURL,
		sendTimeout: sendTimeout,
		pollTimeout: pollTimeout,
		httpClient:  httpClient,
		logger:      logger,
	}, nil
}

// SendMessageRequest is an outbound sendMessage call.
type SendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// Update is one getUpdates event.
type Update struct {
	UpdateID      int64    `json:"update_id"`
	Message       *Message `json:"message"`
	EditedMessage *Message `json:"edited_message"`
}

// Message carries the fields the handshake listener cares about.
type Message struct {
	Chat Chat   `json:"chat"`
	Text string `json:"text"`
}

// Chat identifies where a message came from.
type Chat struct {
	ID int64 `json:"id"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// SendMessage delivers one message. Any transport error or a non-ok API
// response is returned as an error; there are no retries at this layer.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) error {
	ctx, cancel := context.WithTimeout(ctx, c.sendTimeout)
	defer cancel()

	_, err := c.invoke(ctx, "sendMessage", req)
	return err
}

// GetUpdates long-polls for new inbound events starting at offset. The
// call blocks up to the configured poll timeout server-side; the context
// deadline adds a small margin on top.
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	ctx, cancel := context.WithTimeout(ctx, c.pollTimeout+5*time.Second)
	defer cancel()

	body := struct {
		Offset  int64 `json:"offset"`
		Timeout int64 `json:"timeout"`
	}{
		Offset:  offset,
		Timeout: int64(c.pollTimeout / time.Second),
	}
	result, err := c.invoke(ctx, "getUpdates", body)
	if err != nil {
		return nil, err
	}
	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("telegram: decode updates: %w", err)
	}
	return updates, nil
}

func (c *Client) invoke(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("telegram: marshal %s body: %w", method, err)
	}
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("telegram: build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram: %s: %w", method, err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("telegram: decode %s response: %w", method, err)
	}
	if !out.OK {
		return nil, fmt.Errorf("telegram: %s rejected: status %d: %s", method, resp.StatusCode, out.Description)
	}
	return out.Result, nil
}
