package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client delivers messages through the Telegram Bot API
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

// New creates new Client instance
func New(baseURL, token string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
		token:   token,
	}
}

type sendMessageRequest struct {
	ChatID      int64           `json:"chat_id"`
	Text        string          `json:"text"`
	ReplyMarkup json.RawMessage `json:"reply_markup,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Send posts sendMessage for the recipient. A failed delivery returns an
// error; the caller decides whether to log or propagate it.
func (c *Client) Send(ctx context.Context, chatID int64, text string, markup json.RawMessage) error {
	// POST /bot{token}/sendMessage
	url, err := url.JoinPath(c.baseURL, "bot"+c.token, "sendMessage")
	if err != nil {
		return err
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return err
	}

	sendResp := sendMessageResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return err
	}

	if !sendResp.OK {
		return fmt.Errorf("telegram api: %d %s", sendResp.ErrorCode, sendResp.Description)
	}

	return nil
}
