// Package consultant calls the external travel-consultant chat service.
// Replies are opaque text; the core only appends them to a conversation
// log, never interprets them.
package consultant

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/travver/travver/pkg/remote"
)

// MaxHistory is the number of messages kept in a conversation log.
const MaxHistory = 50

// Message is one turn in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is the rolling chat log, newest last. It keeps at most
// MaxHistory messages.
type Conversation struct {
	Messages []Message
}

// Append records a turn, dropping the oldest messages past the cap.
func (c *Conversation) Append(role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
	if len(c.Messages) > MaxHistory {
		c.Messages = c.Messages[len(c.Messages)-MaxHistory:]
	}
}

// Request is a consultant question with its context.
type Request struct {
	Message string    `json:"message"`
	History []Message `json:"history"`
	TripID  *string   `json:"trip_id,omitempty"`
}

// Validate checks the request before sending.
func (r Request) Validate() error {
	if r.Message == "" {
		return fmt.Errorf("consultant: message required")
	}
	return nil
}

// Client talks to the consultant service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Client) post(ctx context.Context, path string, req Request) (*http.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("consultant: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("consultant: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, remote.Classify(err)
	}
	if err := remote.FromResponse(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// consultResponse is the service's reply envelope.
type consultResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// Consult sends the message and returns the single text reply.
func (c *Client) Consult(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	resp, err := c.post(ctx, "/agent/consult", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	c.logger().Debug("consult request", "status", resp.StatusCode, "elapsed", time.Since(start))

	var envelope consultResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("consultant: decode response: %w", err)
	}
	return envelope.Response, nil
}

// Stream sends the message and delivers the reply incrementally, one
// chunk per line, to fn. A non-nil error from fn stops the stream.
func (c *Client) Stream(ctx context.Context, req Request, fn func(chunk string) error) error {
	resp, err := c.post(ctx, "/agent/consult/stream", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return remote.Classify(fmt.Errorf("consultant: stream: %w", err))
	}
	return nil
}
