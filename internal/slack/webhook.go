// Package slack sends messages to Slack through an incoming webhook
// or through the Web API with a bot token.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/slack-go/slack"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
	"github.com/ykanggit/goDaddy-API/internal/provider/headers"
	"github.com/ykanggit/goDaddy-API/internal/provider/utils"
)

// Message is the incoming webhook payload, see
// https://api.slack.com/reference/messaging/payload
type Message struct {
	Text        string             `json:"text"`
	Blocks      *slack.Blocks      `json:"blocks,omitempty"`
	Attachments []slack.Attachment `json:"attachments,omitempty"`
	ThreadTS    string             `json:"thread_ts,omitempty"`
	Mrkdwn      *bool              `json:"mrkdwn,omitempty"`
}

type Webhook struct {
	client *http.Client
	url    string
}

func NewWebhook(client *http.Client, webhookURL string) (webhook *Webhook, err error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing webhook URL: %w", errors.ErrValidation, err)
	} else if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("%w: webhook URL scheme %q is not http or https",
			errors.ErrValidation, u.Scheme)
	}

	return &Webhook{
		client: client,
		url:    webhookURL,
	}, nil
}

func (w *Webhook) String() string {
	return "slack webhook"
}

// Send posts a plain text message.
func (w *Webhook) Send(ctx context.Context, message string) (err error) {
	return w.Post(ctx, Message{Text: message})
}

// Post posts the message to the webhook. Slack answers with a plain
// text body, "ok" on success or an error code otherwise.
func (w *Webhook) Post(ctx context.Context, message Message) (err error) {
	body := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(body)
	err = encoder.Encode(message)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrRequestEncode, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	headers.SetUserAgent(request)
	headers.SetContentType(request, "application/json")

	response, err := w.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}

	s, err := utils.ReadAndCleanBody(response.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}

	if response.StatusCode != http.StatusOK {
		return &errors.ProviderError{
			StatusCode: response.StatusCode,
			Message:    utils.ToSingleLine(s),
		}
	}

	return nil
}
