// Package healthchecksio reports the start and the exit status of
// each run to healthchecks.io, so a run that never happens or fails
// raises an alert there.
package healthchecksio

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
	"github.com/ykanggit/goDaddy-API/internal/provider/headers"
	"github.com/ykanggit/goDaddy-API/internal/provider/utils"
)

const DefaultBaseURL = "https://hc-ping.com"

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it acts as no-op implementation.
func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		uuid:       uuid,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
}

type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Fail  State = "fail"
	Exit0 State = "0"
	Exit1 State = "1"
)

// Ping signals the state of the run identified by runID. The message,
// if any, is sent as the request body and shown in the check events.
func (c *Client) Ping(ctx context.Context, state State, runID, message string) (err error) {
	if c.uuid == "" {
		return nil
	}

	u, err := url.Parse(c.baseURL + "/" + c.uuid)
	if err != nil {
		return fmt.Errorf("%w: parsing URL: %w", errors.ErrValidation, err)
	}
	if state != Ok {
		u = u.JoinPath(string(state))
	}
	if runID != "" {
		values := url.Values{}
		values.Set("rid", runID)
		u.RawQuery = values.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(),
		strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	headers.SetUserAgent(request)
	headers.SetContentType(request, "text/plain")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}

	body, err := utils.ReadAndCleanBody(response.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}

	if response.StatusCode != http.StatusOK {
		return &errors.ProviderError{
			StatusCode: response.StatusCode,
			Message:    utils.ToSingleLine(body),
		}
	}

	return nil
}
