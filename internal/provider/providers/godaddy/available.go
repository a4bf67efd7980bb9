package godaddy

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ykanggit/goDaddy-API/internal/domain"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

// IsAvailable returns whether the domain name can be registered.
// Each time the API answers with a retry hint, it waits for the
// indicated duration and sends the same request again.
func (c *Client) IsAvailable(ctx context.Context, domainName string) (
	available bool, err error) {
	domainName = domain.Normalize(domainName)
	err = domain.CheckDomain(domainName)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	for {
		available, err = c.checkAvailable(ctx, domainName)
		var rateLimitErr *errors.RateLimitError
		if err == nil || !stderrors.As(err, &rateLimitErr) {
			return available, err
		}

		c.logger.Debug(fmt.Sprintf("availability of %s: waiting %s before retrying",
			domainName, rateLimitErr.RetryAfter))
		err = c.sleep(ctx, rateLimitErr.RetryAfter)
		if err != nil {
			return false, fmt.Errorf("waiting before retrying: %w", err)
		}
	}
}

type availableData struct {
	Available *bool  `json:"available"`
	Domain    string `json:"domain"`
	errorData
}

func (c *Client) checkAvailable(ctx context.Context, domainName string) (
	available bool, err error) {
	u := c.baseURL.JoinPath("v1", "domains", "available")
	values := url.Values{}
	values.Set("domain", domainName)
	u.RawQuery = values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(request)

	response, err := c.client.Do(request)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return false, fmt.Errorf("%w: reading body: %w", errors.ErrNetwork, err)
	}

	var data availableData
	jsonErr := json.Unmarshal(b, &data)
	switch {
	case jsonErr == nil && data.RetryAfterSec != nil:
		return false, &errors.RateLimitError{
			StatusCode: response.StatusCode,
			RetryAfter: retryAfter(*data.RetryAfterSec),
			Message:    data.Message,
		}
	case response.StatusCode != http.StatusOK:
		return false, parseErrorBody(response.StatusCode, b)
	case jsonErr != nil:
		return false, fmt.Errorf("%w: %w: %w", errors.ErrProvider, errors.ErrUnmarshalResponse, jsonErr)
	case data.Available == nil:
		return false, fmt.Errorf("%w: %w: no available field in %s",
			errors.ErrProvider, errors.ErrUnmarshalResponse, b)
	}
	return *data.Available, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
