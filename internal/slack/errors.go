package slack

import (
	stderrors "errors"
	"fmt"

	"github.com/slack-go/slack"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

var ErrUserNotFound = stderrors.New("user not found")

// wrapError maps errors from the Slack Web API client to the
// provider error classes.
func wrapError(err error) error {
	var rateLimitedErr *slack.RateLimitedError
	var responseErr slack.SlackErrorResponse
	var statusErr slack.StatusCodeError
	switch {
	case stderrors.As(err, &rateLimitedErr):
		return &errors.RateLimitError{RetryAfter: rateLimitedErr.RetryAfter}
	case stderrors.As(err, &responseErr):
		return &errors.ProviderError{Code: responseErr.Err}
	case stderrors.As(err, &statusErr):
		return &errors.ProviderError{StatusCode: statusErr.Code, Message: statusErr.Status}
	default:
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
}
