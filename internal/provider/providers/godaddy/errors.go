package godaddy

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
	"github.com/ykanggit/goDaddy-API/internal/provider/utils"
)

type errorData struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	RetryAfterSec *int   `json:"retryAfterSec"`
}

// makeResponseError returns a *errors.RateLimitError if the response
// body carries a retry hint, and a *errors.ProviderError otherwise.
func makeResponseError(response *http.Response) error {
	b, err := io.ReadAll(response.Body)
	if err != nil {
		return &errors.ProviderError{
			StatusCode: response.StatusCode,
			Message:    "reading body: " + err.Error(),
		}
	}
	return parseErrorBody(response.StatusCode, b)
}

func parseErrorBody(statusCode int, body []byte) error {
	var data errorData
	jsonErr := json.Unmarshal(body, &data)
	if jsonErr != nil {
		return &errors.ProviderError{
			StatusCode: statusCode,
			Message:    utils.ToSingleLine(string(body)),
		}
	}

	if data.RetryAfterSec != nil {
		return &errors.RateLimitError{
			StatusCode: statusCode,
			RetryAfter: retryAfter(*data.RetryAfterSec),
			Message:    data.Message,
		}
	}

	providerErr := &errors.ProviderError{
		StatusCode: statusCode,
		Code:       data.Code,
		Message:    data.Message,
	}
	if data.Code == "" && data.Message == "" {
		providerErr.Message = utils.ToSingleLine(string(body))
	}
	return providerErr
}

// minRetryAfter is the shortest wait applied to a retry hint.
const minRetryAfter = time.Second

func retryAfter(seconds int) time.Duration {
	d := time.Duration(seconds) * time.Second
	if d < minRetryAfter {
		return minRetryAfter
	}
	return d
}
