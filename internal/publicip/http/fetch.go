package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"

	"github.com/ykanggit/goDaddy-API/internal/domain"
	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
	"github.com/ykanggit/goDaddy-API/internal/provider/utils"
)

var ErrUnsuccessful = errors.New("unsuccessful response")

func fetch(ctx context.Context, client *http.Client, url string,
	responseFormat format) (publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return publicIP, fmt.Errorf("creating request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return publicIP, fmt.Errorf("%w: %w", ddnserrors.ErrNetwork, err)
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return publicIP, fmt.Errorf("%w: reading body: %w", ddnserrors.ErrNetwork, err)
	}

	// A failing echo service means the public address could not be
	// reached, so the status error is also a network error.
	if response.StatusCode != http.StatusOK {
		return publicIP, fmt.Errorf("%w: %w", ddnserrors.ErrNetwork,
			&ddnserrors.ProviderError{
				StatusCode: response.StatusCode,
				Message:    utils.ToSingleLine(string(b)),
			})
	}

	s := string(b)
	if responseFormat == formatJSON {
		var data struct {
			Success *bool  `json:"success"`
			Message string `json:"message"`
			IP      string `json:"ip"`
		}
		err = json.Unmarshal(b, &data)
		if err != nil {
			return publicIP, fmt.Errorf("%w: decoding JSON: %w", ddnserrors.ErrParse, err)
		}
		if data.Success != nil && !*data.Success {
			return publicIP, fmt.Errorf("%w: %w: %w: %s", ddnserrors.ErrNetwork,
				ddnserrors.ErrProvider, ErrUnsuccessful, data.Message)
		}
		s = data.IP
	}

	publicIP, err = domain.ParseIPv4(s)
	if err != nil {
		return publicIP, fmt.Errorf("%w: %q is not an IPv4 address",
			ddnserrors.ErrParse, utils.ToSingleLine(s))
	}
	return publicIP, nil
}
