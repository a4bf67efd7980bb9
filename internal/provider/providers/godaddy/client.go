package godaddy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"regexp"
	"time"

	"github.com/ykanggit/goDaddy-API/internal/domain"
	"github.com/ykanggit/goDaddy-API/internal/models"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
	"github.com/ykanggit/goDaddy-API/internal/provider/headers"
)

const (
	DefaultBaseURL = "https://api.godaddy.com"
	DefaultTTL     = 1800 * time.Second
)

type Settings struct {
	Key     string
	Secret  string
	BaseURL string
	TTL     time.Duration
}

type Logger interface {
	Debug(s string)
}

// Client is a GoDaddy API client for the A records of a domain
// and for domain availability checks.
type Client struct {
	client  *http.Client
	baseURL *url.URL
	key     string
	secret  string
	ttl     time.Duration
	logger  Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9]{8,14}\_[A-Za-z0-9]{21,22}$`)

func New(settings Settings, client *http.Client, logger Logger) (c *Client, err error) {
	switch {
	case settings.Key == "":
		return nil, fmt.Errorf("%w: %w", errors.ErrValidation, errors.ErrKeyNotSet)
	case !keyRegex.MatchString(settings.Key):
		return nil, fmt.Errorf("%w: %w", errors.ErrValidation, errors.ErrKeyNotValid)
	case settings.Secret == "":
		return nil, fmt.Errorf("%w: %w", errors.ErrValidation, errors.ErrSecretNotSet)
	}

	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	baseURL, err := url.Parse(settings.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing base URL: %w", errors.ErrValidation, err)
	}

	if settings.TTL == 0 {
		settings.TTL = DefaultTTL
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
		key:     settings.Key,
		secret:  settings.Secret,
		ttl:     settings.TTL,
		logger:  logger,
		sleep:   sleep,
	}, nil
}

func (c *Client) String() string {
	return "GoDaddy"
}

func (c *Client) recordsURL(name domain.Name) string {
	return c.baseURL.JoinPath("v1", "domains", name.Registered,
		"records", models.RecordTypeA, name.Owner()).String()
}

func (c *Client) setHeaders(request *http.Request) {
	headers.SetUserAgent(request)
	headers.SetAuthSSOKey(request, c.key, c.secret)
	headers.SetJSON(request)
}

type recordData struct {
	Data string `json:"data"`
	Name string `json:"name,omitempty"`
	TTL  int    `json:"ttl"`
	Type string `json:"type,omitempty"`
}

// Records returns the A records published for the hostname.
func (c *Client) Records(ctx context.Context, hostname string) (
	records []models.DNSRecord, err error) {
	name, err := domain.Split(hostname)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordsURL(name), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(request)

	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, makeResponseError(response)
	}

	var data []recordData
	err = json.NewDecoder(response.Body).Decode(&data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", errors.ErrProvider, errors.ErrUnmarshalResponse, err)
	}

	records = make([]models.DNSRecord, len(data))
	for i, record := range data {
		ip, err := netip.ParseAddr(record.Data)
		if err != nil || !ip.Is4() {
			return nil, fmt.Errorf("%w: %w: %q",
				errors.ErrProvider, errors.ErrIPReceivedMalformed, record.Data)
		}
		records[i] = models.DNSRecord{
			Name:  name.String(),
			Type:  models.RecordTypeA,
			Value: ip,
			TTL:   time.Duration(record.TTL) * time.Second,
		}
	}
	return records, nil
}

func (c *Client) PublishedIP(ctx context.Context, hostname string) (
	ip netip.Addr, found bool, err error) {
	records, err := c.Records(ctx, hostname)
	if err != nil {
		return ip, false, err
	} else if len(records) == 0 {
		return ip, false, nil
	}
	return records[0].Value, true, nil
}

// UpsertA replaces the A record set of the hostname with the given IP address.
// The hostname and IP address are validated before any request is sent.
func (c *Client) UpsertA(ctx context.Context, hostname string, ip netip.Addr) (
	record models.DNSRecord, err error) {
	name, err := domain.Split(hostname)
	if err != nil {
		return record, err
	}
	err = domain.CheckIPv4(ip)
	if err != nil {
		return record, err
	}
	ip = ip.Unmap()

	buffer := bytes.NewBuffer(nil)
	requestData := []recordData{{
		Data: ip.String(),
		TTL:  int(c.ttl.Seconds()),
	}}
	err = json.NewEncoder(buffer).Encode(requestData)
	if err != nil {
		return record, fmt.Errorf("%w: %w", errors.ErrRequestEncode, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, c.recordsURL(name), buffer)
	if err != nil {
		return record, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(request)

	response, err := c.client.Do(request)
	if err != nil {
		return record, fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return record, makeResponseError(response)
	}

	return models.DNSRecord{
		Name:  name.String(),
		Type:  models.RecordTypeA,
		Value: ip,
		TTL:   c.ttl,
	}, nil
}

// DeleteA deletes the A record set of the hostname. A not found response
// means the record set is already absent and is not an error.
func (c *Client) DeleteA(ctx context.Context, hostname string, confirmed bool) (err error) {
	name, err := domain.Split(hostname)
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("%w: %w: deleting A records of %s",
			errors.ErrValidation, errors.ErrNotConfirmed, name)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.recordsURL(name), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(request)

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		c.logger.Debug("A record set of " + name.String() + " is already absent")
		return nil
	default:
		return makeResponseError(response)
	}
}
