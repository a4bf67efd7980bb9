package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/ykanggit/goDaddy-API/internal/models"
	"github.com/ykanggit/goDaddy-API/internal/provider/constants"
	"github.com/ykanggit/goDaddy-API/internal/provider/providers/godaddy"
	"github.com/ykanggit/goDaddy-API/internal/provider/providers/route53"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Provider

// Provider is the authoritative DNS provider of the target hostname.
type Provider interface {
	String() string
	// PublishedIP returns the first A record value published for the hostname,
	// with found set to false if there is no A record.
	PublishedIP(ctx context.Context, hostname string) (ip netip.Addr, found bool, err error)
	Records(ctx context.Context, hostname string) (records []models.DNSRecord, err error)
	// UpsertA creates or replaces the A record set of the hostname
	// with the single value ip.
	UpsertA(ctx context.Context, hostname string, ip netip.Addr) (record models.DNSRecord, err error)
	// DeleteA removes the A record set of the hostname, returning
	// no error if it is already absent.
	DeleteA(ctx context.Context, hostname string, confirmed bool) (err error)
}

type Settings struct {
	Name    constants.Provider
	GoDaddy godaddy.Settings
	Route53 route53.Settings
}

type Logger interface {
	Debug(s string)
}

var ErrProviderUnknown = errors.New("unknown provider")

// New creates the provider named in the settings. The AWS configuration
// is only used for Route 53.
func New(settings Settings, client *http.Client, awsConfig aws.Config, //nolint:ireturn
	logger Logger,
) (provider Provider, err error) {
	switch settings.Name {
	case constants.GoDaddy:
		return godaddy.New(settings.GoDaddy, client, logger)
	case constants.Route53:
		return route53.New(settings.Route53, route53.NewAPI(awsConfig), logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrProviderUnknown, settings.Name)
	}
}
