// Package lookup resolves the A record currently published for
// a hostname with a DNS query.
package lookup

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/miekg/dns"
	"github.com/ykanggit/goDaddy-API/internal/domain"
	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, a string) (r *dns.Msg, rtt time.Duration, err error)
}

type Logger interface {
	Debug(s string)
}

// Resolver queries a single nameserver for A records.
type Resolver struct {
	client  Client
	address string
	logger  Logger
}

const (
	resolvConfPath  = "/etc/resolv.conf"
	fallbackAddress = "1.1.1.1:53"
)

// New creates a resolver querying the nameserver at address.
// If address is empty, the first nameserver of /etc/resolv.conf
// is used, falling back to 1.1.1.1:53.
func New(address string, timeout time.Duration, logger Logger) *Resolver {
	if address == "" {
		address = systemNameserver()
	}
	return &Resolver{
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		address: address,
		logger:  logger,
	}
}

func systemNameserver() (address string) {
	config, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(config.Servers) == 0 {
		return fallbackAddress
	}
	return net.JoinHostPort(config.Servers[0], config.Port)
}

func (r *Resolver) String() string {
	return "DNS " + r.address
}

// PublishedIP returns the first A record value of the hostname, with
// found set to false if the name does not exist or has no A record.
func (r *Resolver) PublishedIP(ctx context.Context, hostname string) (
	ip netip.Addr, found bool, err error) {
	name, err := domain.Split(hostname)
	if err != nil {
		return ip, false, err
	}

	message := new(dns.Msg)
	message.SetQuestion(dns.Fqdn(name.String()), dns.TypeA)
	message.RecursionDesired = true

	response, rtt, err := r.client.ExchangeContext(ctx, message, r.address)
	if err != nil {
		return ip, false, fmt.Errorf("%w: querying %s: %w", ddnserrors.ErrNetwork, r.address, err)
	}
	r.logger.Debug(fmt.Sprintf("%s answered for %s in %s", r.address, name, rtt))

	switch response.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return ip, false, nil
	default:
		return ip, false, &ddnserrors.ProviderError{
			Code:    dns.RcodeToString[response.Rcode],
			Message: "querying A record of " + name.String(),
		}
	}

	for _, answer := range response.Answer {
		a, ok := answer.(*dns.A)
		if !ok {
			continue // CNAME chain
		}
		ip, ok = netip.AddrFromSlice(a.A.To4())
		if !ok {
			return ip, false, fmt.Errorf("%w: %w: %s", ddnserrors.ErrProvider,
				ddnserrors.ErrIPReceivedMalformed, a.A)
		}
		return ip, true, nil
	}
	return ip, false, nil
}
