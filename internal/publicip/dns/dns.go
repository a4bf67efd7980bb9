// Package dns fetches the public IPv4 address of the machine by
// querying nameservers echoing the address of the client.
package dns

import (
	"context"
	"net/netip"
	"strings"
	"time"

	"github.com/miekg/dns"
)

type Fetcher struct {
	client    Client
	providers []Provider
}

func New(providers []Provider, timeout time.Duration) (f *Fetcher, err error) {
	for _, provider := range providers {
		err = ValidateProvider(provider)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client: &dns.Client{
			Net:     "udp4",
			Timeout: timeout,
		},
		providers: providers,
	}, nil
}

func (f *Fetcher) String() string {
	names := make([]string, len(f.providers))
	for i, provider := range f.providers {
		names[i] = string(provider)
	}
	return "dns (" + strings.Join(names, ", ") + ")"
}

// IP4 returns the public IPv4 address from the first provider answering.
func (f *Fetcher) IP4(ctx context.Context) (publicIP netip.Addr, err error) {
	for _, provider := range f.providers {
		publicIP, err = fetch(ctx, f.client, provider.data())
		if err == nil {
			return publicIP, nil
		}
	}
	return publicIP, err
}
