package http

import (
	"context"
	"net/http"
	"net/netip"
	"strings"
)

// Fetcher fetches the public IPv4 address from HTTP echo services,
// trying each provider in order.
type Fetcher struct {
	client    *http.Client
	providers []Provider
	// urls overrides provider URLs, for testing.
	urls map[Provider]string
}

func New(client *http.Client, providers []Provider) (f *Fetcher, err error) {
	for _, provider := range providers {
		err = ValidateProvider(provider)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client:    client,
		providers: providers,
	}, nil
}

func (f *Fetcher) String() string {
	names := make([]string, len(f.providers))
	for i, provider := range f.providers {
		names[i] = string(provider)
	}
	return "http (" + strings.Join(names, ", ") + ")"
}

func (f *Fetcher) IP4(ctx context.Context) (ip netip.Addr, err error) {
	for _, provider := range f.providers {
		url, responseFormat := provider.data()
		if override, ok := f.urls[provider]; ok {
			url = override
		}
		ip, err = fetch(ctx, f.client, url, responseFormat)
		if err == nil {
			return ip, nil
		}
	}
	return ip, err
}
