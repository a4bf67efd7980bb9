package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"github.com/ykanggit/goDaddy-API/internal/publicip/dns"
	"github.com/ykanggit/goDaddy-API/internal/publicip/http"
)

// Public IP fetcher kinds.
const (
	FetcherHTTP = "http"
	FetcherDNS  = "dns"
)

type PubIP struct {
	Fetchers      []string
	HTTPProviders []string
	DNSProviders  []string
	DNSTimeout    time.Duration
}

func (p *PubIP) setDefaults() {
	p.Fetchers = gosettings.DefaultSlice(p.Fetchers, []string{FetcherHTTP})

	httpProviders := http.ListProviders()
	defaultHTTPProviders := make([]string, len(httpProviders))
	for i, provider := range httpProviders {
		defaultHTTPProviders[i] = string(provider)
	}
	p.HTTPProviders = gosettings.DefaultSlice(p.HTTPProviders, defaultHTTPProviders)

	p.DNSProviders = gosettings.DefaultSlice(p.DNSProviders,
		[]string{string(dns.OpenDNS), string(dns.Cloudflare)})

	const defaultDNSTimeout = 3 * time.Second
	p.DNSTimeout = gosettings.DefaultComparable(p.DNSTimeout, defaultDNSTimeout)
}

var ErrNoFetcher = errors.New("no public IP fetcher specified")

func (p PubIP) Validate() (err error) {
	if len(p.Fetchers) == 0 {
		return fmt.Errorf("%w", ErrNoFetcher)
	}
	err = validate.AreAllOneOf(p.Fetchers, []string{FetcherHTTP, FetcherDNS})
	if err != nil {
		return fmt.Errorf("fetchers: %w", err)
	}

	for _, provider := range p.HTTPProviders {
		err = http.ValidateProvider(http.Provider(provider))
		if err != nil {
			return err
		}
	}

	for _, provider := range p.DNSProviders {
		err = dns.ValidateProvider(dns.Provider(provider))
		if err != nil {
			return err
		}
	}

	const minTimeout = 10 * time.Millisecond
	if p.DNSTimeout < minTimeout {
		return fmt.Errorf("DNS timeout: %w: %s is below the minimum %s",
			ErrTimeoutTooLow, p.DNSTimeout, minTimeout)
	}

	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP fetching")
	for _, fetcher := range p.Fetchers {
		switch fetcher {
		case FetcherHTTP:
			childNode := node.Appendf("HTTP providers")
			for _, provider := range p.HTTPProviders {
				childNode.Appendf(provider)
			}
		case FetcherDNS:
			childNode := node.Appendf("DNS providers")
			for _, provider := range p.DNSProviders {
				childNode.Appendf(provider)
			}
			node.Appendf("DNS timeout: %s", p.DNSTimeout)
		}
	}
	return node
}

// HTTPProviderValues returns the HTTP providers typed for the http fetcher.
func (p PubIP) HTTPProviderValues() (providers []http.Provider) {
	providers = make([]http.Provider, len(p.HTTPProviders))
	for i, provider := range p.HTTPProviders {
		providers[i] = http.Provider(provider)
	}
	return providers
}

// DNSProviderValues returns the DNS providers typed for the dns fetcher.
func (p PubIP) DNSProviderValues() (providers []dns.Provider) {
	providers = make([]dns.Provider, len(p.DNSProviders))
	for i, provider := range p.DNSProviders {
		providers[i] = dns.Provider(provider)
	}
	return providers
}

func (p *PubIP) read(r *reader.Reader) (err error) {
	p.Fetchers = r.CSV("PUBLICIP_FETCHERS")
	// custom URLs are case sensitive
	p.HTTPProviders = r.CSV("PUBLICIP_HTTP_PROVIDERS", reader.ForceLowercase(false))
	p.DNSProviders = r.CSV("PUBLICIP_DNS_PROVIDERS")
	p.DNSTimeout, err = r.Duration("PUBLICIP_DNS_TIMEOUT")
	return err
}
