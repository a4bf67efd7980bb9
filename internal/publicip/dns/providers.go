package dns

import (
	"errors"
	"fmt"
	"net"

	"github.com/miekg/dns"
)

type Provider string

const (
	Cloudflare Provider = "cloudflare"
	OpenDNS    Provider = "opendns"
)

func ListProviders() []Provider {
	return []Provider{
		Cloudflare,
		OpenDNS,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo DNS provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type providerData struct {
	// address is the nameserver address with its port.
	address string
	fqdn    string
	class   uint16
	qType   uint16
}

func (p Provider) data() providerData {
	switch p {
	case Cloudflare:
		return providerData{
			address: net.JoinHostPort("1.1.1.1", "53"),
			fqdn:    "whoami.cloudflare.",
			class:   dns.ClassCHAOS,
			qType:   dns.TypeTXT,
		}
	case OpenDNS:
		return providerData{
			address: net.JoinHostPort("208.67.222.222", "53"),
			fqdn:    "myip.opendns.com.",
			class:   dns.ClassINET,
			qType:   dns.TypeA,
		}
	}
	panic(`provider unknown: "` + string(p) + `"`)
}
