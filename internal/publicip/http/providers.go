package http

import (
	"errors"
	"fmt"
	"strings"
)

type Provider string

const (
	Ipify   Provider = "ipify"
	Ipwhois Provider = "ipwhois"
)

func ListProviders() []Provider {
	return []Provider{
		Ipify,
		Ipwhois,
	}
}

const customPrefix = "url:"

var ErrUnknownProvider = errors.New("unknown public IP echo HTTP provider")

// ValidateProvider returns an error if the provider is neither a
// known provider nor a custom HTTPS URL prefixed with "url:".
func ValidateProvider(provider Provider) error {
	if strings.HasPrefix(string(provider), customPrefix+"https://") {
		return nil
	}

	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type format uint8

const (
	formatText format = iota
	formatJSON
)

func (p Provider) data() (url string, responseFormat format) {
	switch p {
	case Ipify:
		return "https://api.ipify.org", formatText
	case Ipwhois:
		return "https://ipwho.is/?fields=success,message,ip", formatJSON
	default:
		return strings.TrimPrefix(string(p), customPrefix), formatText
	}
}
