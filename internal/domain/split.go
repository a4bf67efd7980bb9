package domain

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
	"golang.org/x/net/publicsuffix"
)

// Name is a hostname split at its registered domain boundary.
type Name struct {
	// Registered is the registrable domain, for example example.co.uk.
	Registered string
	// Sub is the part left of Registered, empty for the apex.
	Sub string
}

// Owner returns the record owner name, "@" for the apex.
func (n Name) Owner() string {
	if n.Sub == "" {
		return "@"
	}
	return n.Sub
}

func (n Name) String() string {
	if n.Sub == "" {
		return n.Registered
	}
	return n.Sub + "." + n.Registered
}

// Normalize lowercases the hostname and strips surrounding spaces
// and a single trailing dot.
func Normalize(hostname string) string {
	hostname = strings.TrimSpace(hostname)
	hostname = strings.ToLower(hostname)
	return strings.TrimSuffix(hostname, ".")
}

// Split splits the hostname into its registered domain and subdomain
// using the public suffix list, so that multi-label suffixes such as
// co.uk are kept together.
func Split(hostname string) (name Name, err error) {
	hostname = Normalize(hostname)
	err = CheckDomain(hostname)
	if err != nil {
		return name, fmt.Errorf("%w: %w", ddnserrors.ErrValidation, err)
	}

	registered, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return name, fmt.Errorf("%w: %w: %w", ddnserrors.ErrValidation,
			ddnserrors.ErrNoRegisteredDomain, err)
	}

	name.Registered = registered
	if hostname != registered {
		name.Sub = strings.TrimSuffix(hostname, "."+registered)
	}
	return name, nil
}

var ErrIPv4Unspecified = errors.New("IPv4 address is unspecified")

// CheckIPv4 returns an error wrapping the validation error class
// if the address is not a usable IPv4 address. IPv4-mapped IPv6
// addresses are accepted.
func CheckIPv4(ip netip.Addr) error {
	ip = ip.Unmap()
	switch {
	case !ip.IsValid():
		return fmt.Errorf("%w: %w: address not set",
			ddnserrors.ErrValidation, ddnserrors.ErrIPv4NotValid)
	case !ip.Is4():
		return fmt.Errorf("%w: %w: %s",
			ddnserrors.ErrValidation, ddnserrors.ErrIPv4NotValid, ip)
	case ip.IsUnspecified():
		return fmt.Errorf("%w: %w", ddnserrors.ErrValidation, ErrIPv4Unspecified)
	}
	return nil
}

// ParseIPv4 parses s strictly as a dotted decimal IPv4 address.
func ParseIPv4(s string) (ip netip.Addr, err error) {
	ip, err = netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ip, fmt.Errorf("%w: %w: %w", ddnserrors.ErrValidation,
			ddnserrors.ErrIPv4NotValid, err)
	}
	if !ip.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %w: %s", ddnserrors.ErrValidation,
			ddnserrors.ErrIPv4NotValid, ip)
	}
	return ip, nil
}
