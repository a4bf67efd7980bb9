package reconcile

import "net/netip"

// HasDrifted returns true if the published IP address differs from the
// current IP address, or if there is no published IP address.
// IPv4-mapped IPv6 addresses are compared as IPv4 addresses.
func HasDrifted(current, published netip.Addr) bool {
	if !published.IsValid() {
		return true
	}
	return current.Unmap() != published.Unmap()
}
