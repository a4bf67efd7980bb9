package models

import (
	"fmt"
	"net/netip"
	"time"
)

// RecordTypeA is the only record type handled.
const RecordTypeA = "A"

// DNSRecord is a single A record as published by the authoritative provider.
type DNSRecord struct {
	Name  string
	Type  string
	Value netip.Addr
	TTL   time.Duration
}

func (r DNSRecord) String() string {
	return fmt.Sprintf("%s %d IN %s %s", r.Name, int(r.TTL.Seconds()), r.Type, r.Value)
}
