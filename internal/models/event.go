package models

import (
	"fmt"
	"net/netip"
	"time"
)

type Outcome string

const (
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeUpdated   Outcome = "updated"
	OutcomeFailed    Outcome = "failed"
)

// Event is the result of one reconciliation attempt. It lives only
// until the notifier consumed it.
type Event struct {
	ID        string
	Hostname  string
	OldValue  netip.Addr // invalid when no record was published
	NewValue  netip.Addr
	Timestamp time.Time
	Outcome   Outcome
	Err       error
}

func (e Event) String() string {
	switch e.Outcome {
	case OutcomeUpdated:
		return fmt.Sprintf("%s A record updated from %s to %s at %s",
			e.Hostname, ipString(e.OldValue), e.NewValue, e.Timestamp.Format(time.RFC3339))
	case OutcomeUnchanged:
		return fmt.Sprintf("%s A record is up to date with %s", e.Hostname, e.NewValue)
	case OutcomeFailed:
		return fmt.Sprintf("%s A record update failed: %s", e.Hostname, e.Err)
	default:
		return fmt.Sprintf("%s: unknown outcome %q", e.Hostname, e.Outcome)
	}
}

func ipString(ip netip.Addr) string {
	if !ip.IsValid() {
		return "none"
	}
	return ip.String()
}
