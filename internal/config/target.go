package config

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"github.com/ykanggit/goDaddy-API/internal/domain"
	"github.com/ykanggit/goDaddy-API/internal/provider/constants"
	"github.com/ykanggit/goDaddy-API/internal/provider/providers/godaddy"
	"github.com/ykanggit/goDaddy-API/internal/provider/providers/route53"
)

// Published IP address sources.
const (
	SourceProvider = "provider"
	SourceDNS      = "dns"
)

// Target is the hostname whose A record is kept up to date.
type Target struct {
	Hostname          string
	Provider          constants.Provider
	TTL               time.Duration
	PublishedIPSource string
	Confirm           *bool
}

func (t *Target) setDefaults() {
	t.Provider = gosettings.DefaultComparable(t.Provider, constants.GoDaddy)
	defaultTTL := godaddy.DefaultTTL
	if t.Provider == constants.Route53 {
		defaultTTL = route53.DefaultTTL
	}
	t.TTL = gosettings.DefaultComparable(t.TTL, defaultTTL)
	t.PublishedIPSource = gosettings.DefaultComparable(t.PublishedIPSource, SourceProvider)
	t.Confirm = gosettings.DefaultPointer(t.Confirm, true)
}

func (t Target) Validate() (err error) {
	if t.Hostname != "" {
		_, err = domain.Split(t.Hostname)
		if err != nil {
			return fmt.Errorf("hostname: %w", err)
		}
	}

	err = validate.IsOneOf(t.Provider, constants.ProviderChoices()...)
	if err != nil {
		return fmt.Errorf("DNS provider: %w", err)
	}

	const minTTL = time.Second
	if t.TTL < minTTL {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTTLTooLow, t.TTL, minTTL)
	}

	err = validate.IsOneOf(t.PublishedIPSource, SourceProvider, SourceDNS)
	if err != nil {
		return fmt.Errorf("published IP source: %w", err)
	}

	return nil
}

func (t Target) String() string {
	return t.toLinesNode().String()
}

func (t Target) toLinesNode() *gotree.Node {
	node := gotree.New("Target")
	hostname := t.Hostname
	if hostname == "" {
		hostname = "[not set]"
	}
	node.Appendf("Hostname: %s", hostname)
	node.Appendf("DNS provider: %s", t.Provider)
	node.Appendf("TTL: %s", t.TTL)
	node.Appendf("Published IP source: %s", t.PublishedIPSource)
	node.Appendf("Confirm update: %s", gosettings.BoolToYesNo(t.Confirm))
	return node
}

func (t *Target) read(r *reader.Reader) (err error) {
	t.Hostname = domain.Normalize(r.String("TARGET_HOSTNAME"))
	t.Provider = constants.Provider(r.String("DNS_PROVIDER"))

	ttlSeconds, err := r.Int("RECORD_TTL")
	if err != nil {
		return err
	}
	t.TTL = time.Duration(ttlSeconds) * time.Second

	t.PublishedIPSource = r.String("PUBLISHED_IP_SOURCE")

	t.Confirm, err = r.BoolPtr("CONFIRM_UPDATE")
	return err
}
