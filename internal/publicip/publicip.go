// Package publicip fetches the public IPv4 address of the machine
// using one or more fetchers, tried in order.
package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Fetcher

type Fetcher interface {
	String() string
	IP4(ctx context.Context) (ip netip.Addr, err error)
}

type Warner interface {
	Warn(s string)
}

// Chain tries each of its fetchers in order until one succeeds.
type Chain struct {
	fetchers []Fetcher
	warner   Warner
}

func NewChain(fetchers []Fetcher, warner Warner) *Chain {
	return &Chain{
		fetchers: fetchers,
		warner:   warner,
	}
}

var ErrNoFetcher = errors.New("no public IP fetcher")

func (c *Chain) String() string {
	s := ""
	for i, fetcher := range c.fetchers {
		if i > 0 {
			s += ", "
		}
		s += fetcher.String()
	}
	return s
}

// IP4 returns the public IPv4 address from the first fetcher succeeding.
// If all fetchers fail, the error of the last fetcher is returned.
func (c *Chain) IP4(ctx context.Context) (ip netip.Addr, err error) {
	if len(c.fetchers) == 0 {
		return ip, fmt.Errorf("%w", ErrNoFetcher)
	}

	for i, fetcher := range c.fetchers {
		ip, err = fetcher.IP4(ctx)
		if err == nil {
			return ip, nil
		}
		err = fmt.Errorf("fetching public IPv4 address with %s: %w", fetcher, err)
		if i < len(c.fetchers)-1 {
			c.warner.Warn(err.Error())
		}
	}
	return ip, err
}
