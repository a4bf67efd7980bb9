package reconcile

import (
	"context"
	"net/netip"

	"github.com/ykanggit/goDaddy-API/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . PublicIPFetcher,PublishedIPResolver,Updater,Notifier

type PublicIPFetcher interface {
	IP4(ctx context.Context) (ip netip.Addr, err error)
}

type PublishedIPResolver interface {
	PublishedIP(ctx context.Context, hostname string) (ip netip.Addr, found bool, err error)
}

type Updater interface {
	PublishedIPResolver
	UpsertA(ctx context.Context, hostname string, ip netip.Addr) (record models.DNSRecord, err error)
}

type Notifier interface {
	Notify(ctx context.Context, event models.Event)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
}
