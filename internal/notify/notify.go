// Package notify fans messages out to every configured sender.
package notify

import (
	"context"

	"github.com/ykanggit/goDaddy-API/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Sender

// Sender delivers a single message to a destination such as
// a Slack channel or the local syslog.
type Sender interface {
	String() string
	Send(ctx context.Context, message string) (err error)
}

type Warner interface {
	Warn(s string)
}

type Notifier struct {
	senders []Sender
	logger  Warner
}

func New(senders []Sender, logger Warner) *Notifier {
	return &Notifier{
		senders: senders,
		logger:  logger,
	}
}

// Enabled returns true if at least one sender is configured.
func (n *Notifier) Enabled() bool {
	return len(n.senders) > 0
}

// Notify sends the event formatted as a single line of text.
func (n *Notifier) Notify(ctx context.Context, event models.Event) {
	n.Send(ctx, event.String())
}

// Send sends the message to every sender. A sender failing is
// logged and does not prevent the other senders from being tried.
func (n *Notifier) Send(ctx context.Context, message string) {
	for _, sender := range n.senders {
		err := sender.Send(ctx, message)
		if err != nil {
			n.logger.Warn("notifying with " + sender.String() + ": " + err.Error())
		}
	}
}
