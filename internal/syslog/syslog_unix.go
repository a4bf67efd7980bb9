//go:build !windows && !plan9

package syslog

import (
	"context"
	"fmt"
	"log/syslog"
)

type Writer interface {
	Notice(m string) (err error)
	Close() (err error)
}

type Client struct {
	writer Writer
	tag    string
}

// New connects to the local syslog daemon.
func New(settings Settings) (client *Client, err error) {
	writer, err := syslog.New(syslog.LOG_NOTICE|syslog.LOG_USER, settings.Tag)
	if err != nil {
		return nil, fmt.Errorf("connecting to syslog: %w", err)
	}
	return newClient(writer, settings.Tag), nil
}

func newClient(writer Writer, tag string) *Client {
	return &Client{
		writer: writer,
		tag:    tag,
	}
}

func (c *Client) String() string {
	return "syslog (" + c.tag + ")"
}

func (c *Client) Send(_ context.Context, message string) (err error) {
	return c.writer.Notice(message)
}

func (c *Client) Close() (err error) {
	return c.writer.Close()
}
