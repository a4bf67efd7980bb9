// Package syslog sends notifications to the local system log.
package syslog

import "errors"

var ErrUnsupported = errors.New("syslog is not supported on this platform")

type Settings struct {
	// Tag is the program name written in each syslog line.
	Tag string
}
