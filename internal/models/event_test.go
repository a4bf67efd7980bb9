package models

import (
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Event_String(t *testing.T) {
	t.Parallel()

	timestamp := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	testCases := map[string]struct {
		event Event
		s     string
	}{
		"updated": {
			event: Event{
				Hostname:  "4runner.oakridge.io",
				OldValue:  netip.MustParseAddr("203.0.113.5"),
				NewValue:  netip.MustParseAddr("203.0.113.9"),
				Timestamp: timestamp,
				Outcome:   OutcomeUpdated,
			},
			s: "4runner.oakridge.io A record updated from 203.0.113.5 to 203.0.113.9 at 2024-03-01T12:00:00Z",
		},
		"created": {
			event: Event{
				Hostname:  "or1.iooi.life",
				NewValue:  netip.MustParseAddr("203.0.113.9"),
				Timestamp: timestamp,
				Outcome:   OutcomeUpdated,
			},
			s: "or1.iooi.life A record updated from none to 203.0.113.9 at 2024-03-01T12:00:00Z",
		},
		"unchanged": {
			event: Event{
				Hostname: "or1.iooi.life",
				NewValue: netip.MustParseAddr("203.0.113.9"),
				Outcome:  OutcomeUnchanged,
			},
			s: "or1.iooi.life A record is up to date with 203.0.113.9",
		},
		"failed": {
			event: Event{
				Hostname: "or1.iooi.life",
				Outcome:  OutcomeFailed,
				Err:      errors.New("dummy"),
			},
			s: "or1.iooi.life A record update failed: dummy",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.s, testCase.event.String())
		})
	}
}

func Test_BuildInformation_VersionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		build   BuildInformation
		version string
	}{
		"release": {
			build:   BuildInformation{Version: "v1.2.0", Commit: "abcdef1"},
			version: "v1.2.0",
		},
		"latest_with_commit": {
			build:   BuildInformation{Version: "latest", Commit: "abcdef1"},
			version: "latest-abcdef1",
		},
		"latest_unknown_commit": {
			build:   BuildInformation{Version: "latest", Commit: "unknown"},
			version: "latest",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.version, testCase.build.VersionString())
		})
	}
}
