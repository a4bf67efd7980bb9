package domain

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

func Test_Split(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		hostname   string
		name       Name
		owner      string
		errWrapped error
	}{
		"single_subdomain": {
			hostname: "4runner.oakridge.io",
			name:     Name{Registered: "oakridge.io", Sub: "4runner"},
			owner:    "4runner",
		},
		"multi_label_suffix": {
			hostname: "www.example.co.uk",
			name:     Name{Registered: "example.co.uk", Sub: "www"},
			owner:    "www",
		},
		"nested_subdomain": {
			hostname: "a.b.example.com",
			name:     Name{Registered: "example.com", Sub: "a.b"},
			owner:    "a.b",
		},
		"apex": {
			hostname: "iooi.life",
			name:     Name{Registered: "iooi.life"},
			owner:    "@",
		},
		"uppercase_trailing_dot": {
			hostname: "OR1.IOOI.Life.",
			name:     Name{Registered: "iooi.life", Sub: "or1"},
			owner:    "or1",
		},
		"not_a_domain": {
			hostname:   "not a domain",
			errWrapped: ddnserrors.ErrValidation,
		},
		"empty": {
			errWrapped: ddnserrors.ErrValidation,
		},
		"public_suffix_only": {
			hostname:   "co.uk",
			errWrapped: ddnserrors.ErrNoRegisteredDomain,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			split, err := Split(testCase.hostname)

			require.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				return
			}
			assert.Equal(t, testCase.name, split)
			assert.Equal(t, testCase.owner, split.Owner())
			assert.Equal(t, Normalize(testCase.hostname), split.String())
		})
	}
}

func Test_CheckIPv4(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		ip         netip.Addr
		errWrapped error
	}{
		"valid": {
			ip: netip.MustParseAddr("10.0.0.1"),
		},
		"ipv4_mapped_ipv6": {
			ip: netip.MustParseAddr("::ffff:203.0.113.9"),
		},
		"invalid": {
			errWrapped: ddnserrors.ErrIPv4NotValid,
		},
		"ipv6": {
			ip:         netip.MustParseAddr("2001:db8::1"),
			errWrapped: ddnserrors.ErrIPv4NotValid,
		},
		"unspecified": {
			ip:         netip.IPv4Unspecified(),
			errWrapped: ErrIPv4Unspecified,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := CheckIPv4(testCase.ip)

			require.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				require.ErrorIs(t, err, ddnserrors.ErrValidation)
			}
		})
	}
}

func Test_ParseIPv4(t *testing.T) {
	t.Parallel()

	ip, err := ParseIPv4(" 203.0.113.9\n")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("203.0.113.9"), ip)

	_, err = ParseIPv4("::1")
	require.ErrorIs(t, err, ddnserrors.ErrIPv4NotValid)

	_, err = ParseIPv4("<html>")
	require.ErrorIs(t, err, ddnserrors.ErrValidation)
}
