package lookup

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
	"github.com/ykanggit/goDaddy-API/internal/publicip/dns/mock_dns"
)

type testLogger struct {
	t *testing.T
}

func (l *testLogger) Debug(s string) { l.t.Log(s) }

func Test_Resolver_PublishedIP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		hostname    string
		response    *dns.Msg
		exchangeErr error
		ip          netip.Addr
		found       bool
		errWrapped  error
		errMessage  string
	}{
		"found": {
			hostname: "4runner.oakridge.io",
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.A{A: net.IPv4(203, 0, 113, 5)},
					&dns.A{A: net.IPv4(203, 0, 113, 6)},
				},
			},
			ip:    netip.MustParseAddr("203.0.113.5"),
			found: true,
		},
		"cname_chain": {
			hostname: "www.oakridge.io",
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.CNAME{Target: "4runner.oakridge.io."},
					&dns.A{A: net.IPv4(203, 0, 113, 5)},
				},
			},
			ip:    netip.MustParseAddr("203.0.113.5"),
			found: true,
		},
		"no_a_record": {
			hostname: "4runner.oakridge.io",
			response: &dns.Msg{},
		},
		"nxdomain": {
			hostname: "4runner.oakridge.io",
			response: &dns.Msg{MsgHdr: dns.MsgHdr{Rcode: dns.RcodeNameError}},
		},
		"servfail": {
			hostname:   "4runner.oakridge.io",
			response:   &dns.Msg{MsgHdr: dns.MsgHdr{Rcode: dns.RcodeServerFailure}},
			errWrapped: ddnserrors.ErrProvider,
			errMessage: "provider error: SERVFAIL: querying A record of 4runner.oakridge.io",
		},
		"network_error": {
			hostname:    "4runner.oakridge.io",
			exchangeErr: errors.New("i/o timeout"),
			errWrapped:  ddnserrors.ErrNetwork,
			errMessage:  "network error: querying 192.0.2.53:53: i/o timeout",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			client := mock_dns.NewMockClient(ctrl)
			client.EXPECT().
				ExchangeContext(ctx, gomock.AssignableToTypeOf(&dns.Msg{}), "192.0.2.53:53").
				DoAndReturn(func(_ context.Context, m *dns.Msg, _ string) (*dns.Msg, time.Duration, error) {
					assert.Equal(t, dns.Fqdn(testCase.hostname), m.Question[0].Name)
					assert.Equal(t, dns.TypeA, m.Question[0].Qtype)
					return testCase.response, time.Millisecond, testCase.exchangeErr
				})

			resolver := New("192.0.2.53:53", time.Second, &testLogger{t: t})
			resolver.client = client

			ip, found, err := resolver.PublishedIP(ctx, testCase.hostname)

			require.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.ip, ip)
			assert.Equal(t, testCase.found, found)
		})
	}
}

func Test_Resolver_PublishedIP_invalidHostname(t *testing.T) {
	t.Parallel()

	resolver := New("192.0.2.53:53", time.Second, &testLogger{t: t})

	_, _, err := resolver.PublishedIP(context.Background(), "not a domain")

	require.ErrorIs(t, err, ddnserrors.ErrValidation)
}
