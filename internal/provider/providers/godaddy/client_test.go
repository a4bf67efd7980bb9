package godaddy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykanggit/goDaddy-API/internal/models"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

const (
	testKey    = "dKD5mLpSbBfm_8KiVfRTqJ7GTk9QvqbaWR"
	testSecret = "7pLzGy6DeKDTTWs5jMY3Vq"
)

type testLogger struct {
	t *testing.T
}

func (l *testLogger) Debug(s string) { l.t.Log(s) }

// fakeRegistrar holds A record sets keyed by request path.
type fakeRegistrar struct {
	t       *testing.T
	mutex   sync.Mutex
	calls   int
	records map[string][]recordData
}

func (f *fakeRegistrar) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.calls++

	assert.Equal(f.t, "sso-key "+testKey+":"+testSecret, r.Header.Get("Authorization"))
	assert.Equal(f.t, "application/json", r.Header.Get("Accept"))

	switch r.Method {
	case http.MethodGet:
		records, ok := f.records[r.URL.Path]
		if !ok {
			records = []recordData{}
		}
		_ = json.NewEncoder(w).Encode(records)
	case http.MethodPut:
		var records []recordData
		err := json.NewDecoder(r.Body).Decode(&records)
		require.NoError(f.t, err)
		f.records[r.URL.Path] = records
	case http.MethodDelete:
		if _, ok := f.records[r.URL.Path]; !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"code":"NOT_FOUND","message":"Record not found"}`)
			return
		}
		delete(f.records, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Settings{
		Key:     testKey,
		Secret:  testSecret,
		BaseURL: server.URL,
	}, server.Client(), &testLogger{t: t})
	require.NoError(t, err)
	return client
}

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		errWrapped error
		errMessage string
	}{
		"key_not_set": {
			errWrapped: errors.ErrKeyNotSet,
			errMessage: "validation error: key is not set",
		},
		"key_not_valid": {
			settings:   Settings{Key: "abc"},
			errWrapped: errors.ErrKeyNotValid,
			errMessage: "validation error: key is not valid",
		},
		"secret_not_set": {
			settings:   Settings{Key: testKey},
			errWrapped: errors.ErrSecretNotSet,
			errMessage: "validation error: secret is not set",
		},
		"defaults": {
			settings: Settings{Key: testKey, Secret: testSecret},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client, err := New(testCase.settings, http.DefaultClient, &testLogger{t: t})

			require.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				require.ErrorIs(t, err, errors.ErrValidation)
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			assert.Equal(t, DefaultBaseURL, client.baseURL.String())
			assert.Equal(t, DefaultTTL, client.ttl)
		})
	}
}

func Test_Client_Records(t *testing.T) {
	t.Parallel()

	fake := &fakeRegistrar{t: t, records: map[string][]recordData{
		"/v1/domains/oakridge.io/records/A/4runner": {
			{Data: "203.0.113.5", Name: "4runner", TTL: 1800, Type: "A"},
		},
	}}
	client := newTestClient(t, fake)
	ctx := context.Background()

	records, err := client.Records(ctx, "4runner.oakridge.io")
	require.NoError(t, err)
	expected := []models.DNSRecord{{
		Name:  "4runner.oakridge.io",
		Type:  "A",
		Value: netip.MustParseAddr("203.0.113.5"),
		TTL:   1800 * time.Second,
	}}
	assert.Equal(t, expected, records)

	ip, found, err := client.PublishedIP(ctx, "4runner.oakridge.io")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, netip.MustParseAddr("203.0.113.5"), ip)

	_, found, err = client.PublishedIP(ctx, "or1.oakridge.io")
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_Client_Records_malformed(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"data":"not-an-ip","ttl":600}]`)
	})
	client := newTestClient(t, handler)

	_, _, err := client.PublishedIP(context.Background(), "4runner.oakridge.io")

	require.ErrorIs(t, err, errors.ErrProvider)
	require.ErrorIs(t, err, errors.ErrIPReceivedMalformed)
	assert.EqualError(t, err, `provider error: malformed IP address received: "not-an-ip"`)
}

func Test_Client_UpsertA_idempotent(t *testing.T) {
	t.Parallel()

	fake := &fakeRegistrar{t: t, records: map[string][]recordData{}}
	client := newTestClient(t, fake)
	ctx := context.Background()
	ip := netip.MustParseAddr("203.0.113.9")

	record, err := client.UpsertA(ctx, "www.example.co.uk", ip)
	require.NoError(t, err)
	assert.Equal(t, models.DNSRecord{
		Name:  "www.example.co.uk",
		Type:  "A",
		Value: ip,
		TTL:   DefaultTTL,
	}, record)
	stateAfterOnce := map[string][]recordData{
		"/v1/domains/example.co.uk/records/A/www": {{Data: "203.0.113.9", TTL: 1800}},
	}
	assert.Equal(t, stateAfterOnce, fake.records)

	_, err = client.UpsertA(ctx, "www.example.co.uk", ip)
	require.NoError(t, err)
	assert.Equal(t, stateAfterOnce, fake.records)
	assert.Equal(t, 2, fake.calls)
}

func Test_Client_UpsertA_apex(t *testing.T) {
	t.Parallel()

	fake := &fakeRegistrar{t: t, records: map[string][]recordData{}}
	client := newTestClient(t, fake)

	_, err := client.UpsertA(context.Background(), "iooi.life", netip.MustParseAddr("10.0.0.1"))

	require.NoError(t, err)
	assert.Contains(t, fake.records, "/v1/domains/iooi.life/records/A/@")
}

func Test_Client_UpsertA_validation(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		hostname   string
		ip         netip.Addr
		errWrapped error
	}{
		"invalid_hostname": {
			hostname:   "not a domain",
			ip:         netip.MustParseAddr("10.0.0.1"),
			errWrapped: errors.ErrValidation,
		},
		"ipv6": {
			hostname:   "4runner.oakridge.io",
			ip:         netip.MustParseAddr("2001:db8::1"),
			errWrapped: errors.ErrIPv4NotValid,
		},
		"ip_not_set": {
			hostname:   "4runner.oakridge.io",
			errWrapped: errors.ErrIPv4NotValid,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fake := &fakeRegistrar{t: t, records: map[string][]recordData{}}
			client := newTestClient(t, fake)

			_, err := client.UpsertA(context.Background(), testCase.hostname, testCase.ip)

			require.ErrorIs(t, err, testCase.errWrapped)
			require.ErrorIs(t, err, errors.ErrValidation)
			assert.Zero(t, fake.calls)
		})
	}
}

func Test_Client_UpsertA_providerError(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		statusCode int
		body       string
		errWrapped error
		errMessage string
	}{
		"json_message": {
			statusCode: http.StatusUnprocessableEntity,
			body:       `{"code":"INVALID_BODY","message":"Request body doesn't fulfill schema"}`,
			errWrapped: errors.ErrProvider,
			errMessage: "provider error: HTTP status 422: INVALID_BODY: Request body doesn't fulfill schema",
		},
		"plain_body": {
			statusCode: http.StatusInternalServerError,
			body:       "internal\nerror",
			errWrapped: errors.ErrProvider,
			errMessage: "provider error: HTTP status 500: internalerror",
		},
		"unauthorized": {
			statusCode: http.StatusUnauthorized,
			body:       `{"code":"UNABLE_TO_AUTHENTICATE","message":"Unauthorized : Could not authenticate API key/secret"}`,
			errWrapped: errors.ErrProvider,
			errMessage: "provider error: HTTP status 401: UNABLE_TO_AUTHENTICATE: " +
				"Unauthorized : Could not authenticate API key/secret",
		},
		"rate_limited": {
			statusCode: http.StatusTooManyRequests,
			body:       `{"code":"TOO_MANY_REQUESTS","message":"Too many requests","retryAfterSec":30}`,
			errWrapped: errors.ErrRateLimited,
			errMessage: "rate limited: HTTP status 429: retry after 30s: Too many requests",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(testCase.statusCode)
				_, _ = io.WriteString(w, testCase.body)
			})
			client := newTestClient(t, handler)

			_, err := client.UpsertA(context.Background(), "4runner.oakridge.io",
				netip.MustParseAddr("203.0.113.9"))

			require.ErrorIs(t, err, testCase.errWrapped)
			require.ErrorIs(t, err, errors.ErrProvider)
			assert.EqualError(t, err, testCase.errMessage)
		})
	}
}

func Test_Client_DeleteA(t *testing.T) {
	t.Parallel()

	fake := &fakeRegistrar{t: t, records: map[string][]recordData{
		"/v1/domains/oakridge.io/records/A/4runner": {{Data: "203.0.113.5", TTL: 1800}},
	}}
	client := newTestClient(t, fake)
	ctx := context.Background()

	err := client.DeleteA(ctx, "4runner.oakridge.io", false)
	require.ErrorIs(t, err, errors.ErrNotConfirmed)
	assert.Zero(t, fake.calls)

	err = client.DeleteA(ctx, "4runner.oakridge.io", true)
	require.NoError(t, err)
	assert.Empty(t, fake.records)

	// already absent
	err = client.DeleteA(ctx, "4runner.oakridge.io", true)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.calls)
}

func Test_Client_DeleteA_providerError(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"code":"ACCESS_DENIED","message":"Authenticated user is not allowed access"}`)
	})
	client := newTestClient(t, handler)

	err := client.DeleteA(context.Background(), "4runner.oakridge.io", true)

	var providerErr *errors.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusForbidden, providerErr.StatusCode)
	assert.Equal(t, "ACCESS_DENIED", providerErr.Code)
}
