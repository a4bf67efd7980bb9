// Package httpclient wraps an HTTP client so every request and response
// exchanged with the providers is logged at the debug level.
package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/ykanggit/goDaddy-API/internal/provider/utils"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

// NewLogging returns a new client with the same timeout as the given
// client and a transport logging each exchange with the logger.
// The Authorization header values are obfuscated in the logs.
func NewLogging(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	newClient = &http.Client{
		Timeout: client.Timeout,
	}

	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	transport, ok := originalTransport.(*http.Transport)
	if !ok {
		panic(fmt.Sprintf("transport %T is not *http.Transport", originalTransport))
	}

	newClient.Transport = &loggingRoundTripper{
		proxied: transport.Clone(),
		logger:  logger,
	}

	return newClient
}

// CloseIdleConnections closes idle connections of the client,
// including the ones of a logging client transport.
func CloseIdleConnections(client *http.Client) {
	lrt, ok := client.Transport.(*loggingRoundTripper)
	if !ok {
		client.CloseIdleConnections()
		return
	}
	type idleCloser interface {
		CloseIdleConnections()
	}
	if closer, ok := lrt.proxied.(idleCloser); ok {
		closer.CloseIdleConnections()
	}
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(requestToString(request))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	lrt.logger.Debug(responseToString(response))

	return response, nil
}

func requestToString(request *http.Request) (s string) {
	s = request.Method + " " + request.URL.String()

	if len(request.Header) > 0 {
		s += " | headers: " + headerToString(request.Header)
	}

	if request.Body != nil && request.Body != http.NoBody {
		newBody, bodyString := readAndResetBody(request.Body)
		request.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if len(response.Header) > 0 {
		s += " | headers: " + headerToString(response.Header)
	}

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func headerToString(header http.Header) (s string) {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make([]string, len(keys))
	for i, key := range keys {
		values := header[key]
		if http.CanonicalHeaderKey(key) == "Authorization" {
			values = obfuscateValues(values)
		}
		headers[i] = key + ": " + strings.Join(values, ",")
	}
	return strings.Join(headers, "; ")
}

func obfuscateValues(values []string) (obfuscated []string) {
	obfuscated = make([]string, len(values))
	for i, value := range values {
		scheme, credentials, found := strings.Cut(value, " ")
		if !found {
			obfuscated[i] = gosettings.ObfuscateKey(value)
			continue
		}
		obfuscated[i] = scheme + " " + gosettings.ObfuscateKey(credentials)
	}
	return obfuscated
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return body, "error reading body: " + err.Error()
	}
	_ = body.Close()
	return io.NopCloser(bytes.NewBuffer(b)), utils.ToSingleLine(string(b))
}
