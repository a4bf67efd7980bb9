package headers

import "net/http"

const userAgent = "dnssync github.com/ykanggit/goDaddy-API"

func SetUserAgent(request *http.Request) {
	request.Header.Set("User-Agent", userAgent)
}

func SetContentType(request *http.Request, contentType string) {
	request.Header.Set("Content-Type", contentType)
}

func SetAccept(request *http.Request, acceptContent string) {
	request.Header.Set("Accept", acceptContent)
}

// SetAuthSSOKey sets the registrar API key authorization header.
func SetAuthSSOKey(request *http.Request, key, secret string) {
	request.Header.Set("Authorization", "sso-key "+key+":"+secret)
}

// SetJSON sets both the content type and accept headers to JSON.
func SetJSON(request *http.Request) {
	SetContentType(request, "application/json")
	SetAccept(request, "application/json")
}
