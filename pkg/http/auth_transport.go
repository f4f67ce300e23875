package http

import "net/http"

// apiKeyHeader is the header the generative language API reads its key from.
const apiKeyHeader = "x-goog-api-key"

type authTransport struct {
	header    string
	value     string
	transport http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	if t.value != "" {
		reqCopy.Header.Set(t.header, t.value)
	}

	return t.transport.RoundTrip(reqCopy)
}

// WithAPIKey sends the key in the x-goog-api-key header.
func WithAPIKey(key string) HttpOpts {
	return withAuthHeader(apiKeyHeader, key, key != "")
}

func withAuthHeader(header, value string, enabled bool) HttpOpts {
	if !enabled {
		value = ""
	}
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &authTransport{
			header:    header,
			value:     value,
			transport: rt,
		}
	})
}
