package auth

import "net/http"

// Transport injects the bearer token into every outgoing service request.
// Anonymous requests go out without the header.
type Transport struct {
	Source Source
	Base   http.RoundTripper
}

func NewHTTPClient(src Source) *http.Client {
	return &http.Client{
		Transport: &Transport{Source: src},
	}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	token, err := t.Source.Token(req.Context())
	if err != nil {
		return nil, err
	}
	if token == "" {
		return base.RoundTrip(req)
	}

	// RoundTrippers must not mutate the original request
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return base.RoundTrip(clone)
}
