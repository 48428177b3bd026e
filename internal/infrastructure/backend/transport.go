package backend

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
	"github.com/bemapp/orgadmin-shell/internal/pkg/metrics"
)

// bearerTransport attaches the stored access token to every request. With no
// token stored the request goes out anonymously.
type bearerTransport struct {
	base   http.RoundTripper
	tokens ports.TokenSource
}

func newTransport(base http.RoundTripper, tokens ports.TokenSource) http.RoundTripper {
	var rt http.RoundTripper = base
	if tokens != nil {
		rt = &bearerTransport{base: base, tokens: tokens}
	}
	return promhttp.InstrumentRoundTripperDuration(metrics.BackendRequestDuration, rt)
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.AccessToken(req.Context())
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, fmt.Errorf("read access token: %w", err)
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(r)
	return t.base.RoundTrip(r)
}
