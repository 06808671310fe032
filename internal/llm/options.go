package llm

import (
	"net/http"

	infrahttp "github.com/jonesrussell/north-cloud/content-creator/infrastructure/http"
)

type clientOptions struct {
	httpClient *http.Client
}

// Option customises a client.
type Option func(*clientOptions)

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

func applyOptions(opts []Option) clientOptions {
	o := clientOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = infrahttp.NewClient(nil)
	}
	return o
}
