package eastmoney

import (
	"net/http"
	"net/url"
	"time"
)

const baseURL = "https://push2his.eastmoney.com/api/qt/stock/kline/get"

// defaultTimeout caps the whole exchange, including reading the body.
// Exceeding it surfaces as ErrFetch.
const defaultTimeout = 30 * time.Second

// The endpoint rejects requests without a browser-like client identity and
// a referer pointing at EastMoney's own web UI.
const (
	defaultReferer   = "https://quote.eastmoney.com/"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/139.0.0.0 Safari/537.36 Edg/139.0.0.0"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=eastmoney_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// EastMoneyAPIClient is a client for the EastMoney kline API.
type EastMoneyAPIClient struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP client.
	httpClient HTTPClient
	// header contains headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
}

// EastMoneyAPIClientOption is a configuration option for the EastMoney API client.
type EastMoneyAPIClientOption func(*EastMoneyAPIClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) EastMoneyAPIClientOption {
	return func(c *EastMoneyAPIClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) EastMoneyAPIClientOption {
	return func(c *EastMoneyAPIClient) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) EastMoneyAPIClientOption {
	return func(c *EastMoneyAPIClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewEastMoneyAPIClient creates a new EastMoney API client.
func NewEastMoneyAPIClient(options ...EastMoneyAPIClientOption) (*EastMoneyAPIClient, error) {
	var eastMoneyAPIClient = &EastMoneyAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		header:     http.Header{},
		query:      url.Values{},
	}
	eastMoneyAPIClient.header.Set("Referer", defaultReferer)
	eastMoneyAPIClient.header.Set("User-Agent", defaultUserAgent)
	for _, option := range options {
		option(eastMoneyAPIClient)
	}
	return eastMoneyAPIClient, nil
}
