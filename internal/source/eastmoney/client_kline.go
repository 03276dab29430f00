package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"time"
)

const (
	requestDateLayout = "20060102"

	// Fixed field groups selecting date and close price only.
	fieldsResponse = "f1,f2,f3,f4,f5,f6"
	fieldsKline    = "f51,f53"

	klineTypeDaily = "101" // daily bars
	adjustmentNone = "0"   // unadjusted prices
	statusCodeOK   = 0
)

// klineResponse is the top-level response of the kline endpoint.
// rt is a string on errors and a number on success.
type klineResponse struct {
	RC   int             `json:"rc"`
	RT   json.RawMessage `json:"rt"`
	Data *klineData      `json:"data"`
}

type klineData struct {
	// Klines is a pointer so an absent key (invalid format) stays
	// distinguishable from an empty array (no data).
	Klines *[]string `json:"klines"`
}

// message returns the provider's rt field as a plain string.
func (r *klineResponse) message() string {
	var s string
	if err := json.Unmarshal(r.RT, &s); err == nil {
		return s
	}
	if len(r.RT) > 0 {
		return string(r.RT)
	}
	return "unknown error"
}

// GetKlineSeries fetches the daily close-price series for a secid over
// [begin, end] and returns it sorted ascending by date. The result-count
// limit sent to the endpoint equals the whole-day span of the window.
func (c *EastMoneyAPIClient) GetKlineSeries(ctx context.Context, secid string, begin, end time.Time, opts ...EastMoneyAPIClientOption) ([]PricePoint, error) {
	var override = &EastMoneyAPIClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	days := int(end.Sub(begin)/(24*time.Hour)) + 1

	query := maps.Clone(override.query)
	query.Set("secid", secid)
	query.Set("fields1", fieldsResponse)
	query.Set("fields2", fieldsKline)
	query.Set("klt", klineTypeDaily)
	query.Set("fqt", adjustmentNone)
	query.Set("beg", begin.Format(requestDateLayout))
	query.Set("end", end.Format(requestDateLayout))
	query.Set("lmt", strconv.Itoa(days))

	url := fmt.Sprintf("%s?%s", override.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrFetch, err)
	}
	req.Header = override.header

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: network error: %v", ErrFetch, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrFetch, res.StatusCode)
	}

	var body klineResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %v", ErrParse, err)
	}
	if body.RC != statusCodeOK {
		return nil, fmt.Errorf("%w: API error: %s", ErrParse, body.message())
	}
	if body.Data == nil || body.Data.Klines == nil {
		return nil, fmt.Errorf("%w: invalid response format", ErrParse)
	}
	if len(*body.Data.Klines) == 0 {
		return nil, fmt.Errorf("%w: no price data found", ErrParse)
	}

	return parseKlines(*body.Data.Klines)
}
