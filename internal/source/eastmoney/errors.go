package eastmoney

import "errors"

// Every failure in this package wraps one of these sentinels, so callers
// can branch with errors.Is while still getting a human-readable message.
var (
	// ErrInvalidTicker covers tickers and market prefixes that match no
	// resolution rule.
	ErrInvalidTicker = errors.New("invalid ticker")
	// ErrFetch covers transport failures, timeouts and non-2xx responses.
	ErrFetch = errors.New("fetch failed")
	// ErrParse covers non-success API status, malformed bodies and
	// missing or unusable kline data.
	ErrParse = errors.New("parse failed")
	// ErrNoData reports an empty series after an otherwise successful fetch.
	ErrNoData = errors.New("no price data")
)
