package eastmoney

import (
	"fmt"
	"strings"
)

// marketCodes maps a market prefix to EastMoney's internal market code.
// The set is closed; unknown prefixes are rejected.
var marketCodes = map[string]string{
	"SZ": "0",   // Shenzhen
	"SH": "1",   // Shanghai
	"HK": "116", // Hong Kong
}

// detectMarketCode determines the market code from a bare ticker.
// 6-digit codes leading with 0-3 are Shenzhen, leading with 6 Shanghai,
// 5-digit codes Hong Kong. 6-digit codes leading with 4, 5, 7, 8 or 9
// match no rule and are rejected.
func detectMarketCode(ticker string) (string, error) {
	switch {
	case isDigits(ticker) && len(ticker) == 6:
		switch ticker[0] {
		case '0', '1', '2', '3':
			return marketCodes["SZ"], nil
		case '6':
			return marketCodes["SH"], nil
		}
	case isDigits(ticker) && len(ticker) == 5:
		return marketCodes["HK"], nil
	}
	return "", fmt.Errorf("%w: unsupported ticker format: %s", ErrInvalidTicker, ticker)
}

// ResolveSecurityID converts a ticker, with an optional market prefix such
// as "HK.00700" or "sz.000651", into the secid the kline endpoint expects.
// Prefixes are matched case-insensitively; without a prefix the market is
// auto-detected from the ticker digits.
func ResolveSecurityID(ticker string) (string, error) {
	if prefix, code, ok := strings.Cut(ticker, "."); ok {
		market, known := marketCodes[strings.ToUpper(prefix)]
		if !known {
			return "", fmt.Errorf("%w: unsupported market prefix: %s", ErrInvalidTicker, prefix)
		}
		return market + "." + code, nil
	}

	market, err := detectMarketCode(ticker)
	if err != nil {
		return "", err
	}
	return market + "." + ticker, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
