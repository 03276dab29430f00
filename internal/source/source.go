package source

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Price is the normalized shape returned by all sources.
// The price is an exact decimal to avoid float rounding in currency values.
type Price struct {
	Price    decimal.Decimal `json:"price"`
	Time     time.Time       `json:"time"`
	Currency string          `json:"currency"`
}

// Source is the capability a host ledger expects from any price provider.
type Source interface {
	Name() string
	GetLatestPrice(ctx context.Context, ticker string) (Price, error)
	GetHistoricalPrice(ctx context.Context, ticker string, at time.Time) (Price, error)
	GetPricesSeries(ctx context.Context, ticker string, begin, end time.Time) ([]Price, error)
}
