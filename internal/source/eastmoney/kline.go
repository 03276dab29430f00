package eastmoney

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the quote currency for every price the endpoint returns.
const Currency = "CNY"

// Timezone is the fixed offset EastMoney quotes trading days in. Provider
// dates are naive calendar dates; they are pinned to midnight here rather
// than in the host's local zone.
var Timezone = time.FixedZone("Asia/Shanghai", 8*60*60)

const klineDateLayout = "2006-01-02"

// PricePoint is one daily close from a kline series.
type PricePoint struct {
	Time  time.Time       `json:"time"`
	Close decimal.Decimal `json:"close"`
}

// parseKlines converts raw "YYYY-MM-DD,price" rows into an ascending
// series. Rows that do not split into exactly two fields, or whose date or
// price fails to parse, are skipped; only a fully unusable series is an
// error.
func parseKlines(klines []string) ([]PricePoint, error) {
	points := make([]PricePoint, 0, len(klines))
	for _, kline := range klines {
		parts := strings.Split(kline, ",")
		if len(parts) != 2 {
			continue
		}
		day, err := time.ParseInLocation(klineDateLayout, parts[0], Timezone)
		if err != nil {
			continue
		}
		price, err := decimal.NewFromString(parts[1])
		if err != nil {
			continue
		}
		points = append(points, PricePoint{Time: day, Close: price})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no valid price data found", ErrParse)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	return points, nil
}
