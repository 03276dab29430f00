package eastmoneyadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/yearliny/beanprice/internal/source"
	"github.com/yearliny/beanprice/internal/source/eastmoney"
)

// lookbackDays is the window stretched around "now" or a target date so a
// trading day is found even across weekends and holidays.
const lookbackDays = 10

type Config struct {
	Name string // display name, default: EastMoney
}

// Adapter exposes the EastMoney kline client as a source.Source.
type Adapter struct {
	cfg    Config
	client *eastmoney.EastMoneyAPIClient
}

var _ source.Source = (*Adapter)(nil)

func New(cfg Config, client *eastmoney.EastMoneyAPIClient) *Adapter {
	if cfg.Name == "" {
		cfg.Name = "EastMoney"
	}
	return &Adapter{cfg: cfg, client: client}
}

func (a *Adapter) Name() string { return a.cfg.Name }

// GetLatestPrice returns the most recent close within the last ten days.
func (a *Adapter) GetLatestPrice(ctx context.Context, ticker string) (source.Price, error) {
	end := time.Now().In(eastmoney.Timezone)
	begin := end.AddDate(0, 0, -lookbackDays)

	points, err := a.fetch(ctx, ticker, begin, end)
	if err != nil {
		return source.Price{}, err
	}
	if len(points) == 0 {
		return source.Price{}, fmt.Errorf("%w found for %s", eastmoney.ErrNoData, ticker)
	}
	return toPrice(points[len(points)-1]), nil
}

// GetHistoricalPrice returns the close whose trading day is nearest to the
// given time, searching ten days to either side. Offsets are normalized
// before comparing, so callers may pass times in any zone. Of two
// equidistant days the earlier one wins.
func (a *Adapter) GetHistoricalPrice(ctx context.Context, ticker string, at time.Time) (source.Price, error) {
	begin := at.AddDate(0, 0, -lookbackDays)
	end := at.AddDate(0, 0, lookbackDays)

	points, err := a.fetch(ctx, ticker, begin, end)
	if err != nil {
		return source.Price{}, err
	}
	if len(points) == 0 {
		return source.Price{}, fmt.Errorf("%w found for %s on %s", eastmoney.ErrNoData, ticker, at.Format(time.DateOnly))
	}

	closest := points[0]
	for _, p := range points[1:] {
		if absDuration(p.Time.Sub(at)) < absDuration(closest.Time.Sub(at)) {
			closest = p
		}
	}
	return toPrice(closest), nil
}

// GetPricesSeries returns every close the provider reports for the given
// window. An empty window surfaces the client's own error unchanged.
func (a *Adapter) GetPricesSeries(ctx context.Context, ticker string, begin, end time.Time) ([]source.Price, error) {
	points, err := a.fetch(ctx, ticker, begin, end)
	if err != nil {
		return nil, err
	}

	prices := make([]source.Price, 0, len(points))
	for _, p := range points {
		prices = append(prices, toPrice(p))
	}
	return prices, nil
}

func (a *Adapter) fetch(ctx context.Context, ticker string, begin, end time.Time) ([]eastmoney.PricePoint, error) {
	secid, err := eastmoney.ResolveSecurityID(ticker)
	if err != nil {
		return nil, err
	}
	return a.client.GetKlineSeries(ctx, secid, begin, end)
}

func toPrice(p eastmoney.PricePoint) source.Price {
	return source.Price{Price: p.Close, Time: p.Time, Currency: eastmoney.Currency}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
