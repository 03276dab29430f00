package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/yearliny/beanprice/internal/config"
	"github.com/yearliny/beanprice/internal/httpx"
	"github.com/yearliny/beanprice/internal/source/eastmoney"
	"github.com/yearliny/beanprice/internal/source/eastmoneyadapter"
)

func main() {
	var ticker string
	var mode string
	var dateStr string
	var beginStr string
	var endStr string
	var timeout int
	var configPath string

	flag.StringVar(&ticker, "ticker", getenv("TICKER", "000651"), "ticker, optionally prefixed (e.g. HK.00700)")
	flag.StringVar(&mode, "mode", getenv("MODE", "latest"), "one of: latest, historical, series")
	flag.StringVar(&dateStr, "date", "", "target date for -mode historical (YYYY-MM-DD)")
	flag.StringVar(&beginStr, "begin", "", "window start for -mode series (YYYY-MM-DD)")
	flag.StringVar(&endStr, "end", "", "window end for -mode series (YYYY-MM-DD)")
	flag.IntVar(&timeout, "timeout", getenvInt("REQUEST_TIMEOUT_SEC", 0), "request timeout seconds (0 = config default)")
	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if timeout > 0 {
		cfg.EastMoney.RequestTimeoutSec = timeout
	}

	httpClient := httpx.New(time.Duration(cfg.EastMoney.RequestTimeoutSec) * time.Second)

	options := []eastmoney.EastMoneyAPIClientOption{eastmoney.WithHTTPClient(httpClient)}
	if cfg.EastMoney.Endpoint != "" {
		options = append(options, eastmoney.WithBaseURL(cfg.EastMoney.Endpoint))
	}
	client, err := eastmoney.NewEastMoneyAPIClient(options...)
	if err != nil {
		log.Fatalf("eastmoney client: %v", err)
	}
	adapter := eastmoneyadapter.New(eastmoneyadapter.Config{}, client)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.EastMoney.RequestTimeoutSec)*time.Second)
	defer cancel()

	switch mode {
	case "latest":
		price, err := adapter.GetLatestPrice(ctx, ticker)
		if err != nil {
			log.Fatalf("%s latest: %v", adapter.Name(), err)
		}
		printJSON(price)
	case "historical":
		at, err := parseDate(dateStr)
		if err != nil {
			log.Fatalf("-date: %v", err)
		}
		price, err := adapter.GetHistoricalPrice(ctx, ticker, at)
		if err != nil {
			log.Fatalf("%s historical: %v", adapter.Name(), err)
		}
		printJSON(price)
	case "series":
		begin, err := parseDate(beginStr)
		if err != nil {
			log.Fatalf("-begin: %v", err)
		}
		end, err := parseDate(endStr)
		if err != nil {
			log.Fatalf("-end: %v", err)
		}
		prices, err := adapter.GetPricesSeries(ctx, ticker, begin, end)
		if err != nil {
			log.Fatalf("%s series: %v", adapter.Name(), err)
		}
		printJSON(prices)
	default:
		log.Fatalf("unknown mode %q", mode)
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	return time.ParseInLocation(time.DateOnly, s, eastmoney.Timezone)
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var x int
		_, _ = fmt.Sscanf(v, "%d", &x)
		if x != 0 {
			return x
		}
	}
	return def
}
