// README: Smoke and load runner for a running busquote-web instance; prints one line per case.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	bench := NewRunner(cfg)
	results := bench.RunAll(ctx)

	fmt.Println("\n== Summary ==")
	pass, fail, skipped := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case "PASS":
			pass++
		case "FAIL":
			fail++
		case "SKIP":
			skipped++
		}
	}
	fmt.Printf("PASS=%d FAIL=%d SKIP=%d\n", pass, fail, skipped)

	if fail > 0 {
		os.Exit(1)
	}
}

type Config struct {
	BaseURL     string
	ZipCode     string
	Date        string
	Perf        bool
	Timeout     time.Duration
	Concurrency int
	Duration    time.Duration
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", envOrDefault("BUSQUOTE_BENCH_BASE_URL", "http://localhost:8080"), "web app base URL")
	flag.StringVar(&cfg.ZipCode, "zip", envOrDefault("BUSQUOTE_BENCH_ZIP", "90210"), "pickup ZIP used by quote cases")
	flag.StringVar(&cfg.Date, "date", envOrDefault("BUSQUOTE_BENCH_DATE", time.Now().AddDate(0, 0, 14).Format("2006-01-02")), "trip date used by quote cases")
	flag.BoolVar(&cfg.Perf, "perf", envOrDefaultBool("BUSQUOTE_BENCH_PERF", false), "run the load case")
	flag.DurationVar(&cfg.Timeout, "timeout", envOrDefaultDuration("BUSQUOTE_BENCH_TIMEOUT", 60*time.Second), "total timeout")
	flag.IntVar(&cfg.Concurrency, "concurrency", envOrDefaultInt("BUSQUOTE_BENCH_CONCURRENCY", 20), "concurrency for the load case")
	flag.DurationVar(&cfg.Duration, "duration", envOrDefaultDuration("BUSQUOTE_BENCH_DURATION", 10*time.Second), "duration of the load case")
	flag.Parse()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		if n > 0 {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
