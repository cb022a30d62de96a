// README: Runner cases: health, JSON comparison shape, input validation, PDF export and load.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) tripQuery(hours int) string {
	q := url.Values{}
	q.Set("zip_code", r.cfg.ZipCode)
	q.Set("passengers", "12")
	q.Set("hours", fmt.Sprint(hours))
	q.Set("date", r.cfg.Date)
	q.Set("event_type", "Birthday")
	return q.Encode()
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name:  "Health: GET /health",
			Focus: "process is up",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.get(ctx, base+"/health")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				return Result{Status: "PASS", Latency: latency}
			},
		},
		{
			Name:  "Compare: hours=1 clamps the lower row",
			Focus: "price rows 1,1,2 with the middle one highlighted",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.get(ctx, base+"/api/compare?"+r.tripQuery(1))
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status == http.StatusBadGateway {
					return Result{Status: "SKIP", Latency: latency, Note: "quoting service unavailable"}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				return checkRowHours(body, latency, []int{1, 1, 2})
			},
		},
		{
			Name:  "Compare: backups always three buckets",
			Focus: "party, limo, shuttle order",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.get(ctx, base+"/api/compare?"+r.tripQuery(4))
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status == http.StatusBadGateway {
					return Result{Status: "SKIP", Latency: latency, Note: "quoting service unavailable"}
				}
				var env compareEnvelope
				if err := json.Unmarshal(body, &env); err != nil {
					return Result{Status: "FAIL", Latency: latency, Note: err.Error()}
				}
				want := []string{"party_buses", "limousines", "shuttle_buses"}
				if len(env.Data.View.Backups) != len(want) {
					return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("buckets=%d", len(env.Data.View.Backups))}
				}
				for i, b := range env.Data.View.Backups {
					if b.Category != want[i] {
						return Result{Status: "FAIL", Latency: latency, Note: "bucket order " + b.Category}
					}
				}
				return Result{Status: "PASS", Latency: latency}
			},
		},
		{
			Name:  "Compare: invalid input rejected",
			Focus: "passengers=0 returns 400",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.get(ctx, base+"/api/compare?zip_code=1&passengers=0&hours=1&date="+r.cfg.Date)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusBadRequest {
					return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				return Result{Status: "PASS", Latency: latency}
			},
		},
		{
			Name:  "Export: PDF quote sheet",
			Focus: "application/pdf body",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.get(ctx, base+"/compare.pdf?"+r.tripQuery(3))
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status == http.StatusBadGateway {
					return Result{Status: "SKIP", Latency: latency, Note: "quoting service unavailable"}
				}
				if status != http.StatusOK || !strings.HasPrefix(string(body), "%PDF") {
					return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("bytes=%d", len(body))}
			},
		},
		{
			Name:  "Perf: concurrent comparisons",
			Focus: "independent submissions under load",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.Perf {
					return Result{Status: "SKIP", Note: "perf=false"}
				}
				return perfLoad(ctx, r, base+"/api/compare?"+r.tripQuery(4))
			},
		},
	}
}

type compareEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		View struct {
			Main []struct {
				Name   string `json:"name"`
				Prices []struct {
					Hours     int  `json:"hours"`
					Highlight bool `json:"highlight"`
				} `json:"prices"`
			} `json:"main_options"`
			Backups []struct {
				Category string `json:"category"`
			} `json:"backups"`
		} `json:"view"`
	} `json:"data"`
}

func checkRowHours(body []byte, latency time.Duration, want []int) Result {
	var env compareEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Result{Status: "FAIL", Latency: latency, Note: err.Error()}
	}
	if len(env.Data.View.Main) == 0 {
		return Result{Status: "SKIP", Latency: latency, Note: "no main options returned"}
	}
	for _, card := range env.Data.View.Main {
		if len(card.Prices) != len(want) {
			return Result{Status: "FAIL", Latency: latency, Note: card.Name + ": wrong row count"}
		}
		for i, row := range card.Prices {
			if row.Hours != want[i] || row.Highlight != (i == 1) {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("%s: row %d hours=%d", card.Name, i, row.Hours)}
			}
		}
	}
	return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("cards=%d", len(env.Data.View.Main))}
}

func (r *Runner) get(ctx context.Context, url string) (int, []byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	start := time.Now()
	resp, err := r.httpc.Do(req)
	latency := time.Since(start)
	if err != nil {
		return 0, nil, latency, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, latency, err
}

func perfLoad(ctx context.Context, r *Runner, url string) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					if ctx.Err() != nil {
						return
					}
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}
