package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// Scenario is one kind of request a simulated player sends
type Scenario struct {
	Name   string
	Method string
	Path   string
	Body   any
}

// Result contains metrics for a single request
type Result struct {
	Scenario     string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// Stats aggregates results across workers
type Stats struct {
	mu            sync.Mutex
	Total         int
	TransportErrs int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ScenarioStats map[string]int
	ErrorCounts   map[string]int
}

func (s *Stats) add(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ScenarioStats[r.Scenario]++
	if r.Err != nil {
		s.TransportErrs++
		s.ErrorCounts[r.Err.Error()]++
		return
	}
	s.StatusCounts[r.StatusCode]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
}

func (s *Stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ResponseTimes) + s.TransportErrs
}

var scenarios = []Scenario{
	{"claim-success", http.MethodPost, "/jobs/fishing/claim", dto.FishingClaimRequest{Success: true}},
	{"claim-miss", http.MethodPost, "/jobs/fishing/claim", dto.FishingClaimRequest{Success: false}},
	{"sell-fish", http.MethodPost, "/market/sell", dto.SellRequest{Item: "fish", Qty: 1}},
	{"limits", http.MethodGet, "/limits", nil},
	{"wallet", http.MethodGet, "/wallet", nil},
}

func main() {
	app := &cli.App{
		Name:  "loadtest",
		Usage: "drive concurrent guest players against a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8787", Usage: "base URL of the API"},
			&cli.IntFlag{Name: "concurrency", Aliases: []string{"c"}, Value: 5, Usage: "number of concurrent workers"},
			&cli.IntFlag{Name: "requests", Aliases: []string{"n"}, Value: 200, Usage: "total number of requests"},
			&cli.IntFlag{Name: "guests", Aliases: []string{"g"}, Value: 3, Usage: "guest players to spread load across"},
			&cli.DurationFlag{Name: "delay", Value: 100 * time.Millisecond, Usage: "pause before each request"},
			&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second, Usage: "per-request timeout"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	baseURL := c.String("url")
	concurrency := c.Int("concurrency")
	total := c.Int("requests")
	delay := c.Duration("delay")
	client := &http.Client{Timeout: c.Duration("timeout")}

	tokens, err := signInGuests(c.Context, client, baseURL, c.Int("guests"))
	if err != nil {
		return err
	}

	fmt.Printf("Load testing %s with %d guests\n", baseURL, len(tokens))
	fmt.Printf("Concurrency: %d workers, total requests: %d, delay: %v\n", concurrency, total, delay)

	stats := &Stats{
		Total:         total,
		ResponseTimes: make([]time.Duration, 0, total),
		StatusCounts:  make(map[int]int),
		ScenarioStats: make(map[string]int),
		ErrorCounts:   make(map[string]int),
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			if done := stats.completed(); done > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					done, total, float64(done)/float64(total)*100)
			}
		}
	}()

	startTime := time.Now()
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(concurrency)
	for i := 0; i < total; i++ {
		g.Go(func() error {
			if delay > 0 {
				time.Sleep(delay)
			}
			token := tokens[rand.Intn(len(tokens))]
			scenario := scenarios[rand.Intn(len(scenarios))]
			stats.add(send(ctx, client, baseURL, token, scenario))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	return nil
}

func signInGuests(ctx context.Context, client *http.Client, baseURL string, n int) ([]string, error) {
	if n <= 0 {
		n = 1
	}
	tokens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/auth/guest", nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("guest sign-in: %w", err)
		}

		var session dto.GuestSessionResponse
		err = json.NewDecoder(resp.Body).Decode(&session)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("guest sign-in: HTTP status code %d", resp.StatusCode)
		}
		if err != nil {
			return nil, fmt.Errorf("guest sign-in: %w", err)
		}
		tokens = append(tokens, session.Token)
	}
	return tokens, nil
}

func send(ctx context.Context, client *http.Client, baseURL, token string, scenario Scenario) Result {
	result := Result{Scenario: scenario.Name}

	var body bytes.Buffer
	if scenario.Body != nil {
		if err := json.NewEncoder(&body).Encode(scenario.Body); err != nil {
			result.Err = err
			return result
		}
	}

	req, err := http.NewRequestWithContext(ctx, scenario.Method, baseURL+scenario.Path, &body)
	if err != nil {
		result.Err = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	resp.Body.Close()
	result.StatusCode = resp.StatusCode
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *Stats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	answered := len(sorted)
	rps := float64(answered) / stats.TotalTime.Seconds()

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.Total)
	fmt.Printf("Answered:            %d\n", answered)
	fmt.Printf("Transport Errors:    %d\n", stats.TransportErrs)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if answered > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[answered-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	// 429 cooldown and 400 not_enough are normal answers for a player spamming actions
	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		count := stats.StatusCounts[code]
		fmt.Printf("%d %-25s: %d (%.1f%%)\n", code, http.StatusText(code), count,
			float64(count)/float64(stats.Total)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for _, scenario := range scenarios {
		fmt.Printf("%-15s: %d requests\n", scenario.Name, stats.ScenarioStats[scenario.Name])
	}

	if stats.TransportErrs > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	if code5xx := countServerErrors(stats.StatusCounts); code5xx > 0 {
		fmt.Printf("\nserver errors: %d\n", code5xx)
	}
	fmt.Println("================================================")
}

func countServerErrors(counts map[int]int) int {
	n := 0
	for code, count := range counts {
		if code >= 500 {
			n += count
		}
	}
	return n
}
