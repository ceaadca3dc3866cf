package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// credentials is the register/login payload
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// session is the register/login response
type session struct {
	Token string `json:"token"`
	User  struct {
		ID       uint64 `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

// progress is the /save payload
type progress struct {
	Loc          string          `json:"loc"`
	LocPerSecond string          `json:"locPerSecond"`
	LocPerClick  string          `json:"locPerClick"`
	Upgrades     json.RawMessage `json:"upgrades"`
	Buildings    json.RawMessage `json:"buildings"`
	GameVersion  string          `json:"gameVersion"`
}

// player is a registered session plus its locally tracked counter
type player struct {
	token string
	mu    sync.Mutex
	loc   decimal.Decimal
	rate  decimal.Decimal
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one weighted request kind
type Scenario struct {
	Name   string
	Weight int
	Run    func(client *http.Client, baseURL string, p *player) (int, error)
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	players := flag.Int("p", 10, "Number of players to register before the run")
	baseURL := flag.String("url", "http://localhost:3001", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	runID := uuid.NewString()[:8]
	fmt.Printf("Registering %d players (run %s)...\n", *players, runID)
	pool := make([]*player, 0, *players)
	for i := 0; i < *players; i++ {
		p, err := register(client, *baseURL, fmt.Sprintf("load-%s-%d", runID, i))
		if err != nil {
			fmt.Printf("Registration failed: %v\n", err)
			return
		}
		pool = append(pool, p)
	}

	scenarios := []Scenario{
		{Name: "save", Weight: 6, Run: saveProgress},
		{Name: "load", Weight: 3, Run: loadProgress},
		{Name: "leaderboard", Weight: 1, Run: fetchLeaderboard},
	}

	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, pool, scenarios, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func worker(client *http.Client, baseURL string, delayMs int, pool []*player,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {

	totalWeight := 0
	for _, scenario := range scenarios {
		totalWeight += scenario.Weight
	}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		p := pool[rand.IntN(len(pool))]
		scenario := pick(scenarios, rand.IntN(totalWeight))

		startTime := time.Now()
		status, err := scenario.Run(client, baseURL, p)
		results <- TestResult{
			Scenario:     scenario.Name,
			Success:      err == nil,
			ResponseTime: time.Since(startTime),
			StatusCode:   status,
			Error:        err,
		}
	}
}

func pick(scenarios []Scenario, roll int) Scenario {
	for _, scenario := range scenarios {
		if roll < scenario.Weight {
			return scenario
		}
		roll -= scenario.Weight
	}
	return scenarios[len(scenarios)-1]
}

func register(client *http.Client, baseURL, username string) (*player, error) {
	body, err := json.Marshal(credentials{Username: username, Password: "load-test-password"})
	if err != nil {
		return nil, err
	}

	resp, err := client.Post(baseURL+"/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("register %s: HTTP status code %d", username, resp.StatusCode)
	}

	var s session
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, errors.New("register returned no token")
	}
	return &player{token: s.Token, loc: decimal.Zero, rate: decimal.NewFromInt(1)}, nil
}

func saveProgress(client *http.Client, baseURL string, p *player) (int, error) {
	p.mu.Lock()
	p.loc = p.loc.Add(decimal.NewFromInt(rand.Int64N(500) + 1))
	p.rate = p.rate.Add(decimal.NewFromFloat(0.5))
	payload := progress{
		Loc:          p.loc.String(),
		LocPerSecond: p.rate.String(),
		LocPerClick:  "1",
		Upgrades:     json.RawMessage(`[]`),
		Buildings:    json.RawMessage(`[{"id":"intern","count":1}]`),
		GameVersion:  "0.1",
	}
	p.mu.Unlock()

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}
	return authorized(client, http.MethodPost, baseURL+"/save", p.token, body)
}

func loadProgress(client *http.Client, baseURL string, p *player) (int, error) {
	return authorized(client, http.MethodGet, baseURL+"/load", p.token, nil)
}

func fetchLeaderboard(client *http.Client, baseURL string, _ *player) (int, error) {
	resp, err := client.Get(baseURL + "/leaderboard")
	if err != nil {
		return 0, err
	}
	return drain(resp)
}

func authorized(client *http.Client, method, url, token string, body []byte) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	return drain(resp)
}

func drain(resp *http.Response) (int, error) {
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)*p/100, len(sorted)-1)]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Successful RPS:      %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
