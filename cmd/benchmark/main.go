package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type modelsRequest struct {
	Credential string `json:"credential"`
}

type modelsResponse struct {
	Models       []string `json:"models"`
	DefaultModel string   `json:"default_model"`
	Errors       []string `json:"errors"`
}

type renderRequest struct {
	Credential  string  `json:"credential"`
	Model       string  `json:"model"`
	UseTopP     bool    `json:"use_top_p"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	Text        string  `json:"text"`
}

type renderResponse struct {
	Model     string   `json:"model"`
	Output    string   `json:"output"`
	Errors    []string `json:"errors"`
	ElapsedMs int64    `json:"elapsed_ms"`
}

type result struct {
	Sample    string
	Chars     int
	Model     string
	Run       int
	ElapsedMs int64
	WallMs    int64
	OutChars  int
	Error     string
}

type client struct {
	http       *http.Client
	baseURL    string
	apiKey     string
	credential string
}

func main() {
	url := flag.String("url", "http://localhost:8090", "API base URL")
	apiKey := flag.String("api-key", "", "Server API key (optional)")
	credential := flag.String("credential", os.Getenv("OPENAI_API_KEY"), "OpenAI API key forwarded to the server (default: $OPENAI_API_KEY)")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	model := flag.String("model", "", "Model to use (default: server's default)")
	topP := flag.Float64("top-p", -1, "Use top_p with this value instead of temperature")
	temperature := flag.Float64("temperature", 0.1, "Temperature (ignored when -top-p is set)")
	quality := flag.Bool("quality", false, "Quality mode: show input/output for each sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	c := &client{
		http:       &http.Client{Timeout: 180 * time.Second},
		baseURL:    strings.TrimRight(*url, "/"),
		apiKey:     *apiKey,
		credential: *credential,
	}

	modelID := *model
	if modelID == "" {
		modelID = c.discoverModel()
	}

	base := renderRequest{
		Credential:  c.credential,
		Model:       modelID,
		Temperature: *temperature,
		TopP:        0.5,
	}
	if *topP >= 0 {
		base.UseTopP = true
		base.TopP = *topP
	}

	if *quality {
		runQualityMode(c, base)
		return
	}

	fmt.Printf("Benchmarking against %s using model: %s (%d runs per sample", c.baseURL, modelID, *runs)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if *warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := c.benchmark(base, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.ElapsedMs)
			}
		}
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := c.benchmark(base, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.ElapsedMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, c.baseURL, modelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// post sends body as JSON and decodes a 200 response into dst.
func (c *client) post(path string, body, dst any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (c *client) discoverModel() string {
	var mr modelsResponse
	if err := c.post("/api/models", modelsRequest{Credential: c.credential}, &mr); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching models: %v\n", err)
		os.Exit(1)
	}
	if len(mr.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Models endpoint reported: %s\n", strings.Join(mr.Errors, "; "))
		os.Exit(1)
	}
	if mr.DefaultModel == "" {
		fmt.Fprintln(os.Stderr, "No models available")
		os.Exit(1)
	}
	return mr.DefaultModel
}

func (c *client) benchmark(base renderRequest, sample Sample, run int) result {
	fail := func(err string) result {
		return result{Sample: sample.Name, Chars: len(sample.Text), Run: run, Error: err}
	}

	req := base
	req.Text = sample.Text

	var rr renderResponse
	start := time.Now()
	err := c.post("/api/render", req, &rr)
	wallMs := time.Since(start).Milliseconds()

	if err != nil {
		return fail(err.Error())
	}
	if len(rr.Errors) > 0 {
		return fail(strings.Join(rr.Errors, "; "))
	}

	return result{
		Sample:    sample.Name,
		Chars:     len(sample.Text),
		Model:     rr.Model,
		Run:       run,
		ElapsedMs: rr.ElapsedMs,
		WallMs:    wallMs,
		OutChars:  len(rr.Output),
	}
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Model | Run | Elapsed (ms) | Wall (ms) | Out Chars | Ratio |")
	fmt.Println("|--------|-------|-------|-----|--------------|-----------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %-20s | %d | %12s | %9s | %9s | %5s |\n",
				r.Sample, r.Chars, "-", r.Run, "FAIL", "-", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-6s | %5d | %-20s | %d | %12d | %9d | %9d | %5.2f |\n",
			r.Sample, r.Chars, r.Model, r.Run, r.ElapsedMs, r.WallMs, r.OutChars, ratio)
	}
}

func runQualityMode(c *client, base renderRequest) {
	fmt.Printf("Quality test against %s using model: %s\n", c.baseURL, base.Model)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range QualitySamples {
		fmt.Printf("\n--- %d/%d: %s (%d chars) ---\n", i+1, len(QualitySamples), sample.Name, len(sample.Text))
		fmt.Printf("IN:  %s\n", sample.Text)

		req := base
		req.Text = sample.Text

		var rr renderResponse
		if err := c.post("/api/render", req, &rr); err != nil {
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}
		if len(rr.Errors) > 0 {
			fmt.Printf("ERR: %s\n", strings.Join(rr.Errors, "; "))
			failures++
			continue
		}

		fmt.Printf("OUT: %s\n", rr.Output)
		fmt.Printf("     [%dms, %d->%d chars]\n", rr.ElapsedMs, len(sample.Text), len(rr.Output))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(QualitySamples)-failures, len(QualitySamples))
	if failures > 0 {
		os.Exit(1)
	}
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalElapsed int64
	var totalChars, totalOut int
	minElapsed, maxElapsed := ok[0].ElapsedMs, ok[0].ElapsedMs
	minSample, maxSample := ok[0].Sample, ok[0].Sample

	for _, r := range ok {
		totalElapsed += r.ElapsedMs
		totalChars += r.Chars
		totalOut += r.OutChars
		if r.ElapsedMs < minElapsed {
			minElapsed = r.ElapsedMs
			minSample = r.Sample
		}
		if r.ElapsedMs > maxElapsed {
			maxElapsed = r.ElapsedMs
			maxSample = r.Sample
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg ms/char: %.2f\n", float64(totalElapsed)/float64(totalChars))
	fmt.Printf("- Compression: %.2f (summary chars / input chars)\n", float64(totalOut)/float64(totalChars))
	fmt.Printf("- Min elapsed: %dms (%s)\n", minElapsed, minSample)
	fmt.Printf("- Max elapsed: %dms (%s)\n", maxElapsed, maxSample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Model     string   `json:"model"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, modelID string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Model:     modelID,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
