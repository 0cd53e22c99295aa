// Command apitest smoke-tests a running liturgical day API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/liturgical-day/internal/calendar"
)

// =============================================================================
// Response Types
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type RangeResponse struct {
	Start string                   `json:"start"`
	End   string                   `json:"end"`
	Days  []calendar.LiturgicalDay `json:"days"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Liturgical Day API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testToday()
	tr.testSpecificDates()
	tr.testDateRange()
	tr.testEdgeCases()
	tr.testAnchorsAndFeed()
	tr.testAdventToEpiphany()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	for _, path := range []string{"/liturgical-day", "/api/v1/liturgical-day"} {
		day, err := tr.getDay(path)
		if err != nil {
			tr.recordError(path, err.Error())
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %s (%s)", path, day.Label, day.Date))
		tr.printDayDetail(day)
	}
}

func (tr *TestRunner) testSpecificDates() {
	tr.printSection("Specific Date Tests")

	testCases := []struct {
		date          string
		expectedLabel string
		description   string
	}{
		// Advent 2024
		{"2024-12-01", "1st Sunday of Advent", "First Sunday of Advent 2024"},
		{"2024-12-22", "4th Sunday of Advent", "Fourth Sunday of Advent"},
		{"2024-12-24", "Tuesday of the 4th Week of Advent", "Christmas Eve"},

		// Christmas Season
		{"2024-12-25", "Christmas Day", "Christmas Day 2024"},
		{"2024-12-26", "2nd Day of Christmas", "Day after Christmas"},
		{"2025-01-01", "Octave Day of Christmas", "New Year's Day"},

		// Epiphany
		{"2025-01-06", "Epiphany", "Epiphany"},

		// Lent 2025
		{"2025-03-05", "Ash Wednesday", "Ash Wednesday 2025"},
		{"2025-03-09", "1st Sunday of Lent", "First Sunday of Lent"},

		// Holy Week & Easter 2025
		{"2025-04-13", "Palm Sunday", "Palm Sunday 2025"},
		{"2025-04-17", "Holy Thursday", "Maundy Thursday"},
		{"2025-04-18", "Good Friday", "Good Friday"},
		{"2025-04-20", "Easter Sunday", "Easter Sunday 2025"},
		{"2025-05-29", "Ascension Day", "Ascension 2025"},

		// Ordinary Time
		{"2025-06-08", "Pentecost Sunday", "Pentecost Sunday 2025"},
		{"2025-06-15", "Trinity Sunday", "Trinity Sunday"},
		{"2025-11-23", "Christ the King", "Last Sunday before Advent"},

		// Advent 2025
		{"2025-11-30", "1st Sunday of Advent", "First Sunday of Advent 2025"},
	}

	for _, tc := range testCases {
		day, err := tr.getDay(fmt.Sprintf("/api/v1/liturgical-day/%s", tc.date))
		if err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		if day.Label == tc.expectedLabel {
			tr.recordSuccess(fmt.Sprintf("%s: %s (%s)", tc.date, day.Label, tc.description))
		} else {
			tr.recordError(tc.date, fmt.Sprintf("Expected label '%s', got '%s'",
				tc.expectedLabel, day.Label))
		}

		if tr.verbose {
			tr.printDayDetail(day)
		}
	}
}

func (tr *TestRunner) testDateRange() {
	tr.printSection("Date Range Tests")

	resp, err := tr.get("/api/v1/liturgical-day/range?start=2025-12-21&end=2025-12-27")
	if err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	var rangeData RangeResponse
	if err := json.Unmarshal(resp.Data, &rangeData); err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	if len(rangeData.Days) == 7 {
		tr.recordSuccess(fmt.Sprintf("Week range returned %d days", len(rangeData.Days)))
	} else {
		tr.recordError("Range (week)", fmt.Sprintf("Expected 7 days, got %d", len(rangeData.Days)))
	}

	tr.expectStatus("Range limit enforced (>90 days rejected)",
		"/api/v1/liturgical-day/range?start=2025-01-01&end=2025-12-31", http.StatusBadRequest)
	tr.expectStatus("Invalid range rejected (end before start)",
		"/api/v1/liturgical-day/range?start=2025-12-31&end=2025-01-01", http.StatusBadRequest)
	tr.expectStatus("Missing end parameter rejected",
		"/api/v1/liturgical-day/range?start=2025-01-01", http.StatusBadRequest)
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	for _, path := range []string{
		"/liturgical-day?date=not-a-date",
		"/api/v1/liturgical-day/2025-02-29",
		"/api/v1/liturgical-day/2025-13-01",
	} {
		tr.expectError(path, http.StatusBadRequest, "INVALID_DATE_FORMAT")
	}

	if _, err := tr.getDay("/api/v1/liturgical-day/2024-02-29"); err != nil {
		tr.recordError("Leap year", err.Error())
	} else {
		tr.recordSuccess("Leap year date (2024-02-29) handled")
	}

	if _, err := tr.getDay("/api/v1/liturgical-day/2030-06-15"); err != nil {
		tr.recordError("Future date", err.Error())
	} else {
		tr.recordSuccess("Far future date (2030) handled")
	}
}

func (tr *TestRunner) testAnchorsAndFeed() {
	tr.printSection("Anchors and Calendar Feed")

	resp, err := tr.get("/api/v1/anchors/2025")
	if err != nil {
		tr.recordError("Anchors", err.Error())
	} else {
		var a calendar.Anchors
		if err := json.Unmarshal(resp.Data, &a); err != nil {
			tr.recordError("Anchors", err.Error())
		} else if a.Easter.String() != "2025-04-20" {
			tr.recordError("Anchors", fmt.Sprintf("Expected Easter 2025-04-20, got %s", a.Easter))
		} else {
			tr.recordSuccess(fmt.Sprintf("Anchors 2025: Easter %s, Advent %s", a.Easter, a.AdventStart))
		}
	}

	raw, err := tr.getRaw("/api/v1/calendar/2024.ics")
	if err != nil {
		tr.recordError("Calendar feed", err.Error())
		return
	}
	defer raw.Body.Close()

	body, _ := io.ReadAll(raw.Body)
	if raw.StatusCode == http.StatusOK && strings.HasPrefix(string(body), "BEGIN:VCALENDAR") {
		tr.recordSuccess(fmt.Sprintf("Calendar feed 2024 (%d bytes)", len(body)))
	} else {
		tr.recordError("Calendar feed", fmt.Sprintf("HTTP %d", raw.StatusCode))
	}
}

func (tr *TestRunner) testAdventToEpiphany() {
	tr.printSection("Advent 2025 to Epiphany 2026")

	start := calendar.NewDate(2025, time.November, 30)
	end := calendar.NewDate(2026, time.January, 6)
	for d := start; !d.After(end); d = d.AddDays(1) {
		day, err := tr.getDay(fmt.Sprintf("/api/v1/liturgical-day/%s", d))
		if err != nil {
			tr.recordError(d.String(), err.Error())
			continue
		}

		tr.recordSuccess(fmt.Sprintf("%s: %s / %s [Year %s, Cycle %d]",
			d, day.Season, day.Label, day.SundayCycle, day.YearCycle))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	apiResp, err := decodeResponse(resp.Body)
	if err != nil {
		return nil, err
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return apiResp, nil
}

func (tr *TestRunner) getDay(path string) (calendar.LiturgicalDay, error) {
	var day calendar.LiturgicalDay

	resp, err := tr.get(path)
	if err != nil {
		return day, err
	}
	if err := json.Unmarshal(resp.Data, &day); err != nil {
		return day, fmt.Errorf("parse day: %w", err)
	}
	return day, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, tr.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}
	return tr.client.Do(req)
}

func decodeResponse(r io.Reader) (*APIResponse, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return &apiResp, nil
}

func (tr *TestRunner) expectStatus(name, path string, status int) {
	resp, err := tr.getRaw(path)
	if err != nil {
		tr.recordError(name, err.Error())
		return
	}
	resp.Body.Close()

	if resp.StatusCode == status {
		tr.recordSuccess(name)
	} else {
		tr.recordError(name, fmt.Sprintf("Expected HTTP %d, got %d", status, resp.StatusCode))
	}
}

func (tr *TestRunner) expectError(path string, status int, code string) {
	resp, err := tr.getRaw(path)
	if err != nil {
		tr.recordError(path, err.Error())
		return
	}
	defer resp.Body.Close()

	apiResp, err := decodeResponse(resp.Body)
	if err != nil {
		tr.recordError(path, err.Error())
		return
	}

	if resp.StatusCode == status && apiResp.Error != nil && apiResp.Error.Code == code {
		tr.recordSuccess(fmt.Sprintf("%s rejected with %s", path, code))
	} else {
		tr.recordError(path, fmt.Sprintf("Expected HTTP %d %s, got %d", status, code, resp.StatusCode))
	}
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printDayDetail(day calendar.LiturgicalDay) {
	fmt.Printf("    Season: %s\n", day.Season)
	fmt.Printf("    Period: %s\n", day.Period)
	if day.Week > 0 {
		fmt.Printf("    Week: %d\n", day.Week)
	}
	fmt.Printf("    Liturgical year: %d (Year %s, Cycle %d)\n", day.LiturgicalYear, day.SundayCycle, day.YearCycle)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	var (
		baseURL string
		apiKey  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "apitest",
		Short:        "Smoke-test a running liturgical day API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check if server is reachable
			client := &http.Client{Timeout: 2 * time.Second}
			resp, err := client.Get(baseURL + "/health")
			if err != nil {
				return fmt.Errorf("cannot connect to %s, make sure the API server is running: %w", baseURL, err)
			}
			resp.Body.Close()

			runner := NewTestRunner(baseURL, apiKey, verbose)
			runner.Run()

			if runner.errorCount > 0 {
				return fmt.Errorf("%d check(s) failed", runner.errorCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "base URL of the API")
	cmd.Flags().StringVar(&apiKey, "api-key", os.Getenv("API_KEY"), "API key sent as X-API-Key")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (show day details)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
