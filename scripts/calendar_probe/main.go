package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type slot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Legal     bool   `json:"legal"`
	Reason    string `json:"reason"`
}

type daySlots struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Slots   []slot `json:"slots"`
}

type weekCalendar struct {
	WeekOffset int        `json:"week_offset"`
	WeekStart  string     `json:"week_start"`
	Days       []daySlots `json:"days"`
}

type envelope struct {
	Data  *weekCalendar `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func main() {
	var (
		base     string
		token    string
		contract string
		booking  string
		weeks    int
		timeout  time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080/api/v1", "Portal API base URL")
	flag.StringVar(&token, "token", os.Getenv("PORTAL_TOKEN"), "Bearer token")
	flag.StringVar(&contract, "contract", "", "Contract ID")
	flag.StringVar(&booking, "booking", "", "Booking ID to reschedule")
	flag.IntVar(&weeks, "weeks", 4, "Number of weeks to probe")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	if contract == "" || booking == "" {
		log.Fatal("both -contract and -booking are required")
	}

	client := &http.Client{Timeout: timeout}
	legalTotal := 0
	reasons := map[string]int{}

	for offset := 0; offset < weeks; offset++ {
		calendar, err := fetchWeek(client, base, token, contract, booking, offset)
		if err != nil {
			log.Fatalf("week %d: %v", offset, err)
		}
		legal := summarize(calendar, reasons)
		legalTotal += legal
		fmt.Printf("week %d (%s): %d legal slots\n", offset, calendar.WeekStart, legal)
	}

	fmt.Printf("total legal slots over %d weeks: %d\n", weeks, legalTotal)
	for reason, count := range reasons {
		fmt.Printf("  blocked by %s: %d\n", reason, count)
	}
	if legalTotal == 0 {
		os.Exit(1)
	}
}

func fetchWeek(client *http.Client, base, token, contract, booking string, offset int) (*weekCalendar, error) {
	url := fmt.Sprintf("%s/contracts/%s/reschedule/%s/calendar?week=%d",
		strings.TrimRight(base, "/"), contract, booking, offset)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.Error != nil {
		return nil, fmt.Errorf("%s: %s", env.Error.Code, env.Error.Message)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return env.Data, nil
}

func summarize(calendar *weekCalendar, reasons map[string]int) int {
	legal := 0
	for _, day := range calendar.Days {
		for _, s := range day.Slots {
			if s.Legal {
				legal++
				continue
			}
			reasons[s.Reason]++
		}
	}
	return legal
}
