// README: CLI demo; runs one planning request end to end and prints the JSON result.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"travelpro/internal/ai"
	"travelpro/internal/config"
	"travelpro/internal/logsink"
	"travelpro/internal/modules/budget"
	"travelpro/internal/modules/itinerary"
	"travelpro/internal/modules/planner"
	"travelpro/internal/modules/preference"
	"travelpro/internal/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	request := strings.Join(os.Args[1:], " ")
	if request == "" {
		start := time.Now().AddDate(0, 0, 14)
		end := start.AddDate(0, 0, 2)
		request = fmt.Sprintf(
			"Plan a trip from Sarasota to Chicago, from %s to %s, with a budget of $1,900 and moderate travel style.",
			start.Format("January 2, 2006"), end.Format("January 2, 2006"))
	}

	var llm preference.LLM
	var chef itinerary.Chef
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		llm = provider
		chef = provider
	}

	var flights budget.FlightPricer
	var hotels budget.HotelPricer
	if cfg.Pricing.RapidAPIKey != "" {
		client := pricing.NewClient(cfg.Pricing.RapidAPIKey, cfg.Pricing.RapidAPIHost)
		flights, hotels = client, client
	}

	budgetSvc := budget.NewService(flights, hotels, cfg.Planner.BudgetTolerance)
	svc := planner.NewService(
		preference.NewService(llm, nil),
		budgetSvc,
		itinerary.NewBuilder(itinerary.NewCatalog(nil), chef),
		budgetSvc,
		logsink.NewSink(cfg.Planner.LogsDir, nil),
		cfg.Planner.MaxReoptAttempts,
	)

	fmt.Printf("Request: %s\n\n", request)
	out := svc.ProcessRequest(ctx, request)

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(raw))
}
