// README: Entry point; loads config, wires services and starts the HTTP API.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"travelpro/internal/ai"
	"travelpro/internal/config"
	httptransport "travelpro/internal/http"
	"travelpro/internal/http/handlers"
	"travelpro/internal/infra"
	"travelpro/internal/logsink"
	"travelpro/internal/maps"
	"travelpro/internal/modules/budget"
	"travelpro/internal/modules/itinerary"
	"travelpro/internal/modules/planner"
	"travelpro/internal/modules/preference"
	"travelpro/internal/modules/quota"
	"travelpro/internal/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Every external collaborator is optional; missing credentials degrade
	// to builtin data and heuristic estimates.
	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatalf("firebase init: %v", err)
		}
	} else {
		log.Print("TRAVELPRO_FIREBASE_PROJECT_ID not set, auth disabled")
	}

	var dbPool *pgxpool.Pool
	if cfg.DB.DSN != "" {
		dbPool, err = infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
	} else {
		log.Print("TRAVELPRO_DB_DSN not set, run logs stay on disk only")
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
	} else {
		log.Print("GEMINI_API_KEY not set, extraction falls back to pattern matching")
	}

	var enricher preference.Enricher
	if cfg.Redis.Addr != "" {
		enricher = preference.NewStore(infra.NewRedis(cfg.Redis.Addr))
	}

	var places itinerary.PlaceSource
	if cfg.Maps.APIKey != "" {
		placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		places = placesSvc
	}

	var flights budget.FlightPricer
	var hotels budget.HotelPricer
	if cfg.Pricing.RapidAPIKey != "" {
		client := pricing.NewClient(cfg.Pricing.RapidAPIKey, cfg.Pricing.RapidAPIHost)
		flights, hotels = client, client
	} else {
		log.Print("RAPIDAPI_KEY not set, cost estimation uses heuristics")
	}

	preferenceSvc := preference.NewService(llm, enricher)
	budgetSvc := budget.NewService(flights, hotels, cfg.Planner.BudgetTolerance)
	builder := itinerary.NewBuilder(itinerary.NewCatalog(places), chef)

	sink := logsink.NewSink(cfg.Planner.LogsDir, dbPool)
	if err := sink.EnsureSchema(ctx); err != nil {
		log.Fatalf("logsink schema: %v", err)
	}

	plannerSvc := planner.NewService(preferenceSvc, budgetSvc, builder, budgetSvc, sink, cfg.Planner.MaxReoptAttempts)

	var quotaSvc handlers.QuotaKeeper
	if dbPool != nil {
		store := quota.NewStore(dbPool)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("quota schema: %v", err)
		}
		quotaSvc = quota.NewService(store)
	}

	router := httptransport.NewRouter(handlers.NewTripHandler(plannerSvc, quotaSvc), verifier)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
