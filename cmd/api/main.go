package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apicalculator "rent_dscr/pkg/api/calculator"
	apirefdata "rent_dscr/pkg/api/refdata"
	"rent_dscr/pkg/core/config"
	"rent_dscr/pkg/core/refdata"
	"rent_dscr/pkg/core/report"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load("resources/engine.yaml")
	if err != nil {
		fmt.Printf("[config] invalid configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[config] tax_policy=%s fallback_rate=%.3f\n", cfg.TaxPolicy, cfg.FallbackTaxRate)

	// Reference data: a missing or malformed file degrades that table to
	// empty (all lookups resolve "not found"); it never blocks startup.
	store := refdata.NewStore()
	if err := store.LoadMillageFile("resources/millage.json"); err != nil {
		fmt.Printf("[refdata] WARNING: millage table unavailable, county tax lookups disabled: %v\n", err)
	}
	if err := store.LoadMarketRatesFile("resources/market_rates.hjson"); err != nil {
		fmt.Printf("[refdata] WARNING: market-rate table unavailable, area-based rent estimates disabled: %v\n", err)
	}
	fmt.Printf("[refdata] loaded %d counties, %d regions\n", store.CountyCount(), store.RegionCount())

	engine := report.NewEngine(store, cfg)

	calcHandler := apicalculator.NewHandler(engine)
	refHandler := apirefdata.NewHandler(store)

	http.HandleFunc("/api/calculate", calcHandler.HandleCalculate)
	http.HandleFunc("/api/refdata/counties", refHandler.HandleCounties)
	http.HandleFunc("/api/refdata/regions", refHandler.HandleRegions)
	http.HandleFunc("/api/health", refHandler.HandleHealth)

	fmt.Printf("API server starting on :%s...\n", cfg.Port)
	fmt.Println("  - POST /api/calculate")
	fmt.Println("  - GET  /api/refdata/counties")
	fmt.Println("  - GET  /api/refdata/regions")
	fmt.Println("  - GET  /api/health")

	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
