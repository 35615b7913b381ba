package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"travelbot/internal/ai"
	"travelbot/internal/config"
	"travelbot/internal/planner"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, config.ProviderConfig{APIKey: apiKey})
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	svc := planner.NewService(provider)

	// Simulated form input
	prefs := planner.TripPreferences{
		Destination:    "Tokyo, Japan",
		Budget:         "High",
		RecreationType: "Culture and Technology",
		Interests:      []string{"Anime", "Sushi", "Temples", "Gadgets"},
		DateRange:      "October 10-20",
		TravelersCount: 2,
		Diet:           "No allergies, we like spicy food",
		AdditionalInfo: "We want to see the Akihabara district at night.",
	}

	fmt.Println("--- Generating trip plan... ---")

	itinerary, err := svc.GeneratePlan(ctx, prefs)
	if err != nil {
		log.Fatalf("Error generating plan: %v", err)
	}

	out, err := json.MarshalIndent(itinerary, "", "    ")
	if err != nil {
		log.Fatalf("Error formatting plan: %v", err)
	}
	fmt.Println(string(out))
}
